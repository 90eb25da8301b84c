// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pool

import (
	"sort"
	"sync"

	"github.com/AccelByte/elo-team-matchmaker/pkg/constants"
	"github.com/AccelByte/elo-team-matchmaker/pkg/envelope"
	"github.com/AccelByte/elo-team-matchmaker/pkg/metrics"
	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/playerdata"
)

// soloDuo matches four solo players into two teams of two. Candidates are
// quartets of rating-adjacent pairs, split outer vs inner so the spread of
// team strength stays even when individual skill varies widely.
type soloDuo struct {
	name      string
	validator *Validator
	metrics   metrics.MatchmakingMetrics

	mu      sync.Mutex
	players []*playerdata.Player
}

func newSoloDuo(name string, validator *Validator, m metrics.MatchmakingMetrics) *soloDuo {
	return &soloDuo{name: name, validator: validator, metrics: m}
}

func (p *soloDuo) Kind() models.PoolKind { return models.SoloDuo }
func (p *soloDuo) MaxPremadeSize() int   { return 1 }
func (p *soloDuo) MaxTeamSize() int      { return 2 }

func (p *soloDuo) Add(team *playerdata.Team) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.players = append(p.players, team.Players()...)
}

func (p *soloDuo) Remove(players []*playerdata.Player) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.players = removePlayers(p.players, players)
}

func (p *soloDuo) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.players)
}

// quartet is a candidate match of two disjoint adjacency pairs.
type quartet struct {
	a, b      adjacentPair
	tightness int
}

func (q quartet) players() []*playerdata.Player {
	return []*playerdata.Player{q.a.lo, q.a.hi, q.b.lo, q.b.hi}
}

func (p *soloDuo) ExtractMatches(scope *envelope.Scope) []Candidate {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.players) < 2*p.MaxTeamSize() {
		scope.Log.WithField("reason", constants.ReasonNotEnoughPlayers).
			Debugf("pool %s: %d waiting", p.name, len(p.players))
		return nil
	}

	sorted := sortByRating(p.name, p.players)
	pairs := buildPairs(p.name, sorted)
	defer releasePairs(pairs)

	quartets := buildQuartets(pairs)

	consumed := make(map[*playerdata.Player]bool)
	var out []Candidate
	for _, q := range quartets {
		if anyConsumed(consumed, q.players()...) {
			if p.metrics != nil {
				p.metrics.AddCandidateSkipped(p.name, constants.SkipReasonPlayerConsumed)
			}
			continue
		}
		cand := splitOuterInner(p.name, q.players())
		if ok, reason := p.validator.Validate(p.name, cand); !ok {
			scope.Log.WithField("reason", reason).Debugf("pool %s: candidate rejected", p.name)
			if p.metrics != nil {
				p.metrics.AddCandidateSkipped(p.name, reason)
			}
			continue
		}
		for _, member := range q.players() {
			consumed[member] = true
		}
		out = append(out, cand)
	}

	if len(consumed) > 0 {
		p.players = removeConsumed(p.players, consumed)
	}
	return out
}

// buildQuartets pairs every adjacency pair with its nearest non-overlapping
// neighbor, scanning outward toward lower indices first and then toward
// higher. Duplicate quartets are dropped and the survivors are ordered by
// combined tightness so the closest-skill candidates get first pick of the
// pool.
func buildQuartets(pairs []adjacentPair) []quartet {
	seen := make(map[[2]int]bool)
	var quartets []quartet
	for i := range pairs {
		neighbor := -1
		for j := i - 1; j >= 0; j-- {
			if !overlaps(pairs[i], pairs[j]) {
				neighbor = j
				break
			}
		}
		if neighbor < 0 {
			for j := i + 1; j < len(pairs); j++ {
				if !overlaps(pairs[i], pairs[j]) {
					neighbor = j
					break
				}
			}
		}
		if neighbor < 0 {
			continue
		}

		key := [2]int{pairs[i].index, pairs[neighbor].index}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		quartets = append(quartets, quartet{
			a:         pairs[i],
			b:         pairs[neighbor],
			tightness: pairs[i].gap + pairs[neighbor].gap,
		})
	}

	sort.SliceStable(quartets, func(i, j int) bool {
		return quartets[i].tightness < quartets[j].tightness
	})
	return quartets
}

// splitOuterInner sorts the four players by rating descending and puts the
// two middle-ranked on one team and the highest plus lowest on the other.
func splitOuterInner(pool string, players []*playerdata.Player) Candidate {
	desc := make([]*playerdata.Player, len(players))
	copy(desc, players)
	sort.SliceStable(desc, func(i, j int) bool {
		return desc[i].Rating(pool) > desc[j].Rating(pool)
	})
	return Candidate{
		TeamA: []*playerdata.Player{desc[1], desc[2]},
		TeamB: []*playerdata.Player{desc[0], desc[3]},
	}
}

func removePlayers(have []*playerdata.Player, gone []*playerdata.Player) []*playerdata.Player {
	goneSet := make(map[*playerdata.Player]bool, len(gone))
	for _, p := range gone {
		goneSet[p] = true
	}
	return removeConsumed(have, goneSet)
}

func removeConsumed(have []*playerdata.Player, gone map[*playerdata.Player]bool) []*playerdata.Player {
	kept := have[:0]
	for _, p := range have {
		if !gone[p] {
			kept = append(kept, p)
		}
	}
	return kept
}
