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
	"github.com/AccelByte/elo-team-matchmaker/pkg/mathutil"
	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/playerdata"
)

// soloTrio matches six solo players into two teams of three. Candidates are
// triples of pairwise-disjoint adjacency pairs, searched exhaustively per
// scan. The cubic cost over pairs is acceptable because waiting pools stay
// small; disjointness pruning keeps the constant low.
type soloTrio struct {
	name      string
	validator *Validator
	metrics   metrics.MatchmakingMetrics

	mu      sync.Mutex
	players []*playerdata.Player
}

func newSoloTrio(name string, validator *Validator, m metrics.MatchmakingMetrics) *soloTrio {
	return &soloTrio{name: name, validator: validator, metrics: m}
}

func (p *soloTrio) Kind() models.PoolKind { return models.SoloTrio }
func (p *soloTrio) MaxPremadeSize() int   { return 1 }
func (p *soloTrio) MaxTeamSize() int      { return 3 }

func (p *soloTrio) Add(team *playerdata.Team) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.players = append(p.players, team.Players()...)
}

func (p *soloTrio) Remove(players []*playerdata.Player) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.players = removePlayers(p.players, players)
}

func (p *soloTrio) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.players)
}

// pairTriple is a candidate match of three pairwise-disjoint adjacency
// pairs. Delta is the balance objective the search minimizes; zero is a
// perfect candidate.
type pairTriple struct {
	a, b, c adjacentPair
	delta   float64
}

func (t pairTriple) players() []*playerdata.Player {
	return []*playerdata.Player{t.a.lo, t.a.hi, t.b.lo, t.b.hi, t.c.lo, t.c.hi}
}

func (p *soloTrio) ExtractMatches(scope *envelope.Scope) []Candidate {
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

	triples := buildTriples(pairs)

	consumed := make(map[*playerdata.Player]bool)
	var out []Candidate
	for _, t := range triples {
		if anyConsumed(consumed, t.players()...) {
			if p.metrics != nil {
				p.metrics.AddCandidateSkipped(p.name, constants.SkipReasonPlayerConsumed)
			}
			continue
		}
		cand := assembleTrioTeams(t)
		if ok, reason := p.validator.Validate(p.name, cand); !ok {
			scope.Log.WithField("reason", reason).Debugf("pool %s: candidate rejected", p.name)
			if p.metrics != nil {
				p.metrics.AddCandidateSkipped(p.name, reason)
			}
			continue
		}
		for _, member := range t.players() {
			consumed[member] = true
		}
		out = append(out, cand)
	}

	if len(consumed) > 0 {
		p.players = removeConsumed(p.players, consumed)
	}
	return out
}

// buildTriples enumerates every triple of pairwise-disjoint adjacency pairs
// (A, B, C), keyed by the balance objective |avg(A) - (avg(B) + avg(C))|,
// best first. B and C are interchangeable in the objective so only ordered
// combinations are generated.
func buildTriples(pairs []adjacentPair) []pairTriple {
	var triples []pairTriple
	for i := range pairs {
		for j := range pairs {
			if j == i || overlaps(pairs[i], pairs[j]) {
				continue
			}
			for k := j + 1; k < len(pairs); k++ {
				if k == i || overlaps(pairs[i], pairs[k]) || overlaps(pairs[j], pairs[k]) {
					continue
				}
				triples = append(triples, pairTriple{
					a:     pairs[i],
					b:     pairs[j],
					c:     pairs[k],
					delta: mathutil.Abs(pairs[i].avg - (pairs[j].avg + pairs[k].avg)),
				})
			}
		}
	}
	sort.SliceStable(triples, func(i, j int) bool {
		return triples[i].delta < triples[j].delta
	})
	return triples
}

// assembleTrioTeams generalizes the outer/inner split to three pairs: the
// best of A plays with the worsts of B and C, the worst of A with the bests
// of B and C.
func assembleTrioTeams(t pairTriple) Candidate {
	return Candidate{
		TeamA: []*playerdata.Player{t.a.hi, t.b.lo, t.c.lo},
		TeamB: []*playerdata.Player{t.a.lo, t.b.hi, t.c.hi},
	}
}
