// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pool

import (
	"sync"

	"github.com/AccelByte/elo-team-matchmaker/pkg/constants"
	"github.com/AccelByte/elo-team-matchmaker/pkg/envelope"
	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/playerdata"
)

// premade is the declared-but-unimplemented team-vs-team pool. Membership
// works so premade queues can be joined and left, but no match is ever
// produced. Kept as an explicit stub rather than silently reusing the solo
// algorithms, which would tear premade teams apart.
type premade struct {
	name string
	kind models.PoolKind

	mu    sync.Mutex
	teams []*playerdata.Team
}

func newPremade(name string, kind models.PoolKind) *premade {
	return &premade{name: name, kind: kind}
}

func (p *premade) Kind() models.PoolKind { return p.kind }
func (p *premade) MaxPremadeSize() int   { return p.kind.MaxPremadeSize() }
func (p *premade) MaxTeamSize() int      { return p.kind.TeamSize() }

func (p *premade) Add(team *playerdata.Team) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.teams = append(p.teams, team)
}

// Remove drops every team that contains any of the given players.
func (p *premade) Remove(players []*playerdata.Player) {
	gone := make(map[*playerdata.Player]bool, len(players))
	for _, player := range players {
		gone[player] = true
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	kept := p.teams[:0]
	for _, team := range p.teams {
		contains := false
		for _, member := range team.Players() {
			if gone[member] {
				contains = true
				break
			}
		}
		if !contains {
			kept = append(kept, team)
		}
	}
	p.teams = kept
}

func (p *premade) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, team := range p.teams {
		n += team.Size()
	}
	return n
}

func (p *premade) ExtractMatches(scope *envelope.Scope) []Candidate {
	p.mu.Lock()
	waiting := len(p.teams)
	p.mu.Unlock()
	if waiting > 0 {
		scope.Log.WithField("reason", constants.ReasonPremadeStub).
			Debugf("pool %s: %d teams waiting", p.name, waiting)
	}
	return nil
}
