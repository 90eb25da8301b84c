// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package pool implements the waiting sets and the matching algorithms. A
// pool holds the players queued for one (mode, region) and extracts zero or
// more non-overlapping candidate matches per scan. Extraction is greedy and
// order-sensitive: a player consumed by an accepted candidate is unavailable
// to later candidates within the same call, while rejected candidates
// consume nobody.
package pool

import (
	"github.com/AccelByte/elo-team-matchmaker/pkg/envelope"
	"github.com/AccelByte/elo-team-matchmaker/pkg/metrics"
	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/playerdata"
)

// Candidate is a proposed match of two system-assembled teams.
type Candidate struct {
	TeamA []*playerdata.Player
	TeamB []*playerdata.Player
}

// Players returns all participants of the candidate, team A first.
func (c Candidate) Players() []*playerdata.Player {
	out := make([]*playerdata.Player, 0, len(c.TeamA)+len(c.TeamB))
	out = append(out, c.TeamA...)
	out = append(out, c.TeamB...)
	return out
}

// Pool is the waiting set for one queue. Add, Remove and ExtractMatches are
// serialized against each other by the implementation; different pools share
// no state and may be scanned in parallel.
type Pool interface {
	Kind() models.PoolKind
	MaxPremadeSize() int
	MaxTeamSize() int

	// Add inserts every member of the team into the waiting set. The
	// caller guarantees no member has another active queue or match.
	Add(team *playerdata.Team)

	// Remove deletes the given players from the waiting set. Unknown
	// players are ignored.
	Remove(players []*playerdata.Player)

	// Size returns the number of waiting players.
	Size() int

	// ExtractMatches returns the ready matches of this scan, each player
	// appearing in at most one of them.
	ExtractMatches(scope *envelope.Scope) []Candidate
}

// New builds the pool implementation for a blueprint. A nil metrics
// collection disables skip counting.
func New(bp models.QueueBlueprint, validator *Validator, m metrics.MatchmakingMetrics) Pool {
	switch bp.Kind {
	case models.SoloDuo:
		return newSoloDuo(bp.Name, validator, m)
	case models.SoloTrio:
		return newSoloTrio(bp.Name, validator, m)
	default:
		return newPremade(bp.Name, bp.Kind)
	}
}
