// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package match holds the in-flight match representation and the registry
// that owns every ongoing match, enforces at-most-one-match-per-player and
// applies the rating model when a result is reported.
package match

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/playerdata"
	"github.com/AccelByte/elo-team-matchmaker/pkg/rating"
)

// Side identifies one of the two teams of a match from a neutral frame.
type Side int

const (
	SideNone Side = iota
	SideA
	SideB
)

// Match is an immutable snapshot of two teams at extraction time. Its
// outcome is reported exactly once through the registry.
type Match struct {
	ID        models.MatchID
	Queue     models.QueueRef
	TeamA     *playerdata.Team
	TeamB     *playerdata.Team
	CreatedAt time.Time

	players []*playerdata.Player
}

// New assembles a match from the two extracted teams. Membership is
// system-joined so the players' own team bindings are left alone.
func New(queue models.QueueRef, teamA, teamB []*playerdata.Player) (*Match, error) {
	a := playerdata.NewTeam()
	for _, p := range teamA {
		if err := a.Join(p, playerdata.JoinSystem, nil); err != nil {
			return nil, err
		}
	}
	b := playerdata.NewTeam()
	for _, p := range teamB {
		if err := b.Join(p, playerdata.JoinSystem, nil); err != nil {
			return nil, err
		}
	}

	players := make([]*playerdata.Player, 0, len(teamA)+len(teamB))
	players = append(players, teamA...)
	players = append(players, teamB...)

	return &Match{
		ID:        models.MatchID(ulid.Make().String()),
		Queue:     queue,
		TeamA:     a,
		TeamB:     b,
		CreatedAt: time.Now(),
		players:   players,
	}, nil
}

// Players returns the flattened participant snapshot, team A first.
func (m *Match) Players() []*playerdata.Player {
	out := make([]*playerdata.Player, len(m.players))
	copy(out, m.players)
	return out
}

// SideOf resolves which team the player fought on, SideNone when they are
// not a participant.
func (m *Match) SideOf(player *playerdata.Player) Side {
	for _, p := range m.TeamA.Players() {
		if p == player {
			return SideA
		}
	}
	for _, p := range m.TeamB.Players() {
		if p == player {
			return SideB
		}
	}
	return SideNone
}

// WinnerFromReport resolves the winning side given the reporting player's
// own outcome, using their team membership as the frame of reference.
func (m *Match) WinnerFromReport(reporter *playerdata.Player, outcome rating.Outcome) Side {
	side := m.SideOf(reporter)
	if side == SideNone || outcome == rating.Draw {
		return SideNone
	}
	if outcome == rating.Win {
		return side
	}
	if side == SideA {
		return SideB
	}
	return SideA
}

// outcomeFor maps the winning side to a team's own outcome.
func outcomeFor(team Side, winner Side) rating.Outcome {
	switch {
	case winner == SideNone:
		return rating.Draw
	case team == winner:
		return rating.Win
	default:
		return rating.Loss
	}
}
