// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package playerdata

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/utils"
)

// JoinMode controls the strictness of a team join.
type JoinMode int

const (
	// JoinWeak refuses when the team is full for its queue or the player is
	// already on a different team.
	JoinWeak JoinMode = iota
	// JoinStrong performs the size check but removes the player from their
	// prior team instead of refusing.
	JoinStrong
	// JoinSystem bypasses all checks and does not rebind the player's team
	// reference. Used only by the matching algorithms to assemble match-time
	// teams.
	JoinSystem
)

// QueueAborter removes a queued team from its pool and clears the queue
// back-references. Implemented by the queue manager.
type QueueAborter interface {
	Abort(team *Team) error
}

// Team is an ordered list of players that queue and play together. Every
// member's team reference points back here; the host is always a current
// member and the only one allowed to initiate queueing or kicking.
type Team struct {
	ID string

	mu           sync.Mutex
	players      []*Player
	host         *Player
	queue        models.QueueRef
	match        models.MatchID
	premadeLimit int // max members while the queue ref is stamped, 0 means unbounded
}

// NewTeam creates an empty team. The matching algorithms use this to
// assemble match-time teams via JoinSystem.
func NewTeam() *Team {
	return &Team{ID: utils.GenerateUUID()}
}

// NewTeamWithHost creates a team and joins the host strongly, pulling them
// out of any previous team.
func NewTeamWithHost(host *Player, aborter QueueAborter) (*Team, error) {
	t := NewTeam()
	if err := t.Join(host, JoinStrong, aborter); err != nil {
		return nil, err
	}
	t.mu.Lock()
	t.host = host
	t.mu.Unlock()
	return t, nil
}

// Join adds a player to the team according to the join mode. Re-joining the
// current team is always an error. The aborter is only consulted for
// JoinStrong when the player's previous team has to be vacated.
func (t *Team) Join(p *Player, mode JoinMode, aborter QueueAborter) error {
	if p.Team() == t {
		return models.ValidationErrorAlreadyOnThisTeam
	}

	if mode != JoinSystem {
		t.mu.Lock()
		full := !t.queue.IsZero() && t.premadeLimit > 0 && len(t.players) >= t.premadeLimit
		t.mu.Unlock()
		if full {
			return models.ValidationErrorTeamTooLarge
		}
	}

	if prior := p.Team(); prior != nil {
		switch mode {
		case JoinWeak:
			return models.ValidationErrorPlayerInTeam
		case JoinStrong:
			if err := prior.Kick(p, aborter); err != nil {
				return err
			}
		}
	}

	t.mu.Lock()
	t.players = append(t.players, p)
	t.mu.Unlock()
	if mode != JoinSystem {
		p.setTeam(t)
	}
	return nil
}

// Kick removes a player from the team. A queued team is pulled out of its
// queue first. If the removed player was host, the first remaining member is
// promoted; an emptied team is simply abandoned.
func (t *Team) Kick(p *Player, aborter QueueAborter) error {
	t.mu.Lock()
	queued := !t.queue.IsZero()
	t.mu.Unlock()
	if queued && aborter != nil {
		if err := aborter.Abort(t); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	idx := -1
	for i, member := range t.players {
		if member == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.ValidationErrorPlayerNotOnTeam
	}
	t.players = append(t.players[:idx], t.players[idx+1:]...)
	p.setTeam(nil)
	if t.host == p {
		t.host = nil
		if len(t.players) > 0 {
			t.host = t.players[0]
		}
	}
	return nil
}

// Players returns a snapshot of the member list.
func (t *Team) Players() []*Player {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Player, len(t.players))
	copy(out, t.players)
	return out
}

// Size returns the current number of members.
func (t *Team) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.players)
}

// Host returns the current host, nil for system-assembled teams.
func (t *Team) Host() *Player {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.host
}

// AverageRating is the arithmetic mean rating of the members in the given
// pool. Teams are non-empty by contract.
func (t *Team) AverageRating(pool string) float64 {
	members := t.Players()
	ratings := make([]float64, len(members))
	for i, p := range members {
		ratings[i] = float64(p.Rating(pool))
	}
	return stat.Mean(ratings, nil)
}

// SetQueue stamps the queue reference and remembers the premade limit of the
// pool while queued. Stamping over an existing reference fails, clearing
// always succeeds.
func (t *Team) SetQueue(ref models.QueueRef, premadeLimit int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ref.IsZero() {
		t.queue = models.QueueRef{}
		t.premadeLimit = 0
		return nil
	}
	if !t.queue.IsZero() {
		return models.ValidationErrorTeamAlreadyQueued
	}
	t.queue = ref
	t.premadeLimit = premadeLimit
	return nil
}

// Queue returns the queue this team is searching in, if any.
func (t *Team) Queue() models.QueueRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.queue
}

// SetMatch stamps the match reference. Stamping a different match over an
// existing one fails, re-stamping the same match is a no-op, clearing always
// succeeds.
func (t *Team) SetMatch(id models.MatchID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id == "" {
		t.match = ""
		return nil
	}
	if t.match != "" && t.match != id {
		return models.ValidationErrorTeamInMatch
	}
	t.match = id
	return nil
}

// Match returns the match this team is playing in, if any.
func (t *Team) Match() models.MatchID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.match
}
