// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package playerdata holds the in-memory player and team entities and the
// directory that owns every player for the process lifetime. Queue and match
// references are guarded: stamping a non-empty value over an already-set one
// is an error, so double-booking cannot pass unnoticed.
package playerdata

import (
	"sync"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/utils"
)

// ID is the stable identifier of a player.
type ID string

// ToID converts a player to its ID, shaped for use with pie.Map.
func ToID(p *Player) ID { return p.ID }

// Player is the live in-memory representation of one player. A player has at
// most one of queue/match set at a time; the team reference, when set, mirrors
// the member list of that team.
type Player struct {
	ID ID

	mu          sync.Mutex
	ratings     map[string]int // pool name -> current rating
	roles       []models.Role  // declared preferences, empty means all roles acceptable
	queue       models.QueueRef
	match       models.MatchID
	team        *Team
	startRating int
}

// NewPlayer creates a bare player with no hydrated state. The directory is
// the usual constructor path.
func NewPlayer(id ID, startRating int) *Player {
	return &Player{
		ID:          id,
		ratings:     make(map[string]int),
		startRating: startRating,
	}
}

// Rating returns the player's rating in the given pool, lazily defaulting to
// the start rating on first read.
func (p *Player) Rating(pool string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.ratings[pool]
	if !ok {
		p.ratings[pool] = p.startRating
		return p.startRating
	}
	return r
}

// SetRating stores the player's new rating for the given pool in memory.
// Persisting it is the caller's concern.
func (p *Player) SetRating(pool string, rating int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ratings[pool] = rating
}

// Roles returns the roles the player can cover. A player with no declared
// preference is mediocre at everything, so all roles are returned.
func (p *Player) Roles() []models.Role {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.roles) == 0 {
		return models.AllRoles
	}
	return p.roles
}

// DeclaredRoles returns only the explicitly declared preferences.
func (p *Player) DeclaredRoles() []models.Role {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.roles
}

func (p *Player) setRoles(roles []models.Role) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.roles = roles
}

// CanPlay reports whether the player covers the given role.
func (p *Player) CanPlay(role models.Role) bool {
	return utils.Contains(p.Roles(), role)
}

// SetQueue stamps the queue reference. Stamping over an existing reference
// fails, clearing (zero ref) always succeeds.
func (p *Player) SetQueue(ref models.QueueRef) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ref.IsZero() {
		p.queue = models.QueueRef{}
		return nil
	}
	if !p.queue.IsZero() {
		return models.ValidationErrorPlayerQueued
	}
	p.queue = ref
	return nil
}

// Queue returns the queue the player is currently searching in, if any.
func (p *Player) Queue() models.QueueRef {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue
}

// SetMatch stamps the match reference. Stamping over an existing reference
// fails, clearing (empty id) always succeeds.
func (p *Player) SetMatch(id models.MatchID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if id == "" {
		p.match = ""
		return nil
	}
	if p.match != "" {
		return models.ValidationErrorPlayerInMatch
	}
	p.match = id
	return nil
}

// Match returns the match the player is currently playing in, if any.
func (p *Player) Match() models.MatchID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.match
}

// Team returns the team the player belongs to, if any.
func (p *Player) Team() *Team {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.team
}

func (p *Player) setTeam(t *Team) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.team = t
}
