// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package playerdata

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/AccelByte/elo-team-matchmaker/pkg/config"
	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/repository"
)

// Directory owns every Player for the process lifetime. Players are hydrated
// from the repository on first access; concurrent hydrations of the same id
// are collapsed into one repository round trip.
//
// There is no eviction. The working set is bounded by the size of the player
// base, which is acceptable at current scale.
type Directory struct {
	cfg        *config.Config
	repo       repository.Repository
	blueprints []models.QueueBlueprint

	mu      sync.RWMutex
	players map[ID]*Player
	sf      singleflight.Group
}

func NewDirectory(cfg *config.Config, repo repository.Repository, blueprints []models.QueueBlueprint) *Directory {
	return &Directory{
		cfg:        cfg,
		repo:       repo,
		blueprints: blueprints,
		players:    make(map[ID]*Player),
	}
}

// Get returns the player for the id, hydrating roles and per-pool ratings
// from the repository on a cache miss. The returned pointer is the single
// live instance for that id.
func (d *Directory) Get(ctx context.Context, id ID) (*Player, error) {
	d.mu.RLock()
	p, ok := d.players[id]
	d.mu.RUnlock()
	if ok {
		return p, nil
	}

	v, err, _ := d.sf.Do(string(id), func() (interface{}, error) {
		// another caller may have won the race before we got the flight
		d.mu.RLock()
		existing, ok := d.players[id]
		d.mu.RUnlock()
		if ok {
			return existing, nil
		}

		p, err := d.hydrate(ctx, id)
		if err != nil {
			return nil, err
		}

		d.mu.Lock()
		d.players[id] = p
		d.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Player), nil
}

// Peek returns a player without hydrating, nil when not resident.
func (d *Directory) Peek(id ID) *Player {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.players[id]
}

func (d *Directory) hydrate(ctx context.Context, id ID) (*Player, error) {
	p := NewPlayer(id, d.cfg.StartRating)

	roles, err := d.repo.GetRoles(ctx, string(id))
	if err != nil {
		return nil, err
	}
	p.setRoles(roles)

	for _, bp := range d.blueprints {
		r, err := d.repo.GetRating(ctx, string(id), bp.Name)
		if errors.Is(err, repository.ErrNotFound) {
			r = d.cfg.StartRating
		} else if err != nil {
			return nil, err
		}
		p.SetRating(bp.Name, r)
	}
	return p, nil
}

// SetRoles updates a player's declared role preferences in memory and writes
// them back to the repository.
func (d *Directory) SetRoles(ctx context.Context, p *Player, roles []models.Role) error {
	if err := d.repo.SetRoles(ctx, string(p.ID), roles); err != nil {
		return err
	}
	p.setRoles(roles)
	return nil
}
