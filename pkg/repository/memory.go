// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package repository

import (
	"context"
	"sync"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
)

type ratingKey struct {
	playerID string
	pool     string
}

// Memory is a mutex-guarded in-memory Repository, used by tests and as a
// fallback when no database is configured.
type Memory struct {
	mu      sync.RWMutex
	ratings map[ratingKey]int
	roles   map[string][]models.Role
	links   map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		ratings: make(map[ratingKey]int),
		roles:   make(map[string][]models.Role),
		links:   make(map[string]string),
	}
}

func (m *Memory) GetRating(_ context.Context, playerID, pool string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.ratings[ratingKey{playerID, pool}]
	if !ok {
		return 0, ErrNotFound
	}
	return r, nil
}

func (m *Memory) SetRating(_ context.Context, playerID, pool string, rating int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratings[ratingKey{playerID, pool}] = rating
	return nil
}

func (m *Memory) GetRoles(_ context.Context, playerID string) ([]models.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	roles := m.roles[playerID]
	out := make([]models.Role, len(roles))
	copy(out, roles)
	return out, nil
}

func (m *Memory) SetRoles(_ context.Context, playerID string, roles []models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]models.Role, len(roles))
	copy(stored, roles)
	m.roles[playerID] = stored
	return nil
}

func (m *Memory) Link(_ context.Context, playerID, externalID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[playerID] = externalID
	return nil
}

func (m *Memory) LinkExists(_ context.Context, playerID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.links[playerID]
	return ok, nil
}

func (m *Memory) ExternalID(_ context.Context, playerID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.links[playerID]
	if !ok {
		return "", ErrNotFound
	}
	return id, nil
}
