// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
)

func TestMemoryRatings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()

	_, err := m.GetRating(ctx, "p1", "solo2v2")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.SetRating(ctx, "p1", "solo2v2", 1200))
	require.NoError(t, m.SetRating(ctx, "p1", "solo3v3", 900))

	r, err := m.GetRating(ctx, "p1", "solo2v2")
	require.NoError(t, err)
	assert.Equal(t, 1200, r)

	// upsert overwrites
	require.NoError(t, m.SetRating(ctx, "p1", "solo2v2", 1250))
	r, err = m.GetRating(ctx, "p1", "solo2v2")
	require.NoError(t, err)
	assert.Equal(t, 1250, r)

	// pools are keyed independently
	r, err = m.GetRating(ctx, "p1", "solo3v3")
	require.NoError(t, err)
	assert.Equal(t, 900, r)
}

func TestMemoryRoles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()

	roles, err := m.GetRoles(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, roles)

	declared := []models.Role{models.RoleRunner, models.RoleDefense}
	require.NoError(t, m.SetRoles(ctx, "p1", declared))

	stored, err := m.GetRoles(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, declared, stored)

	// the stored slice is a copy, caller mutation does not leak in
	declared[0] = models.RoleSupport
	stored, err = m.GetRoles(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleRunner, stored[0])

	// replacing shrinks
	require.NoError(t, m.SetRoles(ctx, "p1", []models.Role{models.RoleSupport}))
	stored, err = m.GetRoles(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []models.Role{models.RoleSupport}, stored)
}

func TestMemoryLinks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemory()

	exists, err := m.LinkExists(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = m.ExternalID(ctx, "p1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Link(ctx, "p1", "ext-42"))

	exists, err = m.LinkExists(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, exists)

	id, err := m.ExternalID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "ext-42", id)
}
