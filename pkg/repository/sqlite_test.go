// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
)

func testSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "ratings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteRatingRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testSQLite(t)

	_, err := s.GetRating(ctx, "p1", "solo2v2")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SetRating(ctx, "p1", "solo2v2", 1200))
	require.NoError(t, s.SetRating(ctx, "p1", "solo2v2", 1234))

	r, err := s.GetRating(ctx, "p1", "solo2v2")
	require.NoError(t, err)
	assert.Equal(t, 1234, r, "second write wins the upsert")
}

func TestSQLiteRolesReplaced(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testSQLite(t)

	require.NoError(t, s.SetRoles(ctx, "p1", []models.Role{models.RoleRunner, models.RoleSupport}))
	require.NoError(t, s.SetRoles(ctx, "p1", []models.Role{models.RoleDefense}))

	roles, err := s.GetRoles(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []models.Role{models.RoleDefense}, roles)
}

func TestSQLiteLinks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := testSQLite(t)

	exists, err := s.LinkExists(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Link(ctx, "p1", "ext-1"))
	require.NoError(t, s.Link(ctx, "p1", "ext-2"))

	id, err := s.ExternalID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "ext-2", id, "relinking replaces the external id")
}
