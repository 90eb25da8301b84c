// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package playerdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
)

func TestPlayerRatingDefaultsLazily(t *testing.T) {
	t.Parallel()
	p := NewPlayer("p1", 800)

	assert.Equal(t, 800, p.Rating("solo2v2"))

	p.SetRating("solo2v2", 1200)
	assert.Equal(t, 1200, p.Rating("solo2v2"))
	assert.Equal(t, 800, p.Rating("solo3v3"), "pools are rated independently")
}

func TestPlayerRolesDefaultToAll(t *testing.T) {
	t.Parallel()
	p := NewPlayer("p1", 800)

	assert.ElementsMatch(t, models.AllRoles, p.Roles())
	assert.Empty(t, p.DeclaredRoles())
	assert.True(t, p.CanPlay(models.RoleRunner))

	p.setRoles([]models.Role{models.RoleSupport})
	assert.False(t, p.CanPlay(models.RoleRunner))
	assert.True(t, p.CanPlay(models.RoleSupport))
}

func TestPlayerGuardedQueueRef(t *testing.T) {
	t.Parallel()
	p := NewPlayer("p1", 800)

	ref := models.QueueRef{Pool: "solo2v2", Region: "EU"}
	require.NoError(t, p.SetQueue(ref))
	assert.Equal(t, ref, p.Queue())

	err := p.SetQueue(models.QueueRef{Pool: "solo3v3", Region: "EU"})
	assert.ErrorIs(t, err, models.ValidationErrorPlayerQueued)
	assert.Equal(t, ref, p.Queue(), "failed stamp must not overwrite")

	require.NoError(t, p.SetQueue(models.QueueRef{}))
	assert.True(t, p.Queue().IsZero())
}

func TestPlayerGuardedMatchRef(t *testing.T) {
	t.Parallel()
	p := NewPlayer("p1", 800)

	require.NoError(t, p.SetMatch("m1"))
	assert.ErrorIs(t, p.SetMatch("m2"), models.ValidationErrorPlayerInMatch)
	assert.Equal(t, models.MatchID("m1"), p.Match())

	require.NoError(t, p.SetMatch(""))
	assert.NoError(t, p.SetMatch("m2"))
}
