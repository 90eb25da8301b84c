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

// recordingAborter implements QueueAborter and records the teams it was
// asked to pull out of their queue.
type recordingAborter struct {
	aborted []*Team
}

func (r *recordingAborter) Abort(t *Team) error {
	r.aborted = append(r.aborted, t)
	_ = t.SetQueue(models.QueueRef{}, 0)
	for _, p := range t.Players() {
		_ = p.SetQueue(models.QueueRef{})
	}
	return nil
}

func TestTeamJoinWeak(t *testing.T) {
	t.Parallel()
	p := NewPlayer("p1", 800)

	first, err := NewTeamWithHost(p, nil)
	require.NoError(t, err)
	assert.Same(t, first, p.Team())
	assert.Same(t, p, first.Host())

	// joining the same team twice is an error
	assert.ErrorIs(t, first.Join(p, JoinWeak, nil), models.ValidationErrorAlreadyOnThisTeam)

	// a weak join refuses while the player belongs elsewhere
	second := NewTeam()
	assert.ErrorIs(t, second.Join(p, JoinWeak, nil), models.ValidationErrorPlayerInTeam)
	assert.Same(t, first, p.Team())
}

func TestTeamJoinStrongMovesPlayer(t *testing.T) {
	t.Parallel()
	p := NewPlayer("p1", 800)

	first, err := NewTeamWithHost(p, nil)
	require.NoError(t, err)

	second := NewTeam()
	require.NoError(t, second.Join(p, JoinStrong, nil))

	assert.Same(t, second, p.Team())
	assert.Equal(t, 0, first.Size())
	assert.Equal(t, 1, second.Size())
}

func TestTeamJoinStrongAbortsQueuedPriorTeam(t *testing.T) {
	t.Parallel()
	p := NewPlayer("p1", 800)
	mate := NewPlayer("p2", 800)

	first, err := NewTeamWithHost(p, nil)
	require.NoError(t, err)
	require.NoError(t, first.Join(mate, JoinWeak, nil))

	ref := models.QueueRef{Pool: "team2v2", Region: "EU"}
	require.NoError(t, first.SetQueue(ref, 2))

	aborter := &recordingAborter{}
	second := NewTeam()
	require.NoError(t, second.Join(p, JoinStrong, aborter))

	require.Len(t, aborter.aborted, 1)
	assert.Same(t, first, aborter.aborted[0])
	assert.True(t, first.Queue().IsZero(), "vacated team must leave its queue")
	assert.Same(t, second, p.Team())
}

func TestTeamJoinRespectsPremadeLimitWhileQueued(t *testing.T) {
	t.Parallel()
	host := NewPlayer("host", 800)
	team, err := NewTeamWithHost(host, nil)
	require.NoError(t, err)
	require.NoError(t, team.Join(NewPlayer("p2", 800), JoinWeak, nil))

	require.NoError(t, team.SetQueue(models.QueueRef{Pool: "team2v2", Region: "EU"}, 2))

	err = team.Join(NewPlayer("p3", 800), JoinWeak, nil)
	assert.ErrorIs(t, err, models.ValidationErrorTeamTooLarge)

	// system joins are exempt so match assembly is never blocked
	assert.NoError(t, team.Join(NewPlayer("sys", 800), JoinSystem, nil))
}

func TestTeamKickPromotesHost(t *testing.T) {
	t.Parallel()
	host := NewPlayer("host", 800)
	mate := NewPlayer("mate", 800)

	team, err := NewTeamWithHost(host, nil)
	require.NoError(t, err)
	require.NoError(t, team.Join(mate, JoinWeak, nil))

	require.NoError(t, team.Kick(host, nil))
	assert.Same(t, mate, team.Host())
	assert.Nil(t, host.Team())

	// kicking a stranger fails
	assert.ErrorIs(t, team.Kick(NewPlayer("x", 800), nil), models.ValidationErrorPlayerNotOnTeam)
}

func TestTeamKickAbortsQueueFirst(t *testing.T) {
	t.Parallel()
	host := NewPlayer("host", 800)
	mate := NewPlayer("mate", 800)
	team, err := NewTeamWithHost(host, nil)
	require.NoError(t, err)
	require.NoError(t, team.Join(mate, JoinWeak, nil))
	require.NoError(t, team.SetQueue(models.QueueRef{Pool: "team2v2", Region: "EU"}, 2))

	aborter := &recordingAborter{}
	require.NoError(t, team.Kick(mate, aborter))
	assert.Len(t, aborter.aborted, 1)
	assert.True(t, team.Queue().IsZero())
}

func TestTeamGuardedSetters(t *testing.T) {
	t.Parallel()
	team := NewTeam()

	ref := models.QueueRef{Pool: "solo2v2", Region: "EU"}
	require.NoError(t, team.SetQueue(ref, 1))
	assert.ErrorIs(t, team.SetQueue(models.QueueRef{Pool: "solo2v2", Region: "US-E"}, 1),
		models.ValidationErrorTeamAlreadyQueued)

	// clearing always succeeds and unlocks re-stamping
	require.NoError(t, team.SetQueue(models.QueueRef{}, 0))
	assert.NoError(t, team.SetQueue(ref, 1))

	require.NoError(t, team.SetMatch("m1"))
	assert.NoError(t, team.SetMatch("m1"), "re-stamping the same match is a no-op")
	assert.ErrorIs(t, team.SetMatch("m2"), models.ValidationErrorTeamInMatch)
	require.NoError(t, team.SetMatch(""))
	assert.NoError(t, team.SetMatch("m2"))
}

func TestTeamAverageRating(t *testing.T) {
	t.Parallel()
	a := NewPlayer("a", 800)
	b := NewPlayer("b", 800)
	a.SetRating("solo2v2", 1000)
	b.SetRating("solo2v2", 1500)

	team := NewTeam()
	require.NoError(t, team.Join(a, JoinSystem, nil))
	require.NoError(t, team.Join(b, JoinSystem, nil))

	assert.InDelta(t, 1250.0, team.AverageRating("solo2v2"), 1e-9)
}
