// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/playerdata"
	"github.com/AccelByte/elo-team-matchmaker/pkg/testsetup"
)

func TestNewSelectsAlgorithm(t *testing.T) {
	t.Parallel()
	v := testValidator(0)

	tests := []struct {
		kind        models.PoolKind
		teamSize    int
		premadeSize int
	}{
		{kind: models.SoloDuo, teamSize: 2, premadeSize: 1},
		{kind: models.SoloTrio, teamSize: 3, premadeSize: 1},
		{kind: models.PremadeDuo, teamSize: 2, premadeSize: 2},
		{kind: models.PremadeTrio, teamSize: 3, premadeSize: 3},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := New(models.QueueBlueprint{Name: "q", Kind: tc.kind}, v, nil)
			assert.Equal(t, tc.kind, p.Kind())
			assert.Equal(t, tc.teamSize, p.MaxTeamSize())
			assert.Equal(t, tc.premadeSize, p.MaxPremadeSize())
		})
	}
}

func TestPremadeMembershipWithoutMatches(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)
	p := newPremade("team2v2", models.PremadeDuo)

	a := soloPlayer("a", "team2v2", 900)
	b := soloPlayer("b", "team2v2", 950)
	team := playerdata.NewTeam()
	require.NoError(t, team.Join(a, playerdata.JoinSystem, nil))
	require.NoError(t, team.Join(b, playerdata.JoinSystem, nil))

	p.Add(team)
	assert.Equal(t, 2, p.Size())

	// no matches come out of the stub
	assert.Empty(t, p.ExtractMatches(g.TestScope))
	assert.Equal(t, 2, p.Size())

	// removing one member drops the whole team
	p.Remove([]*playerdata.Player{a})
	assert.Equal(t, 0, p.Size())
}
