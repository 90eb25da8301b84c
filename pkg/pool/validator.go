// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pool

import (
	"gonum.org/v1/gonum/stat"

	"github.com/AccelByte/elo-team-matchmaker/pkg/constants"
	"github.com/AccelByte/elo-team-matchmaker/pkg/mathutil"
	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/playerdata"
	"github.com/AccelByte/elo-team-matchmaker/pkg/rating"
)

// Validator checks every candidate match against the two cross-cutting
// constraints: role coverage and the fairness floor.
type Validator struct {
	model *rating.Model

	// fairnessFloor caps the allowed asymmetry of the projected average
	// rating change between the two teams. A floor <= 0 disables the
	// check.
	fairnessFloor float64
}

func NewValidator(model *rating.Model, fairnessFloor float64) *Validator {
	return &Validator{model: model, fairnessFloor: fairnessFloor}
}

// Validate reports whether the candidate may be emitted for the given pool,
// with the skip reason when not.
func (v *Validator) Validate(pool string, c Candidate) (ok bool, reason string) {
	if !teamCoversRoles(c.TeamA) || !teamCoversRoles(c.TeamB) {
		return false, constants.SkipReasonRoleCoverage
	}
	if v.fairnessFloor > 0 && v.deltaAsymmetry(pool, c) > v.fairnessFloor {
		return false, constants.SkipReasonFairnessFloor
	}
	return true, ""
}

// teamCoversRoles requires at least one member capable of the primary role
// and at least one capable of either secondary role.
func teamCoversRoles(team []*playerdata.Player) bool {
	primary := false
	secondary := false
	for _, p := range team {
		if p.CanPlay(models.PrimaryRole) {
			primary = true
		}
		for _, role := range models.SecondaryRoles {
			if p.CanPlay(role) {
				secondary = true
				break
			}
		}
	}
	return primary && secondary
}

// deltaAsymmetry projects the rating deltas of a hypothetical team A win and
// compares the magnitude of each team's average projected change.
func (v *Validator) deltaAsymmetry(pool string, c Candidate) float64 {
	avgA := averageRating(pool, c.TeamA)
	avgB := averageRating(pool, c.TeamB)

	gainA := make([]float64, len(c.TeamA))
	for i, p := range c.TeamA {
		r := p.Rating(pool)
		gainA[i] = float64(v.model.Delta(r, rating.Win, rating.ExpectedScore(float64(r), avgB)))
	}
	lossB := make([]float64, len(c.TeamB))
	for i, p := range c.TeamB {
		r := p.Rating(pool)
		lossB[i] = float64(v.model.Delta(r, rating.Loss, rating.ExpectedScore(float64(r), avgA)))
	}

	return mathutil.Abs(stat.Mean(gainA, nil) + stat.Mean(lossB, nil))
}

func averageRating(pool string, team []*playerdata.Player) float64 {
	ratings := make([]float64, len(team))
	for i, p := range team {
		ratings[i] = float64(p.Rating(pool))
	}
	return stat.Mean(ratings, nil)
}
