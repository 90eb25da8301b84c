// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AccelByte/elo-team-matchmaker/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		StartRating:       800,
		LowerBoundRating:  800,
		UpperBoundRating:  3000,
		LowerBoundKOnWin:  50,
		UpperBoundKOnWin:  10,
		LowerBoundKOnLoss: 10,
		UpperBoundKOnLoss: 50,
		LowerBoundKOnDraw: 0,
		UpperBoundKOnDraw: 0,
	}
}

func TestExpectedScore(t *testing.T) {
	tests := []struct {
		name string
		a    float64
		b    float64
		want float64
	}{
		{name: "equal ratings", a: 800, b: 800, want: 0.5},
		{name: "400 points below", a: 1000, b: 1400, want: 1.0 / 11.0},
		{name: "400 points above", a: 1400, b: 1000, want: 10.0 / 11.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ExpectedScore(tc.a, tc.b), 1e-9)
		})
	}
}

func TestExpectedScoreComplementary(t *testing.T) {
	ratings := []float64{800, 950, 1400, 2100, 3000}
	for _, a := range ratings {
		for _, b := range ratings {
			assert.InDelta(t, 1.0, ExpectedScore(a, b)+ExpectedScore(b, a), 1e-9,
				"expectations of %v vs %v must sum to one", a, b)
		}
	}
}

func TestKFactor(t *testing.T) {
	model := NewModel(testConfig())

	tests := []struct {
		name    string
		rating  int
		outcome Outcome
		want    float64
	}{
		{name: "win at lower bound", rating: 800, outcome: Win, want: 50},
		{name: "win below lower bound clamps", rating: 100, outcome: Win, want: 50},
		{name: "win at midpoint", rating: 1900, outcome: Win, want: 30},
		{name: "win at upper bound", rating: 3000, outcome: Win, want: 10},
		{name: "win above upper bound clamps", rating: 4200, outcome: Win, want: 10},
		{name: "loss at lower bound", rating: 800, outcome: Loss, want: 10},
		{name: "loss at midpoint", rating: 1900, outcome: Loss, want: 30},
		{name: "loss at upper bound", rating: 3000, outcome: Loss, want: 50},
		{name: "draw is flat zero", rating: 1900, outcome: Draw, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, model.KFactor(tc.rating, tc.outcome), 1e-9)
		})
	}
}

func TestKFactorWinDecreasesWithRating(t *testing.T) {
	model := NewModel(testConfig())
	prev := model.KFactor(800, Win)
	for rating := 900; rating <= 3000; rating += 100 {
		k := model.KFactor(rating, Win)
		assert.Less(t, k, prev, "win K-factor must shrink as rating grows, rating %d", rating)
		prev = k
	}
}

func TestDelta(t *testing.T) {
	model := NewModel(testConfig())

	tests := []struct {
		name     string
		rating   int
		outcome  Outcome
		expected float64
		want     int
	}{
		{name: "even win at start rating", rating: 800, outcome: Win, expected: 0.5, want: 25},
		{name: "even win at ceiling", rating: 3000, outcome: Win, expected: 0.5, want: 5},
		{name: "even loss at start rating", rating: 800, outcome: Loss, expected: 0.5, want: -5},
		{name: "even loss at ceiling", rating: 3000, outcome: Loss, expected: 0.5, want: -25},
		{name: "draw changes nothing", rating: 1500, outcome: Draw, expected: 0.2, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, model.Delta(tc.rating, tc.outcome, tc.expected))
		})
	}
}

func TestDeltaWinFloor(t *testing.T) {
	model := NewModel(testConfig())

	// a heavy favorite beating a far weaker opponent rounds to zero,
	// the floor still awards one point
	expected := ExpectedScore(3000, 800)
	assert.Equal(t, 1, model.Delta(3000, Win, expected))

	// the floor never applies to losses
	assert.LessOrEqual(t, model.Delta(800, Loss, ExpectedScore(800, 3000)), 0)
}

func TestTeamAverage(t *testing.T) {
	assert.InDelta(t, 1005.0, TeamAverage([]float64{1000, 1010}), 1e-9)
	assert.InDelta(t, 1500.0, TeamAverage([]float64{800, 1500, 2200}), 1e-9)
}
