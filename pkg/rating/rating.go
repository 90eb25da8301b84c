// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package rating implements the Elo variant used by the matchmaking engine:
// a logistic expected score, a piecewise-linear rating-dependent K-factor per
// outcome, and an integer rating delta with a +1 floor on wins. All functions
// are pure; team aggregation substitutes the average opposing rating while
// each member's own rating drives their individual expectation.
package rating

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/AccelByte/elo-team-matchmaker/pkg/config"
)

// Outcome is the score a side earned in a match.
type Outcome float64

const (
	Loss Outcome = 0
	Draw Outcome = 0.5
	Win  Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "W"
	case Loss:
		return "L"
	default:
		return "tied"
	}
}

// Model evaluates rating updates against one set of configured bounds.
type Model struct {
	cfg *config.Config
}

func NewModel(cfg *config.Config) *Model {
	return &Model{cfg: cfg}
}

// ExpectedScore is the probability that a rating beats an opposing rating,
// 1 / (1 + 10^((b-a)/400)). ExpectedScore(a,b) + ExpectedScore(b,a) == 1.
func ExpectedScore(a, b float64) float64 {
	return 1 / (1 + math.Pow(10, (b-a)/400))
}

// KFactor interpolates linearly between the configured (lowRating, lowK) and
// (highRating, highK) pair for the outcome, flat outside that range. Wins use
// a decreasing slope so low-rated players gain faster, losses the increasing
// one so they lose less.
func (m *Model) KFactor(rating int, outcome Outcome) float64 {
	switch outcome {
	case Win:
		return linearClamped(m.cfg.LowerBoundRating, m.cfg.UpperBoundRating, m.cfg.LowerBoundKOnWin, m.cfg.UpperBoundKOnWin, rating)
	case Loss:
		return linearClamped(m.cfg.LowerBoundRating, m.cfg.UpperBoundRating, m.cfg.LowerBoundKOnLoss, m.cfg.UpperBoundKOnLoss, rating)
	default:
		return linearClamped(m.cfg.LowerBoundRating, m.cfg.UpperBoundRating, m.cfg.LowerBoundKOnDraw, m.cfg.UpperBoundKOnDraw, rating)
	}
}

// linearClamped is the linear function through (x1, y1) and (x2, y2) with the
// edges cut off flat.
func linearClamped(x1, x2 int, y1, y2 float64, x int) float64 {
	if x < x1 {
		return y1
	}
	if x < x2 {
		return (float64(x-x1)/float64(x2-x1))*(y2-y1) + y1
	}
	return y2
}

// Delta is the signed rating change for a player at the given rating,
// floor(K * (outcome - expected)). A win always yields at least +1 so winners
// never regress or stay flat.
func (m *Model) Delta(rating int, outcome Outcome, expected float64) int {
	diff := int(math.Floor(m.KFactor(rating, outcome) * (float64(outcome) - expected)))
	if outcome == Win && diff < 1 {
		diff = 1
	}
	return diff
}

// TeamAverage is the arithmetic mean rating of a team. Teams are non-empty by
// contract.
func TeamAverage(ratings []float64) float64 {
	return stat.Mean(ratings, nil)
}
