// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
)

func TestRankFromRating(t *testing.T) {
	table := NewRankTable(models.DefaultRanks)

	tests := []struct {
		name   string
		rating int
		want   string
	}{
		{name: "below the ladder clamps to the first rank", rating: 100, want: "Tin"},
		{name: "exactly the first threshold", rating: 800, want: "Tin"},
		{name: "inside the first interval", rating: 1000, want: "Tin"},
		{name: "exactly a middle threshold", rating: 1130, want: "Bronze"},
		{name: "inside a middle interval", rating: 1380, want: "Bronze"},
		{name: "just below a threshold", rating: 1999, want: "Gold"},
		{name: "just below the last threshold", rating: 2999, want: "Diamond"},
		{name: "exactly the last threshold", rating: 3000, want: "Valhallan"},
		{name: "above the ladder clamps to the last rank", rating: 9000, want: "Valhallan"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, table.RankFromRating(tc.rating))
		})
	}
}

func TestNewRankTableCopiesAndSorts(t *testing.T) {
	ranks := []models.Rank{
		{Name: "High", Start: 2000},
		{Name: "Low", Start: 500},
		{Name: "Mid", Start: 1000},
	}
	table := NewRankTable(ranks)

	// mutating the caller's slice after construction must not leak in
	ranks[1].Name = "Broken"
	ranks[1].Start = 99999

	assert.Equal(t, "Low", table.RankFromRating(700))
	assert.Equal(t, "Mid", table.RankFromRating(1500))
	assert.Equal(t, "High", table.RankFromRating(2500))
}
