// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rating

import (
	"sort"

	"github.com/mitchellh/copystructure"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
)

// RankTable maps ratings to rank labels over a table of monotonically
// increasing thresholds. Ratings below the first threshold or above the last
// clamp to the extreme rank.
type RankTable struct {
	ranks []models.Rank
}

// NewRankTable builds a table from the given ranks. The input is deep-copied
// and sorted by threshold, later mutation of the caller's slice has no effect.
func NewRankTable(ranks []models.Rank) *RankTable {
	cloned := copystructure.Must(copystructure.Copy(ranks)).([]models.Rank)
	sort.Slice(cloned, func(i, j int) bool { return cloned[i].Start < cloned[j].Start })
	return &RankTable{ranks: cloned}
}

// RankFromRating resolves the rank label for a rating by binary search.
func (t *RankTable) RankFromRating(rating int) string {
	lower := 0
	upper := len(t.ranks) - 1
	if rating <= t.ranks[lower].Start {
		return t.ranks[lower].Name
	}
	if rating >= t.ranks[upper].Start {
		return t.ranks[upper].Name
	}
	for upper-lower > 1 {
		mid := (lower + upper) / 2
		switch {
		case rating < t.ranks[mid].Start:
			upper = mid
		case rating > t.ranks[mid].Start:
			lower = mid
		default:
			return t.ranks[mid].Name
		}
	}
	return t.ranks[lower].Name
}
