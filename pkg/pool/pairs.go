// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pool

import (
	"github.com/elliotchance/pie/v2"
	"gopkg.in/typ.v4/sync2"

	"github.com/AccelByte/elo-team-matchmaker/pkg/mathutil"
	"github.com/AccelByte/elo-team-matchmaker/pkg/playerdata"
)

// adjacentPair is a pair of rating-adjacent players in the sorted waiting
// set. Index is the position of the lower-rated member in the sorted order.
type adjacentPair struct {
	index int
	lo    *playerdata.Player // lower-rated member
	hi    *playerdata.Player // higher-rated member
	gap   int                // tightness, absolute rating gap between the two
	avg   float64
}

// pairScratch recycles the pair slices built on every scan.
var pairScratch = sync2.Pool[[]adjacentPair]{
	New: func() []adjacentPair {
		return make([]adjacentPair, 0, 32)
	},
}

// sortByRating returns the players ordered by ascending rating in the given
// pool. The input is left untouched.
func sortByRating(pool string, players []*playerdata.Player) []*playerdata.Player {
	return pie.SortUsing(players, func(a, b *playerdata.Player) bool {
		return a.Rating(pool) < b.Rating(pool)
	})
}

// buildPairs forms every consecutive pair of the sorted waiting set. The
// returned slice comes from pairScratch and must be handed back via
// releasePairs.
func buildPairs(pool string, sorted []*playerdata.Player) []adjacentPair {
	pairs := pairScratch.Get()[:0]
	for i := 0; i+1 < len(sorted); i++ {
		lo, hi := sorted[i], sorted[i+1]
		loRating, hiRating := lo.Rating(pool), hi.Rating(pool)
		pairs = append(pairs, adjacentPair{
			index: i,
			lo:    lo,
			hi:    hi,
			gap:   mathutil.Abs(hiRating - loRating),
			avg:   float64(loRating+hiRating) / 2,
		})
	}
	return pairs
}

func releasePairs(pairs []adjacentPair) {
	pairScratch.Put(pairs)
}

// overlaps reports whether two adjacency pairs share a player.
func overlaps(a, b adjacentPair) bool {
	return mathutil.Abs(a.index-b.index) <= 1
}

// anyConsumed reports whether any of the players was already used by an
// accepted candidate in the current extraction pass.
func anyConsumed(consumed map[*playerdata.Player]bool, players ...*playerdata.Player) bool {
	for _, p := range players {
		if consumed[p] {
			return true
		}
	}
	return false
}
