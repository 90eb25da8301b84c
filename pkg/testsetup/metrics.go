package testsetup

import (
	"time"

	"github.com/AccelByte/elo-team-matchmaker/pkg/metrics"
)

type stubMetricsCollection struct{}

func (s stubMetricsCollection) PlayersInPool(pool string, region string, numPlayers int) {
}

func (s stubMetricsCollection) AddMatchesFound(pool string, region string, numMatches int) {
}

func (s stubMetricsCollection) AddExtractionElapsedTimeMs(pool, region, function string, elapsedTime time.Duration) {
}

func (s stubMetricsCollection) AddCandidateSkipped(pool string, reason string) {
}

func (s stubMetricsCollection) AddRatingDelta(pool string, delta int) {
}

func NewMetrics() metrics.MatchmakingMetrics {
	return stubMetricsCollection{}
}
