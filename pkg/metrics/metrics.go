// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type MatchmakingMetrics interface {
	PlayersInPool(pool string, region string, numPlayers int)
	AddMatchesFound(pool string, region string, numMatches int)
	AddExtractionElapsedTimeMs(pool, region, function string, elapsedTime time.Duration)
	AddCandidateSkipped(pool string, reason string)
	AddRatingDelta(pool string, delta int)
}

func NewMetrics(registry *prometheus.Registry) MatchmakingMetrics {
	return setupPrometheusMetrics(registry)
}
