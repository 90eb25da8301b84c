// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	playersInPool     prometheus.GaugeVec
	matchesFound      prometheus.CounterVec
	extractionElapsed prometheus.HistogramVec
	candidatesSkipped prometheus.CounterVec
	ratingDelta       prometheus.HistogramVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)
	poolLabelDimensions := []string{"pool", "region"}

	playersInPool := factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mm_players_in_pool",
			Help: "A gauge of the number of players waiting in each pool",
		}, poolLabelDimensions)

	matchesFound := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mm_matches_found",
			Help: "A counter of matches emitted per pool",
		}, poolLabelDimensions)

	//nolint:promlinter
	extractionElapsed := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mm_extraction_elapsed_time_ms",
			Help:    "A histogram of match extraction elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, append(poolLabelDimensions, "function"))

	candidatesSkipped := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mm_candidates_skipped",
			Help: "A counter of candidate matches rejected by validation, by reason",
		}, []string{"pool", "reason"})

	ratingDelta := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mm_rating_delta",
			Help:    "A histogram of absolute per-player rating changes on report",
			Buckets: prometheus.LinearBuckets(1, 5, 12),
		}, []string{"pool"})

	return prometheusMetrics{
		playersInPool:     *playersInPool,
		matchesFound:      *matchesFound,
		extractionElapsed: *extractionElapsed,
		candidatesSkipped: *candidatesSkipped,
		ratingDelta:       *ratingDelta,
	}
}

func (metrics prometheusMetrics) PlayersInPool(pool string, region string, numPlayers int) {
	metrics.playersInPool.With(prometheus.Labels{"pool": pool, "region": region}).Set(float64(numPlayers))
}

func (metrics prometheusMetrics) AddMatchesFound(pool string, region string, numMatches int) {
	metrics.matchesFound.With(prometheus.Labels{"pool": pool, "region": region}).Add(float64(numMatches))
}

func (metrics prometheusMetrics) AddExtractionElapsedTimeMs(pool, region, function string, elapsedTime time.Duration) {
	metrics.extractionElapsed.With(prometheus.Labels{"pool": pool, "region": region, "function": function}).Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddCandidateSkipped(pool string, reason string) {
	metrics.candidatesSkipped.With(prometheus.Labels{"pool": pool, "reason": reason}).Inc()
}

func (metrics prometheusMetrics) AddRatingDelta(pool string, delta int) {
	if delta < 0 {
		delta = -delta
	}
	metrics.ratingDelta.With(prometheus.Labels{"pool": pool}).Observe(float64(delta))
}
