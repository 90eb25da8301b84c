// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package queue wires the waiting pools to the scheduler: one Queue per
// (mode, region) scans its pool on a timer, and the Manager owns the full
// cartesian product, fans all found matches into one stream and exposes the
// join/leave entry points used by the surrounding command layer.
package queue

import (
	"context"
	"time"

	"github.com/AccelByte/elo-team-matchmaker/pkg/constants"
	"github.com/AccelByte/elo-team-matchmaker/pkg/envelope"
	"github.com/AccelByte/elo-team-matchmaker/pkg/match"
	"github.com/AccelByte/elo-team-matchmaker/pkg/metrics"
	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/pool"
)

// Found is one emitted match tagged with its originating queue.
type Found struct {
	Match *match.Match
	Queue *Queue
}

// Queue is the externally addressable handle for one (mode, region) pool.
type Queue struct {
	Blueprint models.QueueBlueprint
	Region    string
	Pool      pool.Pool

	interval time.Duration
	metrics  metrics.MatchmakingMetrics
	found    chan<- Found
}

func newQueue(bp models.QueueBlueprint, region string, p pool.Pool, interval time.Duration, m metrics.MatchmakingMetrics, found chan<- Found) *Queue {
	return &Queue{
		Blueprint: bp,
		Region:    region,
		Pool:      p,
		interval:  interval,
		metrics:   m,
		found:     found,
	}
}

// Ref returns the non-owning handle players and teams are stamped with.
func (q *Queue) Ref() models.QueueRef {
	return models.QueueRef{Pool: q.Blueprint.Name, Region: q.Region}
}

// DisplayName is the user-facing name of the queue.
func (q *Queue) DisplayName() string {
	if q.Blueprint.DisplayName != "" {
		return q.Blueprint.DisplayName
	}
	return q.Blueprint.Name
}

// run scans the pool every interval until the context is canceled. One
// goroutine per queue; pool mutation is serialized by the pool itself.
func (q *Queue) run(ctx context.Context) {
	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			q.scan(ctx)
		}
	}
}

func (q *Queue) scan(ctx context.Context) {
	scope := envelope.NewRootScope(ctx, "queue.scan", "")
	defer scope.Finish()
	scope.SetAttributes("queue", q.Ref().String())

	started := time.Now()
	candidates := q.Pool.ExtractMatches(scope)
	elapsed := time.Since(started)
	if elapsed > constants.PoolLockTimeLimit {
		scope.Log.Warnf("queue %s: extraction held the pool for %s", q.Ref(), elapsed)
	}
	if q.metrics != nil {
		q.metrics.AddExtractionElapsedTimeMs(q.Blueprint.Name, q.Region, constants.ExtractMatchesFunction, elapsed)
		q.metrics.PlayersInPool(q.Blueprint.Name, q.Region, q.Pool.Size())
	}
	if len(candidates) == 0 {
		return
	}

	if q.metrics != nil {
		q.metrics.AddMatchesFound(q.Blueprint.Name, q.Region, len(candidates))
	}
	for _, cand := range candidates {
		m, err := match.New(q.Ref(), cand.TeamA, cand.TeamB)
		if err != nil {
			scope.Log.WithError(err).Errorf("queue %s: failed to assemble match teams", q.Ref())
			continue
		}
		select {
		case q.found <- Found{Match: m, Queue: q}:
		case <-ctx.Done():
			return
		}
	}
}
