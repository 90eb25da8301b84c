// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package match

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/AccelByte/elo-team-matchmaker/pkg/constants"
	"github.com/AccelByte/elo-team-matchmaker/pkg/envelope"
	"github.com/AccelByte/elo-team-matchmaker/pkg/metrics"
	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/playerdata"
	"github.com/AccelByte/elo-team-matchmaker/pkg/rating"
	"github.com/AccelByte/elo-team-matchmaker/pkg/repository"
)

// RatingChange describes one player's rating update after a report, shaped
// for the surrounding layer to push to the affected user.
type RatingChange struct {
	PlayerID  playerdata.ID
	Pool      string
	OldRating int
	NewRating int
	Delta     int
	OldRank   string
	NewRank   string
	Outcome   rating.Outcome
}

// Notifier receives rating change notifications. Implementations must not
// block for long; they are called synchronously on the report path.
type Notifier interface {
	RatingChanged(ctx context.Context, change RatingChange)
}

// Registry owns every in-flight match. Start is the sole transition from
// searching to playing; Report applies the rating model and retires the
// match.
type Registry struct {
	model    *rating.Model
	ranks    *rating.RankTable
	repo     repository.Repository
	notifier Notifier
	metrics  metrics.MatchmakingMetrics

	mu       sync.Mutex
	ongoing  map[models.MatchID]*Match
	byPlayer map[playerdata.ID]*Match
}

func NewRegistry(model *rating.Model, ranks *rating.RankTable, repo repository.Repository, notifier Notifier, m metrics.MatchmakingMetrics) *Registry {
	return &Registry{
		model:    model,
		ranks:    ranks,
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		ongoing:  make(map[models.MatchID]*Match),
		byPlayer: make(map[playerdata.ID]*Match),
	}
}

// Start moves a match into play: every participant leaves their queue and is
// stamped with the match reference. Fails without mutating anything when any
// participant already has an active match.
func (r *Registry) Start(scope *envelope.Scope, m *Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := m.Players()
	for _, p := range players {
		if p.Match() != "" {
			return &models.MemberError{PlayerID: string(p.ID), Err: models.ValidationErrorPlayerInMatch}
		}
	}

	stamped := make([]*playerdata.Player, 0, len(players))
	for _, p := range players {
		if err := p.SetMatch(m.ID); err != nil {
			for _, s := range stamped {
				_ = s.SetMatch("")
			}
			return &models.MemberError{PlayerID: string(p.ID), Err: err}
		}
		stamped = append(stamped, p)
	}

	for _, p := range players {
		_ = p.SetQueue(models.QueueRef{})
		if team := p.Team(); team != nil {
			_ = team.SetQueue(models.QueueRef{}, 0)
			_ = team.SetMatch(m.ID)
		}
	}
	_ = m.TeamA.SetMatch(m.ID)
	_ = m.TeamB.SetMatch(m.ID)

	r.ongoing[m.ID] = m
	for _, p := range players {
		r.byPlayer[p.ID] = m
	}

	scope.Log.WithField("match", string(m.ID)).Infof("match started in %s with %d players", m.Queue, len(players))
	return nil
}

// Find returns the ongoing match of a player, nil when they are not playing.
func (r *Registry) Find(player *playerdata.Player) *Match {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byPlayer[player.ID]
}

// Ongoing returns a snapshot of all in-flight matches.
func (r *Registry) Ongoing() []*Match {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Match, 0, len(r.ongoing))
	for _, m := range r.ongoing {
		out = append(out, m)
	}
	return out
}

// Report resolves the winner from the reporting player's frame of reference,
// updates every participant's rating with the average-opponent substitution
// and retires the match. A second report finds no match and fails. A failed
// rating write-back is surfaced to the caller after the in-memory update, so
// the disagreement is never silent.
func (r *Registry) Report(scope *envelope.Scope, reporter *playerdata.Player, outcome rating.Outcome) error {
	r.mu.Lock()
	m, ok := r.byPlayer[reporter.ID]
	if !ok {
		r.mu.Unlock()
		return models.ValidationErrorNotInMatch
	}

	delete(r.ongoing, m.ID)
	for _, p := range m.Players() {
		delete(r.byPlayer, p.ID)
	}
	r.mu.Unlock()

	winner := m.WinnerFromReport(reporter, outcome)
	err := r.applyRatings(scope, m, winner)

	for _, p := range m.Players() {
		_ = p.SetMatch("")
		if team := p.Team(); team != nil {
			_ = team.SetMatch("")
		}
	}
	_ = m.TeamA.SetMatch("")
	_ = m.TeamB.SetMatch("")

	scope.Log.WithField("function", constants.ReportMatchFunction).
		WithField("match", string(m.ID)).
		Infof("match reported, winner side %d", winner)
	return err
}

// applyRatings runs the Elo update for both teams. Expectations are computed
// against the opposing team's pre-update average; each member's own rating
// drives their individual expectation so stronger members risk and gain
// more.
func (r *Registry) applyRatings(scope *envelope.Scope, m *Match, winner Side) error {
	pool := m.Queue.Pool
	avgA := m.TeamA.AverageRating(pool)
	avgB := m.TeamB.AverageRating(pool)

	group, ctx := errgroup.WithContext(scope.Ctx)
	r.updateTeam(scope, ctx, group, m.TeamA, pool, outcomeFor(SideA, winner), avgB)
	r.updateTeam(scope, ctx, group, m.TeamB, pool, outcomeFor(SideB, winner), avgA)
	return group.Wait()
}

func (r *Registry) updateTeam(scope *envelope.Scope, ctx context.Context, group *errgroup.Group, team *playerdata.Team, pool string, outcome rating.Outcome, enemyAvg float64) {
	for _, p := range team.Players() {
		old := p.Rating(pool)
		expected := rating.ExpectedScore(float64(old), enemyAvg)
		delta := r.model.Delta(old, outcome, expected)
		updated := old + delta
		p.SetRating(pool, updated)

		change := RatingChange{
			PlayerID:  p.ID,
			Pool:      pool,
			OldRating: old,
			NewRating: updated,
			Delta:     delta,
			OldRank:   r.ranks.RankFromRating(old),
			NewRank:   r.ranks.RankFromRating(updated),
			Outcome:   outcome,
		}
		if r.notifier != nil {
			r.notifier.RatingChanged(scope.Ctx, change)
		}
		if r.metrics != nil {
			r.metrics.AddRatingDelta(pool, delta)
		}

		player := p
		group.Go(func() error {
			if err := r.repo.SetRating(ctx, string(player.ID), pool, updated); err != nil {
				scope.Log.WithError(err).Errorf(
					"rating write-back failed for player %s in pool %s: memory=%d, store stale", player.ID, pool, updated)
				return err
			}
			return nil
		})
	}
}
