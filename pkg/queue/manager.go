// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package queue

import (
	"context"

	"github.com/AccelByte/elo-team-matchmaker/pkg/config"
	"github.com/AccelByte/elo-team-matchmaker/pkg/envelope"
	"github.com/AccelByte/elo-team-matchmaker/pkg/match"
	"github.com/AccelByte/elo-team-matchmaker/pkg/metrics"
	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
	"github.com/AccelByte/elo-team-matchmaker/pkg/playerdata"
	"github.com/AccelByte/elo-team-matchmaker/pkg/pool"
	"github.com/AccelByte/elo-team-matchmaker/pkg/rating"
)

// MatchStarter transitions an emitted match into play. Implemented by the
// match registry.
type MatchStarter interface {
	Start(scope *envelope.Scope, m *match.Match) error
}

// Manager creates and owns every Queue for the configured blueprints and
// regions, fans their found matches into one stream and exposes the
// join/leave entry points. It implements playerdata.QueueAborter.
type Manager struct {
	cfg     *config.Config
	queues  map[string]map[string]*Queue // blueprint name -> region -> queue
	found   chan Found
	started chan Found
}

func NewManager(cfg *config.Config, blueprints []models.QueueBlueprint, m metrics.MatchmakingMetrics) *Manager {
	validator := pool.NewValidator(rating.NewModel(cfg), cfg.FairnessFloor)

	mgr := &Manager{
		cfg:     cfg,
		queues:  make(map[string]map[string]*Queue),
		found:   make(chan Found, 16),
		started: make(chan Found, 16),
	}
	for _, bp := range blueprints {
		regionMap := make(map[string]*Queue, len(cfg.Regions))
		for _, region := range cfg.Regions {
			regionMap[region] = newQueue(bp, region, pool.New(bp, validator, m), cfg.ScanInterval, m, mgr.found)
		}
		mgr.queues[bp.Name] = regionMap
	}
	return mgr
}

// Run starts the scan loop of every queue and consumes the merged stream:
// each found match is handed to the starter and, once started, re-emitted on
// Matches. A nil starter forwards matches unstarted. Run blocks until the
// context is canceled.
func (mgr *Manager) Run(ctx context.Context, starter MatchStarter) {
	for _, regionMap := range mgr.queues {
		for _, q := range regionMap {
			go q.run(ctx)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case f := <-mgr.found:
			if starter != nil {
				scope := envelope.NewRootScope(ctx, "manager.startMatch", "")
				err := starter.Start(scope, f.Match)
				if err != nil {
					scope.Log.WithError(err).Errorf("queue %s: match could not be started", f.Queue.Ref())
					scope.Finish()
					continue
				}
				scope.Finish()
			}
			select {
			case mgr.started <- f:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Matches is the merged stream of started matches, tagged with the
// originating queue.
func (mgr *Manager) Matches() <-chan Found {
	return mgr.started
}

// Lookup resolves the queue for a mode and region.
func (mgr *Manager) Lookup(poolName, region string) (*Queue, error) {
	regionMap, ok := mgr.queues[poolName]
	if !ok {
		return nil, models.ValidationErrorUnknownQueue
	}
	q, ok := regionMap[region]
	if !ok {
		return nil, models.ValidationErrorUnknownQueue
	}
	return q, nil
}

// JoinSolo queues a single player by wrapping them in a system singleton
// team. Players that belong to a team must queue with it instead.
func (mgr *Manager) JoinSolo(scope *envelope.Scope, poolName, region string, player *playerdata.Player) error {
	if player.Team() != nil {
		return models.ValidationErrorSoloWithTeam
	}
	solo := playerdata.NewTeam()
	if err := solo.Join(player, playerdata.JoinSystem, nil); err != nil {
		return err
	}
	return mgr.Join(scope, poolName, region, solo)
}

// Join validates and queues a team: the team must fit the pool's premade
// limit, must not be queued or playing, and no member may be queued or
// playing. Back-references are stamped before the pool insert so a racing
// duplicate join fails on the guarded setters instead of double-adding.
func (mgr *Manager) Join(scope *envelope.Scope, poolName, region string, team *playerdata.Team) error {
	q, err := mgr.Lookup(poolName, region)
	if err != nil {
		return err
	}

	if team.Size() > q.Pool.MaxPremadeSize() {
		return models.ValidationErrorTeamTooLarge
	}
	if !team.Queue().IsZero() {
		return models.ValidationErrorTeamAlreadyQueued
	}
	if team.Match() != "" {
		return models.ValidationErrorTeamInMatch
	}
	for _, p := range team.Players() {
		if !p.Queue().IsZero() {
			return &models.MemberError{PlayerID: string(p.ID), Err: models.ValidationErrorPlayerQueued}
		}
		if p.Match() != "" {
			return &models.MemberError{PlayerID: string(p.ID), Err: models.ValidationErrorPlayerInMatch}
		}
	}

	ref := q.Ref()
	if err := team.SetQueue(ref, q.Pool.MaxPremadeSize()); err != nil {
		return err
	}
	stamped := make([]*playerdata.Player, 0, team.Size())
	for _, p := range team.Players() {
		if err := p.SetQueue(ref); err != nil {
			for _, s := range stamped {
				_ = s.SetQueue(models.QueueRef{})
			}
			_ = team.SetQueue(models.QueueRef{}, 0)
			return &models.MemberError{PlayerID: string(p.ID), Err: err}
		}
		stamped = append(stamped, p)
	}

	q.Pool.Add(team)
	scope.Log.Infof("team %s joined queue %s with %d players", team.ID, ref, team.Size())
	return nil
}

// Abort unwinds a queued team: pool removal first, then the back-references.
func (mgr *Manager) Abort(team *playerdata.Team) error {
	ref := team.Queue()
	if ref.IsZero() {
		return models.ValidationErrorNotQueued
	}
	q, err := mgr.Lookup(ref.Pool, ref.Region)
	if err != nil {
		return err
	}
	q.Pool.Remove(team.Players())
	_ = team.SetQueue(models.QueueRef{}, 0)
	for _, p := range team.Players() {
		_ = p.SetQueue(models.QueueRef{})
	}
	return nil
}

// AbortSolo unwinds a solo queue membership.
func (mgr *Manager) AbortSolo(player *playerdata.Player) error {
	ref := player.Queue()
	if ref.IsZero() {
		return models.ValidationErrorNotQueued
	}
	q, err := mgr.Lookup(ref.Pool, ref.Region)
	if err != nil {
		return err
	}
	q.Pool.Remove([]*playerdata.Player{player})
	return player.SetQueue(models.QueueRef{})
}
