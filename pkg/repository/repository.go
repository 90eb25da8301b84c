// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package repository defines the persistence port the engine reads ratings,
// role preferences and account links through, plus the shipped adapters.
// All operations take a context and are safe to call concurrently for
// different player ids.
package repository

import (
	"context"
	"errors"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
)

// ErrNotFound is returned when no row exists for the requested key.
var ErrNotFound = errors.New("repository: not found")

type Repository interface {
	// GetRating returns the stored rating of a player in a pool,
	// ErrNotFound when the player has never played there.
	GetRating(ctx context.Context, playerID, pool string) (int, error)

	// SetRating upserts the rating of a player in a pool.
	SetRating(ctx context.Context, playerID, pool string, rating int) error

	// GetRoles returns the accepted role preferences of a player, empty
	// when none were declared.
	GetRoles(ctx context.Context, playerID string) ([]models.Role, error)

	// SetRoles replaces the role preferences of a player.
	SetRoles(ctx context.Context, playerID string, roles []models.Role) error

	// Link stores the mapping from the player id to the external account id.
	Link(ctx context.Context, playerID, externalID string) error

	// LinkExists reports whether the player has a linked external account.
	LinkExists(ctx context.Context, playerID string) (bool, error)

	// ExternalID resolves the linked external account id, ErrNotFound when
	// the player is not linked.
	ExternalID(ctx context.Context, playerID string) (string, error)
}
