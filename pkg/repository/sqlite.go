// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package repository

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/elo-team-matchmaker/pkg/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SQLite is the durable Repository adapter. Schema is managed through
// embedded goose migrations.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and migrates it up.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	logrus.WithField("path", path).Info("rating database ready")
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) GetRating(ctx context.Context, playerID, pool string) (int, error) {
	var rating int
	err := s.db.QueryRowContext(ctx,
		`SELECT rating FROM ratings WHERE player_id = ? AND pool = ?`, playerID, pool).Scan(&rating)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return rating, nil
}

func (s *SQLite) SetRating(ctx context.Context, playerID, pool string, rating int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ratings (player_id, pool, rating) VALUES (?, ?, ?)
		 ON CONFLICT (player_id, pool) DO UPDATE SET rating = excluded.rating`,
		playerID, pool, rating)
	return err
}

func (s *SQLite) GetRoles(ctx context.Context, playerID string) ([]models.Role, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT role FROM roles WHERE player_id = ?`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, models.Role(role))
	}
	return roles, rows.Err()
}

func (s *SQLite) SetRoles(ctx context.Context, playerID string, roles []models.Role) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM roles WHERE player_id = ?`, playerID); err != nil {
		return err
	}
	for _, role := range roles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO roles (player_id, role) VALUES (?, ?)`, playerID, string(role)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLite) Link(ctx context.Context, playerID, externalID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO links (player_id, external_id) VALUES (?, ?)
		 ON CONFLICT (player_id) DO UPDATE SET external_id = excluded.external_id`,
		playerID, externalID)
	return err
}

func (s *SQLite) LinkExists(ctx context.Context, playerID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM links WHERE player_id = ?`, playerID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLite) ExternalID(ctx context.Context, playerID string) (string, error) {
	var externalID string
	err := s.db.QueryRowContext(ctx,
		`SELECT external_id FROM links WHERE player_id = ?`, playerID).Scan(&externalID)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return externalID, nil
}
