package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GustavoCaso/carlot/internal/logger"
)

func createMigrationsTable(ctx context.Context, db *sql.DB) error {
	statement, err := db.PrepareContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_migrations (
					version INTEGER PRIMARY KEY,
					applied_at INTEGER NOT NULL
			)
	`)
	if err != nil {
		return err
	}
	defer statement.Close()
	_, err = statement.ExecContext(ctx)
	return err
}

func (s *sqliteStorage) ApplyMigrations(ctx context.Context, logger *logger.Logger) error {
	if err := createMigrationsTable(ctx, s.db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion := 0
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	migrations := []struct {
		name string
		up   func(*sql.Tx) error
	}{
		{
			name: "Create listings table",
			up: func(tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, `
					CREATE TABLE IF NOT EXISTS listings
					(
					id INTEGER PRIMARY KEY,
					make TEXT NOT NULL,
					model TEXT NOT NULL DEFAULT '',
					title TEXT NOT NULL DEFAULT '',
					price REAL
					) STRICT;`)
				return err
			},
		},
		{
			name: "Index listings by make",
			up: func(tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS listings_make ON listings(make);`)
				return err
			},
		},
	}

	for i, migration := range migrations {
		migrationVersion := i + 1
		if migrationVersion <= currentVersion {
			continue
		}

		logger.Info("Applying migration",
			"version", migrationVersion,
			"name", migration.name)

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w",
				migrationVersion, err)
		}

		if err = migration.up(tx); err != nil {
			rErr := tx.Rollback()
			if rErr != nil {
				return rErr
			}
			return fmt.Errorf("migration %d failed: %w", migrationVersion, err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
			migrationVersion, time.Now().Unix(),
		)
		if err != nil {
			rErr := tx.Rollback()
			if rErr != nil {
				return rErr
			}
			return fmt.Errorf("failed to record migration %d: %w",
				migrationVersion, err)
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w",
				migrationVersion, err)
		}

		logger.Info("Migration applied successfully", "version", migrationVersion)
	}

	return nil
}
