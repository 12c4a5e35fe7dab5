package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"catalog-page/internal/logger"

	"go.uber.org/zap"
)

const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

// Migrate applies (up) every pending *.sql file of fsys, or rolls back (down)
// the most recently applied one. Files use the "-- +migrate Up" and
// "-- +migrate Down" section markers.
func Migrate(ctx context.Context, db *sql.DB, fsys fs.FS, mode string) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	sort.Strings(files)

	switch mode {
	case MigrateUp:
		return migrateUp(ctx, db, fsys, files)
	case MigrateDown:
		return migrateDown(ctx, db, fsys, files)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}
}

func migrateUp(ctx context.Context, db *sql.DB, fsys fs.FS, files []string) error {
	log := logger.FromCtx(ctx)

	for _, file := range files {
		version := path.Base(file)

		var exists bool
		err := db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			log.Debug("skipping applied migration", zap.String("version", version))
			continue
		}

		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		log.Info("applying migration", zap.String("version", version))
		if _, err := db.ExecContext(ctx, extractMigrationPart(string(content), "Up")); err != nil {
			return fmt.Errorf("migration failed (%s): %w", version, err)
		}

		_, err = db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version)
		if err != nil {
			return fmt.Errorf("failed to record migration version: %w", err)
		}
	}
	log.Info("migrations up to date", zap.Int("files", len(files)))
	return nil
}

func migrateDown(ctx context.Context, db *sql.DB, fsys fs.FS, files []string) error {
	log := logger.FromCtx(ctx)

	var lastVersion string
	err := db.QueryRowContext(ctx, `SELECT version FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1`).Scan(&lastVersion)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn("no migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last applied migration: %w", err)
	}

	file := ""
	for _, f := range files {
		if path.Base(f) == lastVersion {
			file = f
			break
		}
	}
	if file == "" {
		return fmt.Errorf("migration file not found for version: %s", lastVersion)
	}

	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	log.Info("rolling back migration", zap.String("version", lastVersion))
	if _, err := db.ExecContext(ctx, extractMigrationPart(string(content), "Down")); err != nil {
		return fmt.Errorf("rollback failed (%s): %w", lastVersion, err)
	}

	_, err = db.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = $1`, lastVersion)
	if err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}
	return nil
}

func extractMigrationPart(content string, section string) string {
	var part strings.Builder
	var inPart bool

	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "-- +migrate "+section) {
			inPart = true
			continue
		}
		if inPart && strings.HasPrefix(line, "-- +migrate") {
			break
		}
		if inPart {
			part.WriteString(line + "\n")
		}
	}
	return part.String()
}
