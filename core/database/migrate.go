package database

import (
	"context"
	"embed"
	"fmt"

	"mentorhub/core/logger"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations embedded in the binary
func (d *Database) Migrate(ctx context.Context) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, d.db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, d.db)
	if err != nil {
		return fmt.Errorf("get migration version: %w", err)
	}

	logger.Info("Migrations applied", "version", version)
	return nil
}
