// Package db embeds the SQL migrations that define the persisted table layout
// and runs them with goose.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// Dir is the directory inside Migrations that holds the goose files.
const Dir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS

func setup(logger *slog.Logger) error {
	goose.SetBaseFS(Migrations)
	if logger != nil {
		goose.SetLogger(&gooseLogger{logger: logger})
	}
	return goose.SetDialect("postgres")
}

// Up applies every pending migration.
func Up(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger) error {
	if err := setup(logger); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, sqlDB, Dir); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger) error {
	if err := setup(logger); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, sqlDB, Dir); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Status prints the applied state of every migration through the goose logger.
func Status(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger) error {
	if err := setup(logger); err != nil {
		return err
	}
	return goose.StatusContext(ctx, sqlDB, Dir)
}

// gooseLogger bridges goose's printf logger to slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
