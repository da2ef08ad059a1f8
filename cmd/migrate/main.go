package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"bookshelf/db"
	"bookshelf/internal/platform/config"
	"bookshelf/internal/platform/postgres"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

var errUsage = errors.New("usage")

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.NewLogger(os.Stderr)

	if err := run(context.Background(), cfg, logger, *command, *name); err != nil {
		logger.Error("migrate failed", slog.String("command", *command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, command, name string) error {
	// create only writes a file next to the existing migrations.
	if command == "create" {
		if name == "" {
			return fmt.Errorf("%w: -name is required for 'create'", errUsage)
		}
		if err := goose.Create(nil, cfg.MigrationsDir, name, "sql"); err != nil {
			return fmt.Errorf("create migration: %w", err)
		}
		logger.Info("migration created", slog.String("name", name), slog.String("dir", cfg.MigrationsDir))
		return nil
	}

	var apply func(context.Context, *sql.DB, *slog.Logger) error
	switch command {
	case "up":
		apply = db.Up
	case "down":
		apply = db.Down
	case "status":
		apply = db.Status
	default:
		return fmt.Errorf("%w: unknown command %q, use up, down, status or create", errUsage, command)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := apply(ctx, sqlDB, logger); err != nil {
		return err
	}
	logger.Info("migrations done", slog.String("command", command))
	return nil
}
