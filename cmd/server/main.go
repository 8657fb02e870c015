// Package main implements the entry point for the devtask API server,
// a task-tracking backend with password/JWT authentication.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/devtask-api/internal/config"
	"github.com/phrazzld/devtask-api/internal/platform/logger"
	"github.com/phrazzld/devtask-api/internal/platform/migrations"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, wires up the application, and serves requests
// until shutdown. The schema is migrated before the listener starts, so no
// request ever observes a partially created schema.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"token_lifetime_minutes", cfg.Auth.AccessTokenExpireMinutes)

	db, err := openDatabase(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", "error", err)
		}
	}()

	if err := migrations.Up(context.Background(), db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	appLogger.Info("database schema up to date")

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return err
	}

	return app.serve(context.Background(), app.routes())
}
