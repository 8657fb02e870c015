package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/devtask-api/internal/api"
	apiMiddleware "github.com/phrazzld/devtask-api/internal/api/middleware"
	"github.com/phrazzld/devtask-api/internal/config"
	"github.com/phrazzld/devtask-api/internal/platform/postgres"
	"github.com/phrazzld/devtask-api/internal/service/auth"
	"github.com/phrazzld/devtask-api/internal/store"
)

// application holds the wired-up dependencies of the server. Everything is
// constructed once at startup and injected; no component reaches for
// process-wide state.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	userStore  store.UserStore
	taskStore  store.TaskStore
	jwtService auth.JWTService
	hasher     *auth.BcryptHasher
}

// newApplication builds the service and store layers on top of the given
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:     cfg,
		logger:     logger,
		userStore:  postgres.NewPostgresUserStore(db, logger),
		taskStore:  postgres.NewPostgresTaskStore(db, logger),
		jwtService: jwtService,
		hasher:     auth.NewBcryptHasher(cfg.Auth.BcryptCost),
	}, nil
}

// authMiddleware constructs the bearer-token middleware backed by the
// application's token service and user store.
func (app *application) authMiddleware() *apiMiddleware.AuthMiddleware {
	return apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)
}

// handlers constructs the API handlers from the application's services.
func (app *application) handlers() (*api.AuthHandler, *api.TaskHandler) {
	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.hasher, app.hasher)
	taskHandler := api.NewTaskHandler(app.taskStore)
	return authHandler, taskHandler
}
