// Package logger provides structured logging for the application.
//
// It uses the standard library log/slog package to implement structured
// JSON logging with a configurable level, plus helpers for carrying a
// request-scoped logger through a context.Context.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/devtask-api/internal/config"
)

// Setup initializes the application's logging system from the server
// configuration. It creates a JSON logger at the configured level, sets it
// as the process default, and returns it.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %q", cfg.LogLevel)
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(handler)
	slog.SetDefault(log)

	return log, nil
}
