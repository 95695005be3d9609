// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command gradebook is the interactive console for referents to record and
// analyse exam grades.
//
// # Startup Sequence
//
//  1. Initialize structured logger (stderr; stdout belongs to the console).
//  2. Load configuration from environment variables.
//  3. Wire the in-memory repository and the session service.
//  4. Run the console until exit, end of input, or SIGINT/SIGTERM.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/gradebook/internal/console"
	"github.com/taibuivan/gradebook/internal/platform/config"
	"github.com/taibuivan/gradebook/internal/platform/constants"
	"github.com/taibuivan/gradebook/internal/platform/ctxutil"
	"github.com/taibuivan/gradebook/internal/session"
	"github.com/taibuivan/gradebook/pkg/uuid"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that configuration errors are structured JSON.
	log := newLogger(os.Stderr, "json", slog.LevelInfo)
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	log = newLogger(os.Stderr, cfg.LogFormat, cfg.SlogLevel()).With(
		slog.String(constants.FieldEnvironment, cfg.Environment),
	)
	slog.SetDefault(log)
	log.Debug("configuration_loaded",
		slog.Bool("development", cfg.IsDevelopment()),
		slog.String("log_level", cfg.SlogLevel().String()),
		slog.Int("login_attempt_burst", cfg.LoginAttemptBurst),
		slog.Duration("login_attempt_interval", cfg.LoginAttemptInterval),
	)

	// ── 3. Domain Wiring ──────────────────────────────────────────────────
	repository := session.NewMemoryRepository()
	service := session.NewService(repository, cfg, log)

	// ── 4. Console ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessionID := uuid.New()
	ctx = ctxutil.WithSessionID(ctx, sessionID)
	ctx = ctxutil.WithLogger(ctx, log.With(slog.String(constants.FieldSessionID, sessionID)))

	log.Info("session_started", slog.String(constants.FieldSessionID, sessionID))

	runErr := make(chan error, 1)
	go func() {
		runErr <- console.New(os.Stdin, os.Stdout, service).Run(ctx)
	}()

	// Reading stdin cannot be interrupted, so a signal ends the program
	// without waiting for the console goroutine.
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-runErr:
		if err != nil {
			log.Error("console stopped", slog.Any(constants.FieldError, err))
			os.Exit(1)
		}
	}

	log.Info("session_ended", slog.String(constants.FieldSessionID, sessionID))
}

// newLogger returns a JSON or text logger tagged with the application name.
func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String(constants.FieldApp, constants.AppName),
		slog.String(constants.FieldVersion, constants.AppVersion),
	)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
