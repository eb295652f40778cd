package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ahmedshaban022/revelop-calendar/internal/api"
	"github.com/ahmedshaban022/revelop-calendar/internal/core/service"
	"github.com/ahmedshaban022/revelop-calendar/internal/infrastructure/backend"
	"github.com/ahmedshaban022/revelop-calendar/internal/infrastructure/storage"
	"github.com/ahmedshaban022/revelop-calendar/internal/pkg/config"
	"github.com/ahmedshaban022/revelop-calendar/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, err := storage.NewSessionStore(cfg.StateDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open session storage")
	}

	sessions := service.NewSessionManager(store, log)
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, sessions, log)
	auth := service.NewAuthService(client, sessions, log)
	bookings := service.NewBookingService(client, log)

	// Restore any persisted session before serving; token validity is
	// discovered lazily on the first authenticated request.
	sessions.Restore()

	e := api.NewRouter(auth, sessions, bookings, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("console agent started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
