package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/securedocs/docvault/internal/api"
	"github.com/securedocs/docvault/internal/infrastructure/config"
	"github.com/securedocs/docvault/internal/infrastructure/db/postgres"
	"github.com/securedocs/docvault/internal/infrastructure/storage"
	"github.com/securedocs/docvault/pkg/logger"
)

// @title           DocVault API
// @version         1.0
// @description     Document management service: user accounts, PDF storage, and group sharing.
// @BasePath        /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("cannot load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Open(ctx, cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to postgres")
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("cannot run migrations")
	}

	store, err := storage.NewDiskStore(cfg.DocumentRoot)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot initialise document store")
	}

	e := api.NewRouter(db, store, cfg, log)

	go func() {
		log.Info().Str("addr", cfg.ServerHost).Msg("starting server")
		if err := e.Start(cfg.ServerHost); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
