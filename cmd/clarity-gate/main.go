package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clarity-gate/internal/config"
	httphandler "clarity-gate/internal/http"
	"clarity-gate/internal/logger"
	"clarity-gate/internal/normalizer"
	"clarity-gate/internal/service"
	"clarity-gate/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	strict, err := normalizer.NewStrictValidator()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize strict validator")
	}
	cleaner := normalizer.New(normalizer.DefaultRules().WithBlankLabel(cfg.Cleaning.BlankLabel), strict)

	// Report storage is optional; conversions work without it.
	var (
		store service.ReportStore
		ready httphandler.Pinger
	)
	if cfg.Report.StoreReports {
		r2Client, err := storage.NewR2Client(cfg.Storage)
		if err != nil && !errors.Is(err, storage.ErrNotConfigured) {
			appLogger.Fatal().Err(err).Msg("failed to initialize R2 client")
		}
		if err != nil {
			appLogger.Warn().Msg("R2 storage not configured, reports will not be stored")
		} else {
			store = r2Client
			ready = r2Client
		}
	}

	visitorService := service.NewVisitorService(cleaner, store, cfg.Report.Location, cfg.Report.WorkingDays, appLogger)

	handler := httphandler.NewHandler(visitorService, cfg, appLogger)
	router := httphandler.NewRouter(handler, cfg.Environment, cfg.HTTP.AllowOrigins, appLogger, ready)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().
		Str("addr", addr).
		Str("variant", string(cfg.Cleaning.Variant)).
		Bool("strict", cfg.Cleaning.StrictMode).
		Msg("starting visitor list service")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error().Err(err).Msg("failed to start server")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server exited")
}
