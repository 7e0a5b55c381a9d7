// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

// Package main is the entry point for the Promptdeck ranking server.
//
// Promptdeck serves search, trending, and personalized recommendation
// rankings over a prompt catalog. Startup order:
//
//  1. Configuration: defaults, optional YAML file, environment (Koanf v2)
//  2. Logging: global zerolog logger per the logging config
//  3. Catalog: JSON file from CATALOG_PATH, or the embedded seed catalog
//  4. HTTP server: chi router under /api/v1, Prometheus at /metrics
//
// The server shuts down gracefully on SIGINT and SIGTERM, draining
// in-flight requests up to the configured shutdown timeout.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/promptdeck/promptdeck/internal/api"
	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/logging"
	"github.com/promptdeck/promptdeck/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	snapshot, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	metrics.SetCatalogGauges(snapshot.Len(), len(snapshot.Categories()))
	logging.Info().
		Int("items", snapshot.Len()).
		Int("categories", len(snapshot.Categories())).
		Msg("catalog loaded")

	router := api.NewRouter(api.NewHandler(snapshot, cfg), cfg)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logging.Info().Msg("server stopped")
	return nil
}

// loadCatalog picks the catalog source: a configured JSON file, or the
// embedded seed set so a bare install is immediately usable.
func loadCatalog(cfg *config.Config) (*catalog.Snapshot, error) {
	if cfg.Catalog.Path != "" {
		logging.Info().Str("path", cfg.Catalog.Path).Msg("loading catalog file")
		return catalog.LoadFile(cfg.Catalog.Path)
	}
	logging.Info().Msg("no catalog file configured, using embedded seed catalog")
	return catalog.Seed()
}
