// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

// Package config defines the Promptdeck server configuration and its
// layered loading: struct defaults, then an optional YAML file, then
// environment variables, highest priority last.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Promptdeck server.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Catalog CatalogConfig `koanf:"catalog"`
	API     APIConfig     `koanf:"api"`
	Engine  EngineConfig  `koanf:"engine"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8460
	Port int `koanf:"port"`

	// ReadTimeout bounds reading a request. Default: 10s
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds writing a response. Default: 30s
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown. Default: 15s
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CatalogConfig selects the catalog source.
type CatalogConfig struct {
	// Path is a JSON catalog file. Empty means the embedded seed catalog.
	Path string `koanf:"path"`
}

// APIConfig holds request handling limits.
type APIConfig struct {
	// DefaultPageSize is the result limit applied when a request sends
	// none. Default: 20
	DefaultPageSize int `koanf:"default_page_size"`

	// MaxPageSize caps the limit a request may ask for. Default: 100
	MaxPageSize int `koanf:"max_page_size"`

	// RateLimitRequests is the per-client request budget per window.
	// Zero disables rate limiting. Default: 100
	RateLimitRequests int `koanf:"rate_limit_requests"`

	// RateLimitWindow is the rate limit window. Default: 1m
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// CORSOrigins lists the allowed CORS origins. Default: ["*"]
	CORSOrigins []string `koanf:"cors_origins"`
}

// EngineConfig holds ranking tunables that operators may adjust without a
// rebuild. Zero values fall back to the scorer defaults.
type EngineConfig struct {
	// FuzzyThreshold is the minimum similarity for fuzzy search matches.
	// Default: 0.7
	FuzzyThreshold float64 `koanf:"fuzzy_threshold"`

	// TrendingMinScore drops trending results below the floor.
	// Default: 0
	TrendingMinScore float64 `koanf:"trending_min_score"`
}

// LoggingConfig mirrors the logging package configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that cannot work. It runs
// after all layers are applied, so it sees the effective configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be within 1-65535, got %d", c.Server.Port)
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be >= 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.API.RateLimitRequests < 0 {
		return fmt.Errorf("api.rate_limit_requests must be >= 0, got %d", c.API.RateLimitRequests)
	}
	if c.Engine.FuzzyThreshold < 0 || c.Engine.FuzzyThreshold > 1 {
		return fmt.Errorf("engine.fuzzy_threshold must be within [0, 1], got %g", c.Engine.FuzzyThreshold)
	}
	if c.Engine.TrendingMinScore < 0 || c.Engine.TrendingMinScore > 1 {
		return fmt.Errorf("engine.trending_min_score must be within [0, 1], got %g", c.Engine.TrendingMinScore)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
