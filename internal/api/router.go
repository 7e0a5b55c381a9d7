// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/promptdeck/promptdeck/internal/config"
)

// NewRouter builds the chi router with the full middleware stack and all
// API routes mounted under /api/v1.
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(AccessLog)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.API.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Metrics)
		if cfg.API.RateLimitRequests > 0 {
			r.Use(httprate.LimitByIP(cfg.API.RateLimitRequests, cfg.API.RateLimitWindow))
		}

		r.Get("/health", h.Health)
		r.Get("/search", h.Search)
		r.Get("/trending", h.Trending)
		r.Get("/trending/scores", h.TrendingScores)
		r.Post("/recommendations", h.Recommendations)

		r.Route("/prompts", func(r chi.Router) {
			r.Get("/", h.Prompts)
			r.Get("/featured", h.Featured)
			r.Get("/{id}", h.PromptByID)
		})

		r.Get("/categories", h.Categories)
		r.Get("/tags", h.Tags)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
