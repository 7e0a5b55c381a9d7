// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/logging"
	"github.com/promptdeck/promptdeck/internal/metrics"
	"github.com/promptdeck/promptdeck/internal/recommend"
	"github.com/promptdeck/promptdeck/internal/search"
	"github.com/promptdeck/promptdeck/internal/trending"
	"github.com/promptdeck/promptdeck/internal/validation"
)

// Handler serves the ranking API over one immutable catalog snapshot.
type Handler struct {
	snapshot *catalog.Snapshot
	api      config.APIConfig
	engine   config.EngineConfig
}

// NewHandler creates the API handler for a snapshot.
func NewHandler(snapshot *catalog.Snapshot, cfg *config.Config) *Handler {
	return &Handler{
		snapshot: snapshot,
		api:      cfg.API,
		engine:   cfg.Engine,
	}
}

// parseLimit reads the limit query parameter. Absent means the configured
// default; malformed or negative values are a client error; oversized
// values are clamped to the configured maximum.
func (h *Handler) parseLimit(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return h.api.DefaultPageSize, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, false
	}
	if limit == 0 || limit > h.api.MaxPageSize {
		limit = h.api.MaxPageSize
	}
	return limit, true
}

// searchRequest is the validated shape of a search call.
type searchRequest struct {
	Query    string `validate:"max=500"`
	Category string `validate:"omitempty,max=100"`
}

// Search handles GET /api/v1/search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := h.parseLimit(r)
	if !ok {
		rw.BadRequest("limit must be a non-negative integer")
		return
	}

	req := searchRequest{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	cfg := search.DefaultConfig()
	if h.engine.FuzzyThreshold > 0 {
		cfg.FuzzyThreshold = h.engine.FuzzyThreshold
	}

	start := time.Now()
	results, err := search.Search(h.snapshot.Items(), req.Query, search.Options{
		Category: req.Category,
		Limit:    limit,
		Config:   cfg,
	})
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	metrics.RecordScorerCall("search", len(results), time.Since(start))

	logging.Ctx(r.Context()).Debug().
		Str("query", req.Query).
		Int("results", len(results)).
		Msg("search served")
	rw.SuccessWithCount(results, len(results))
}

// Trending handles GET /api/v1/trending.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	h.serveTrending(w, r, false)
}

// TrendingScores handles GET /api/v1/trending/scores, returning the full
// per-item component breakdown alongside each item.
func (h *Handler) TrendingScores(w http.ResponseWriter, r *http.Request) {
	h.serveTrending(w, r, true)
}

func (h *Handler) serveTrending(w http.ResponseWriter, r *http.Request, withScores bool) {
	rw := NewResponseWriter(w, r)

	limit, ok := h.parseLimit(r)
	if !ok {
		rw.BadRequest("limit must be a non-negative integer")
		return
	}

	minScore := h.engine.TrendingMinScore
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			rw.BadRequest("min_score must be a number")
			return
		}
		minScore = parsed
	}

	opts := trending.Options{
		Limit:      limit,
		Category:   r.URL.Query().Get("category"),
		ExcludeIDs: splitParam(r.URL.Query().Get("exclude")),
		MinScore:   minScore,
	}

	start := time.Now()
	scored, err := trending.TrendingWithScores(h.snapshot.Items(), opts)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	metrics.RecordScorerCall("trending", len(scored), time.Since(start))

	if withScores {
		rw.SuccessWithCount(scored, len(scored))
		return
	}
	items := make([]catalog.Item, len(scored))
	for i, s := range scored {
		items[i] = s.Item
	}
	rw.SuccessWithCount(items, len(items))
}

// splitParam parses a comma-separated query parameter into its non-empty,
// trimmed entries. Empty input yields nil.
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// recommendationsRequest is the POST body for /api/v1/recommendations.
type recommendationsRequest struct {
	Signals     []recommend.Signal    `json:"signals"`
	Preferences recommend.Preferences `json:"preferences"`
	Limit       int                   `json:"limit" validate:"min=0"`
}

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req recommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("request body must be valid JSON: " + err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.api.DefaultPageSize
	}
	if limit > h.api.MaxPageSize {
		limit = h.api.MaxPageSize
	}

	start := time.Now()
	results, err := recommend.Recommend(req.Signals, req.Preferences, h.snapshot.Items(), recommend.Options{
		Limit: limit,
	})
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	metrics.RecordScorerCall("recommend", len(results), time.Since(start))

	logging.Ctx(r.Context()).Debug().
		Int("signals", len(req.Signals)).
		Int("results", len(results)).
		Msg("recommendations served")
	rw.SuccessWithCount(results, len(results))
}

// Prompts handles GET /api/v1/prompts with optional category filtering.
func (h *Handler) Prompts(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, ok := h.parseLimit(r)
	if !ok {
		rw.BadRequest("limit must be a non-negative integer")
		return
	}
	category := r.URL.Query().Get("category")

	items := make([]catalog.Item, 0, h.snapshot.Len())
	for _, item := range h.snapshot.Items() {
		if item.MatchesCategory(category) {
			items = append(items, item)
		}
	}
	if len(items) > limit {
		items = items[:limit]
	}
	rw.SuccessWithCount(items, len(items))
}

// PromptByID handles GET /api/v1/prompts/{id}.
func (h *Handler) PromptByID(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := chi.URLParam(r, "id")
	item, ok := h.snapshot.ByID(id)
	if !ok {
		rw.NotFound("no prompt with id " + id)
		return
	}
	rw.Success(item)
}

// Featured handles GET /api/v1/prompts/featured.
func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	items := h.snapshot.Featured()
	rw.SuccessWithCount(items, len(items))
}

// Categories handles GET /api/v1/categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	categories := h.snapshot.Categories()
	rw.SuccessWithCount(categories, len(categories))
}

// Tags handles GET /api/v1/tags.
func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	tags := h.snapshot.Tags()
	rw.SuccessWithCount(tags, len(tags))
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]interface{}{
		"status": "ok",
		"items":  h.snapshot.Len(),
	})
}
