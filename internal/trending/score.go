// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package trending

import (
	"math"
	"time"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/ranking"
)

const (
	// maxRating is the top of the rating scale.
	maxRating = 5.0

	// neutralRating is the prior a low-confidence average is pulled
	// toward, expressed on the normalized [0,1] scale (2.5 stars).
	neutralRating = 0.5

	// freshnessHalfLife is the age at which the freshness component
	// halves.
	freshnessHalfLife = 30 * 24 * time.Hour

	// staleFreshness is the floor assigned when the last-updated
	// timestamp is missing or unparseable.
	staleFreshness = 0.1
)

// Weights is the linear combination applied to the five score components.
// The vector is normalized to sum to 1 before use, keeping totals in
// [0, 1], and is echoed back in every Breakdown so callers can see exactly
// how a total was produced.
type Weights struct {
	Views     float64 `json:"views" koanf:"views"`
	Copies    float64 `json:"copies" koanf:"copies"`
	Saves     float64 `json:"saves" koanf:"saves"`
	Rating    float64 `json:"rating" koanf:"rating"`
	Freshness float64 `json:"freshness" koanf:"freshness"`
}

// DefaultWeights returns the production weight vector. The exact split is
// a product tunable, not ground truth.
func DefaultWeights() Weights {
	return Weights{
		Views:     0.25,
		Copies:    0.20,
		Saves:     0.20,
		Rating:    0.20,
		Freshness: 0.15,
	}
}

// Normalize returns a copy with the weights scaled to sum to 1. An
// all-zero vector falls back to equal weights.
func (w Weights) Normalize() Weights {
	sum := w.Views + w.Copies + w.Saves + w.Rating + w.Freshness
	if sum <= 0 {
		const equal = 1.0 / 5.0
		return Weights{Views: equal, Copies: equal, Saves: equal, Rating: equal, Freshness: equal}
	}
	return Weights{
		Views:     w.Views / sum,
		Copies:    w.Copies / sum,
		Saves:     w.Saves / sum,
		Rating:    w.Rating / sum,
		Freshness: w.Freshness / sum,
	}
}

// Context holds the corpus-wide maxima used as normalization denominators,
// plus the reference time for freshness decay. It is computed once per
// call over the full candidate set.
type Context struct {
	MaxViews       float64
	MaxCopies      float64
	MaxSaves       float64
	MaxRatingCount float64
	Now            time.Time
}

// NewContext scans the candidate set and records each counter's maximum.
// A zero now defaults to the wall clock.
func NewContext(items []catalog.Item, now time.Time) Context {
	if now.IsZero() {
		now = time.Now()
	}
	ctx := Context{Now: now}
	for i := range items {
		st := items[i].Stats
		ctx.MaxViews = math.Max(ctx.MaxViews, float64(st.Views))
		ctx.MaxCopies = math.Max(ctx.MaxCopies, float64(st.Copies))
		ctx.MaxSaves = math.Max(ctx.MaxSaves, float64(st.Saves))
		ctx.MaxRatingCount = math.Max(ctx.MaxRatingCount, float64(st.RatingCount))
	}
	return ctx
}

// Breakdown is the per-item scoring result: the five components, each in
// [0, 1], the weighted total, and the weight vector that produced it.
type Breakdown struct {
	ID        string  `json:"id"`
	View      float64 `json:"view"`
	Copy      float64 `json:"copy"`
	Save      float64 `json:"save"`
	Rating    float64 `json:"rating"`
	Freshness float64 `json:"freshness"`
	Total     float64 `json:"total"`
	Weights   Weights `json:"weights"`
}

// Score computes an item's trending breakdown using the default weights.
func Score(item catalog.Item, ctx Context) Breakdown {
	return ScoreWithWeights(item, ctx, DefaultWeights())
}

// ScoreWithWeights computes an item's trending breakdown against the
// given context. The computation never fails: degraded input (zero
// maxima, bad timestamps) resolves to finite components, not errors.
func ScoreWithWeights(item catalog.Item, ctx Context, w Weights) Breakdown {
	w = w.Normalize()

	b := Breakdown{
		ID:        item.ID,
		View:      ranking.Normalize(float64(item.Stats.Views), ctx.MaxViews),
		Copy:      ranking.Normalize(float64(item.Stats.Copies), ctx.MaxCopies),
		Save:      ranking.Normalize(float64(item.Stats.Saves), ctx.MaxSaves),
		Rating:    ratingScore(item.Stats, ctx),
		Freshness: freshnessScore(item, ctx.Now),
		Weights:   w,
	}

	b.Total = w.Views*b.View +
		w.Copies*b.Copy +
		w.Saves*b.Save +
		w.Rating*b.Rating +
		w.Freshness*b.Freshness
	return b
}

// ratingScore blends the raw average rating with a confidence factor
// derived from the rating count. Few ratings pull the score toward the
// neutral prior; the more ratings behind the same average, the closer the
// score sits to the raw value.
func ratingScore(st catalog.Stats, ctx Context) float64 {
	raw := ranking.Normalize(st.AvgRating, maxRating)
	confidence := ranking.Normalize(float64(st.RatingCount), ctx.MaxRatingCount)
	return neutralRating + confidence*(raw-neutralRating)
}

// freshnessScore decays exponentially with time since the last update.
// More recent updates score strictly higher. A missing or unparseable
// timestamp resolves to the stale floor rather than zero or a panic.
func freshnessScore(item catalog.Item, now time.Time) float64 {
	updated, ok := item.UpdatedTime()
	if !ok {
		return staleFreshness
	}
	age := now.Sub(updated)
	if age < 0 {
		age = 0
	}
	return math.Exp2(-age.Hours() / freshnessHalfLife.Hours())
}
