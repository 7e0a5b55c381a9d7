// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package trending

import (
	"fmt"
	"time"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/ranking"
)

// Options controls a trending query. The zero value is valid: no category
// filter, no exclusions, no score floor, no limit, wall-clock now, default
// weights.
type Options struct {
	// Limit caps the result count. Zero means unlimited.
	Limit int

	// Category restricts results to one category, case-insensitive.
	// Empty matches everything.
	Category string

	// ExcludeIDs removes specific items before scoring.
	ExcludeIDs []string

	// MinScore drops items whose total falls below the floor. Must be
	// within [0, 1].
	MinScore float64

	// Now anchors the freshness decay. Zero means time.Now.
	Now time.Time

	// Weights overrides the component weights. The zero value means
	// DefaultWeights.
	Weights Weights
}

// Validate rejects malformed options. Degraded catalog data is tolerated
// at scoring time; a malformed call shape is a caller bug and fails here.
func (o Options) Validate() error {
	if o.Limit < 0 {
		return fmt.Errorf("trending: limit must be >= 0, got %d", o.Limit)
	}
	if o.MinScore < 0 || o.MinScore > 1 {
		return fmt.Errorf("trending: min score must be within [0, 1], got %g", o.MinScore)
	}
	return nil
}

// ScoredItem pairs an item with its full scoring breakdown.
type ScoredItem struct {
	Item      catalog.Item `json:"item"`
	Breakdown Breakdown    `json:"breakdown"`
}

// Trending ranks items by trending score, most trending first, applying
// the option filters. Equal totals keep catalog order.
func Trending(items []catalog.Item, opts Options) ([]catalog.Item, error) {
	scored, err := TrendingWithScores(items, opts)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Item, len(scored))
	for i, s := range scored {
		out[i] = s.Item
	}
	return out, nil
}

// TrendingWithScores is Trending with the per-item breakdown retained, for
// callers that surface score explanations.
func TrendingWithScores(items []catalog.Item, opts Options) ([]ScoredItem, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	weights := opts.Weights
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}

	// Maxima are taken over the full candidate set, not the filtered
	// subset, so a category filter does not reshuffle relative scores.
	ctx := NewContext(items, opts.Now)
	excluded := ranking.ExcludeSet(opts.ExcludeIDs)

	scored := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		if ranking.Excluded(excluded, item.ID) {
			continue
		}
		if !ranking.MatchesCategory(item.Category, opts.Category) {
			continue
		}
		b := ScoreWithWeights(item, ctx, weights)
		if b.Total < opts.MinScore {
			continue
		}
		scored = append(scored, ScoredItem{Item: item, Breakdown: b})
	}

	ranking.SortByScoreDesc(scored, func(s ScoredItem) float64 { return s.Breakdown.Total })
	return ranking.Limit(scored, opts.Limit), nil
}

// SortByTrending orders items in place by descending trending score with
// default weights. It is the cheap entry point for callers that only need
// an ordering, such as the recommendation tie-break.
func SortByTrending(items []catalog.Item, now time.Time) {
	ctx := NewContext(items, now)
	totals := make(map[string]float64, len(items))
	for _, item := range items {
		totals[item.ID] = Score(item, ctx).Total
	}
	ranking.SortByScoreDesc(items, func(it catalog.Item) float64 { return totals[it.ID] })
}
