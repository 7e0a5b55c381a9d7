// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package search

import (
	"fmt"
	"math"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/ranking"
)

// Config holds the scoring tunables. Field weights bias matches toward the
// fields users actually scan first. Zero fields fall back to their
// defaults at search time, so a caller overriding one knob cannot
// accidentally zero out the rest.
type Config struct {
	// TitleWeight multiplies matches in the item title. Default: 3.0.
	TitleWeight float64 `json:"title_weight" koanf:"title_weight"`

	// DescriptionWeight multiplies matches in the description. Default: 2.0.
	DescriptionWeight float64 `json:"description_weight" koanf:"description_weight"`

	// TagWeight multiplies matches in tags. Default: 1.5.
	TagWeight float64 `json:"tag_weight" koanf:"tag_weight"`

	// ContentWeight multiplies matches in the prompt body. Default: 1.0.
	ContentWeight float64 `json:"content_weight" koanf:"content_weight"`

	// Saturation is the k in tf/(tf+k). Repeated occurrences of a term
	// add diminishing score instead of growing linearly. Default: 1.5.
	Saturation float64 `json:"saturation" koanf:"saturation"`

	// FuzzyThreshold is the minimum edit-distance similarity for a
	// near-miss token to count as a match. Default: 0.7.
	FuzzyThreshold float64 `json:"fuzzy_threshold" koanf:"fuzzy_threshold"`

	// FuzzyDiscount scales fuzzy contributions so an approximate match
	// never outranks an exact one. Default: 0.5.
	FuzzyDiscount float64 `json:"fuzzy_discount" koanf:"fuzzy_discount"`
}

// DefaultConfig returns the production search tunables.
func DefaultConfig() Config {
	return Config{
		TitleWeight:       3.0,
		DescriptionWeight: 2.0,
		TagWeight:         1.5,
		ContentWeight:     1.0,
		Saturation:        1.5,
		FuzzyThreshold:    0.7,
		FuzzyDiscount:     0.5,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TitleWeight == 0 {
		c.TitleWeight = d.TitleWeight
	}
	if c.DescriptionWeight == 0 {
		c.DescriptionWeight = d.DescriptionWeight
	}
	if c.TagWeight == 0 {
		c.TagWeight = d.TagWeight
	}
	if c.ContentWeight == 0 {
		c.ContentWeight = d.ContentWeight
	}
	if c.Saturation == 0 {
		c.Saturation = d.Saturation
	}
	if c.FuzzyThreshold == 0 {
		c.FuzzyThreshold = d.FuzzyThreshold
	}
	if c.FuzzyDiscount == 0 {
		c.FuzzyDiscount = d.FuzzyDiscount
	}
	return c
}

// Options controls a single search call.
type Options struct {
	// Category restricts results to one category, case-insensitive.
	Category string

	// Limit caps the result count. Zero means unlimited.
	Limit int

	// Config overrides the scoring tunables. The zero value means
	// DefaultConfig.
	Config Config
}

// Validate rejects malformed options before any scoring work.
func (o Options) Validate() error {
	if o.Limit < 0 {
		return fmt.Errorf("search: limit must be >= 0, got %d", o.Limit)
	}
	return nil
}

// Result is one search hit with its relevance score. Scores are comparable
// only within the result set they came from.
type Result struct {
	Item  catalog.Item `json:"item"`
	Score float64      `json:"score"`
}

// itemIndex is the per-item token view the scorer works on.
type itemIndex struct {
	item   catalog.Item
	fields []fieldTokens
	all    []string
}

type fieldTokens struct {
	weight float64
	counts map[string]int
}

// Search ranks items by lexical relevance to query, best match first.
// Query terms that appear nowhere in the corpus fall back to edit-distance
// matching, so a misspelled query still finds its target. An empty or
// punctuation-only query returns no results.
func Search(items []catalog.Item, query string, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfg := opts.Config.withDefaults()

	terms := Tokenize(query)
	if len(terms) == 0 {
		return []Result{}, nil
	}

	indexed := make([]itemIndex, 0, len(items))
	for _, item := range items {
		if !ranking.MatchesCategory(item.Category, opts.Category) {
			continue
		}
		indexed = append(indexed, indexItem(item, cfg))
	}

	df := documentFrequencies(indexed, terms)
	n := len(indexed)

	results := make([]Result, 0, n)
	for _, idx := range indexed {
		score := scoreItem(idx, terms, df, n, cfg)
		if score <= 0 {
			continue
		}
		results = append(results, Result{Item: idx.item, Score: score})
	}

	ranking.SortByScoreDesc(results, func(r Result) float64 { return r.Score })
	return ranking.Limit(results, opts.Limit), nil
}

func indexItem(item catalog.Item, cfg Config) itemIndex {
	idx := itemIndex{item: item}
	add := func(weight float64, tokens []string) {
		if len(tokens) == 0 {
			return
		}
		counts := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			counts[tok]++
		}
		idx.fields = append(idx.fields, fieldTokens{weight: weight, counts: counts})
		idx.all = append(idx.all, tokens...)
	}

	add(cfg.TitleWeight, Tokenize(item.Title))
	add(cfg.DescriptionWeight, Tokenize(item.Description))
	var tagTokens []string
	for _, tag := range item.Tags {
		tagTokens = append(tagTokens, Tokenize(tag)...)
	}
	add(cfg.TagWeight, tagTokens)
	add(cfg.ContentWeight, Tokenize(item.Content))
	return idx
}

// documentFrequencies counts, per query term, how many items contain it in
// any field.
func documentFrequencies(indexed []itemIndex, terms []string) map[string]int {
	df := make(map[string]int, len(terms))
	for _, idx := range indexed {
		for _, term := range terms {
			for _, f := range idx.fields {
				if f.counts[term] > 0 {
					df[term]++
					break
				}
			}
		}
	}
	return df
}

// scoreItem sums each query term's contribution across the item's fields.
// Exact matches earn saturated, rarity-boosted, field-weighted score; a
// term with no exact match anywhere in the item falls back to its best
// fuzzy match against the item's tokens.
func scoreItem(idx itemIndex, terms []string, df map[string]int, n int, cfg Config) float64 {
	var total float64
	for _, term := range terms {
		var termScore float64
		for _, f := range idx.fields {
			tf := float64(f.counts[term])
			if tf == 0 {
				continue
			}
			termScore += f.weight * (tf / (tf + cfg.Saturation)) * idf(df[term], n)
		}
		if termScore == 0 {
			termScore = fuzzyScore(term, idx.all, cfg)
		}
		total += termScore
	}
	return total
}

// idf boosts rare terms over common ones, smoothed so a term present in
// every document still contributes a small positive amount.
func idf(df, n int) float64 {
	return math.Log(1 + (float64(n)-float64(df)+0.5)/(float64(df)+0.5))
}

// fuzzyScore finds the item token most similar to term. Below the
// threshold the term contributes nothing; above it, the contribution is
// proportional to similarity and discounted relative to exact matches.
func fuzzyScore(term string, tokens []string, cfg Config) float64 {
	var best float64
	for _, tok := range tokens {
		if sim := Similarity(term, tok); sim > best {
			best = sim
		}
	}
	if best < cfg.FuzzyThreshold {
		return 0
	}
	return maxFieldWeight(cfg) * best * cfg.FuzzyDiscount
}

func maxFieldWeight(cfg Config) float64 {
	w := cfg.TitleWeight
	for _, c := range []float64{cfg.DescriptionWeight, cfg.TagWeight, cfg.ContentWeight} {
		if c > w {
			w = c
		}
	}
	return w
}
