// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package ranking

import (
	"math"
	"sort"
	"strings"
)

// Normalize divides value by a corpus maximum, guarding the degenerate
// cases: a non-positive maximum acts as a denominator of 1, and the result
// is clamped to [0, 1] so no NaN or Infinity ever propagates into a score.
func Normalize(value, max float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if max <= 0 || math.IsNaN(max) || math.IsInf(max, 0) {
		max = 1
	}
	n := value / max
	switch {
	case n < 0 || math.IsNaN(n):
		return 0
	case n > 1:
		return 1
	default:
		return n
	}
}

// SortByScoreDesc sorts items by descending score. The sort is stable, so
// equal scores keep their input (catalog) order, giving every pipeline a
// deterministic tie-break.
func SortByScoreDesc[T any](items []T, score func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return score(items[i]) > score(items[j])
	})
}

// Limit truncates items to at most n entries. n <= 0 means no limit.
func Limit[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}

// MatchesCategory reports whether an item category passes a filter,
// ignoring case. An empty filter passes everything.
func MatchesCategory(category, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.EqualFold(category, filter)
}

// ExcludeSet builds a membership set from a list of item IDs for
// exclusion filtering.
func ExcludeSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Excluded reports whether id is present in the exclusion set. A nil set
// excludes nothing.
func Excluded(set map[string]struct{}, id string) bool {
	if set == nil {
		return false
	}
	_, ok := set[id]
	return ok
}
