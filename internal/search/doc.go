// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

// Package search implements lexical relevance ranking over the catalog.
//
// Scoring follows the usual retrieval shape: per-term saturated frequency
// (tf / (tf + k)) times a smoothed inverse document frequency, weighted by
// which field the term appeared in. Titles count most, then descriptions,
// tags, and finally the prompt body.
//
// Query terms with no exact occurrence in an item fall back to normalized
// edit-distance matching against that item's tokens, discounted so a
// near-miss never beats the real thing. The whole pipeline is pure: no
// index is persisted between calls, which is fine at catalog scale.
package search
