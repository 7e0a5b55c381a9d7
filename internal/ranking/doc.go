// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

// Package ranking holds the small pure helpers shared by every scorer:
// guarded normalization, stable descending sort, category and exclusion
// predicates, and result truncation.
//
// These helpers carry the correctness burden for the engine's edge cases
// (zero corpus maxima, equal scores, empty filters), so they are tested
// independently of the scorers that consume them.
package ranking
