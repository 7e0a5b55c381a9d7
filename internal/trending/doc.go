// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

// Package trending scores catalog items by recent popularity.
//
// A score is a weighted sum of five components, each normalized to [0, 1]:
// views, copies, saves, a confidence-adjusted rating, and freshness decay.
// Normalization denominators are corpus maxima captured in a Context, so a
// score is always relative to the candidate set it was computed against.
//
// Scoring never returns an error for degraded catalog data. Missing
// counters score zero, unparseable timestamps get a stale floor, and
// empty corpora resolve to finite values. Only a malformed Options value
// (negative limit, score floor outside [0, 1]) fails, and it fails before
// any scoring happens.
package trending
