// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

// Package api exposes the ranking engine over HTTP.
//
// All endpoints live under /api/v1 and answer with the APIResponse
// envelope. Query handlers validate call shape up front and return 400
// for malformed limits or bodies; degraded catalog data never produces an
// error response, only degraded scores.
//
// The middleware stack, outermost first: request ID assignment, real IP
// extraction, panic recovery, access logging, CORS, then per-route metrics
// and IP rate limiting inside the /api/v1 group. Prometheus metrics are
// served at /metrics outside the rate limit.
package api
