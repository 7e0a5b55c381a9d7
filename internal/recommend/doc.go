// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

// Package recommend produces personalized catalog suggestions from user
// interaction signals and explicit preferences.
//
// The engine builds a taste profile over tags and categories: saves weigh
// twice what views do, explicit boosts land in between. Candidates are the
// unseen catalog items; each scores by overlap with the profile, with a
// small trending component breaking ties among equally matched items.
// Every result carries up to two plain-language reasons.
//
// Exclusion preferences are absolute. An excluded tag or category removes
// a candidate regardless of affinity. A user with no signals and no boosts
// gets an empty result, not a popularity list in disguise.
package recommend
