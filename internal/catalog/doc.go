// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

// Package catalog defines the prompt catalog data model and snapshot
// loading.
//
// The ranking engine never owns catalog state: callers load or receive a
// Snapshot and pass it (or its Items) into every scorer call. Snapshots are
// immutable once built, which keeps the scorers pure and safe for
// concurrent use without coordination.
//
// Catalogs come from either a JSON file (LoadFile) or the embedded starter
// set (Seed). Usage counters inside items are read-only from this package's
// perspective; whatever system records views, copies, saves, and ratings
// does so upstream and ships the engine a fresh snapshot.
package catalog
