// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package catalog

import (
	_ "embed"
	"fmt"
)

// seedData is the bundled starter catalog, used when no catalog file is
// configured so the server is usable out of the box.
//
//go:embed seed.json
var seedData []byte

// Seed returns the bundled starter catalog.
func Seed() (*Snapshot, error) {
	snap, err := Parse(seedData)
	if err != nil {
		return nil, fmt.Errorf("embedded seed catalog: %w", err)
	}
	return snap, nil
}
