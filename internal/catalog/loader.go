// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// catalogFile is the on-disk catalog format: a top-level object so the
// format can grow fields without breaking older files.
type catalogFile struct {
	Prompts []Item `json:"prompts"`
}

// LoadFile reads a catalog snapshot from a JSON file. Unknown fields are
// tolerated and missing optional fields default to their zero values, so
// older and newer catalog files both load.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a catalog snapshot from raw JSON bytes.
func Parse(data []byte) (*Snapshot, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	snap, err := NewSnapshot(f.Prompts)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return snap, nil
}
