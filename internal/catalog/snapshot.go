// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Snapshot is an immutable view of the catalog at a point in time. Scorers
// receive a Snapshot (or its Items slice) as an explicit argument; there is
// no package-level registry.
type Snapshot struct {
	items []Item
	byID  map[string]int
}

// NameCount pairs a category or tag name with the number of items carrying it.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// NewSnapshot builds a snapshot from the given items. Item IDs must be
// non-empty and unique; duplicates are a data error surfaced to the caller.
func NewSnapshot(items []Item) (*Snapshot, error) {
	copied := make([]Item, len(items))
	copy(copied, items)

	byID := make(map[string]int, len(copied))
	for i, it := range copied {
		if it.ID == "" {
			return nil, fmt.Errorf("item at index %d has empty id", i)
		}
		if prev, ok := byID[it.ID]; ok {
			return nil, fmt.Errorf("duplicate item id %q at indexes %d and %d", it.ID, prev, i)
		}
		byID[it.ID] = i
	}

	return &Snapshot{items: copied, byID: byID}, nil
}

// Items returns the snapshot contents in catalog order. Callers must treat
// the returned slice as read-only.
func (s *Snapshot) Items() []Item {
	return s.items
}

// Len returns the number of items in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.items)
}

// ByID returns the item with the given ID, if present.
func (s *Snapshot) ByID(id string) (Item, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Item{}, false
	}
	return s.items[i], true
}

// Featured returns the editorially highlighted items in catalog order.
func (s *Snapshot) Featured() []Item {
	var out []Item
	for _, it := range s.items {
		if it.Featured {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns the distinct categories with item counts, sorted by
// name. Category names are folded to lower case for grouping.
func (s *Snapshot) Categories() []NameCount {
	counts := make(map[string]int)
	for _, it := range s.items {
		if it.Category == "" {
			continue
		}
		counts[strings.ToLower(it.Category)]++
	}
	return sortedCounts(counts)
}

// Tags returns the distinct tags with item counts, sorted by name. Tag
// names are folded to lower case for grouping.
func (s *Snapshot) Tags() []NameCount {
	counts := make(map[string]int)
	for _, it := range s.items {
		for _, tag := range it.Tags {
			if tag == "" {
				continue
			}
			counts[strings.ToLower(tag)]++
		}
	}
	return sortedCounts(counts)
}

func sortedCounts(counts map[string]int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, NameCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
