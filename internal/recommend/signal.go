// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package recommend

import (
	"fmt"
	"time"
)

// SignalKind classifies a user interaction with a catalog item.
type SignalKind int

const (
	// SignalViewed records that the user opened an item.
	SignalViewed SignalKind = iota

	// SignalSaved records that the user saved an item. Saving is a
	// deliberate act and carries at least the weight of a view.
	SignalSaved
)

const (
	viewedWeight = 1.0
	savedWeight  = 2.0
)

// Weight returns the profile weight a signal of this kind contributes.
func (k SignalKind) Weight() float64 {
	if k == SignalSaved {
		return savedWeight
	}
	return viewedWeight
}

func (k SignalKind) String() string {
	if k == SignalSaved {
		return "saved"
	}
	return "viewed"
}

// MarshalJSON encodes the kind as its string name.
func (k SignalKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON accepts the string names produced by MarshalJSON.
func (k *SignalKind) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"viewed"`:
		*k = SignalViewed
	case `"saved"`:
		*k = SignalSaved
	default:
		return fmt.Errorf("recommend: unknown signal kind %s", data)
	}
	return nil
}

// Signal is one recorded interaction. Signals referencing unknown item IDs
// are ignored at recommendation time rather than rejected.
type Signal struct {
	ItemID string     `json:"item_id"`
	Kind   SignalKind `json:"kind"`
	At     time.Time  `json:"at,omitempty"`
}

// Preferences are the user's explicit taste settings. Boosts raise
// matching candidates; exclusions remove them outright, no matter how
// strong the other evidence is.
type Preferences struct {
	BoostTags         []string `json:"boost_tags,omitempty"`
	BoostCategories   []string `json:"boost_categories,omitempty"`
	ExcludeTags       []string `json:"exclude_tags,omitempty"`
	ExcludeCategories []string `json:"exclude_categories,omitempty"`
}
