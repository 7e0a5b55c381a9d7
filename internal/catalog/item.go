// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package catalog

import (
	"strings"
	"time"
)

// Stats holds the live usage counters for an item. The ranking engine only
// ever reads these values; mutation is owned by the caller that maintains
// the catalog.
type Stats struct {
	// Views is the number of times the item detail was opened.
	Views int `json:"views"`

	// Copies is the number of times the item body was copied.
	Copies int `json:"copies"`

	// Saves is the number of times the item was saved to a user library.
	Saves int `json:"saves"`

	// AvgRating is the average user rating on a 0-5 scale.
	AvgRating float64 `json:"avg_rating"`

	// RatingCount is the number of ratings behind AvgRating.
	RatingCount int `json:"rating_count"`
}

// Item is the catalog unit: a short text prompt with metadata and usage
// counters. Items are supplied to the engine as an immutable snapshot.
type Item struct {
	// ID is the unique item identifier (slug).
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Description is a one-line summary.
	Description string `json:"description,omitempty"`

	// Content is the full prompt body.
	Content string `json:"content"`

	// Category is the single-valued category name.
	Category string `json:"category,omitempty"`

	// Tags is the multi-valued tag set.
	Tags []string `json:"tags,omitempty"`

	// Stats holds the usage counters.
	Stats Stats `json:"stats"`

	// UpdatedAt is the last-updated timestamp in RFC 3339 form. It is kept
	// as a string because upstream feeds have been observed to carry
	// malformed values; scorers parse it defensively.
	UpdatedAt string `json:"updated_at,omitempty"`

	// Featured marks editorially highlighted items.
	Featured bool `json:"featured,omitempty"`
}

// MatchesCategory reports whether the item belongs to the given category,
// ignoring case. An empty filter matches everything.
func (it *Item) MatchesCategory(category string) bool {
	if category == "" {
		return true
	}
	return strings.EqualFold(it.Category, category)
}

// HasTag reports whether the item carries the given tag, ignoring case.
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// UpdatedTime parses UpdatedAt. The boolean is false when the timestamp is
// missing or unparseable; callers are expected to degrade rather than fail.
func (it *Item) UpdatedTime() (time.Time, bool) {
	if it.UpdatedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, it.UpdatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
