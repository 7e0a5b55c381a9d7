// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package search

import (
	"math"
	"reflect"
	"testing"

	"github.com/promptdeck/promptdeck/internal/catalog"
)

func testItems() []catalog.Item {
	return []catalog.Item{
		{
			ID:          "idea-wizard",
			Title:       "The Idea Wizard",
			Description: "Generate fresh product ideas from a single theme",
			Category:    "brainstorming",
			Tags:        []string{"ideation", "creativity"},
			Content:     "You are a creative partner. Produce ten distinct ideas.",
		},
		{
			ID:          "code-reviewer",
			Title:       "Code Review Companion",
			Description: "Review a diff for bugs and style issues",
			Category:    "coding",
			Tags:        []string{"review", "quality"},
			Content:     "Act as a senior engineer reviewing the following change.",
		},
		{
			ID:          "blog-outliner",
			Title:       "Blog Post Outliner",
			Description: "Turn an idea into a structured outline",
			Category:    "writing",
			Tags:        []string{"outline", "blogging"},
			Content:     "Draft a blog outline with sections and key points for the idea below.",
		},
	}
}

func TestSearch_ExactMatch(t *testing.T) {
	got, err := Search(testItems(), "code review", Options{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) == 0 || got[0].Item.ID != "code-reviewer" {
		t.Fatalf("expected code-reviewer first, got %v", resultIDs(got))
	}
}

func TestSearch_FuzzyRecoversMisspelling(t *testing.T) {
	got, err := Search(testItems(), "idee wizrd", Options{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("misspelled query found nothing")
	}
	if got[0].Item.ID != "idea-wizard" {
		t.Errorf("expected idea-wizard first, got %v", resultIDs(got))
	}
}

func TestSearch_TitleOutweighsBody(t *testing.T) {
	items := []catalog.Item{
		{ID: "in-body", Title: "Helper", Content: "debugging debugging debugging tips"},
		{ID: "in-title", Title: "Debugging Guide", Content: "general advice"},
	}

	got, err := Search(items, "debugging", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Item.ID != "in-title" {
		t.Errorf("title match should outrank repeated body match, got %v", resultIDs(got))
	}
}

func TestSearch_RareTermOutweighsCommon(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Content: "prompt alpha"},
		{ID: "b", Content: "prompt beta"},
		{ID: "c", Content: "prompt gamma"},
	}

	got, err := Search(items, "prompt beta", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Item.ID != "b" {
		t.Errorf("item matching the rare term should rank first, got %v", resultIDs(got))
	}
}

func TestSearch_EmptyAndPunctuationQueries(t *testing.T) {
	for _, query := range []string{"", "   ", "!!! ???", "--- ..."} {
		got, err := Search(testItems(), query, Options{})
		if err != nil {
			t.Fatalf("query %q: %v", query, err)
		}
		if len(got) != 0 {
			t.Errorf("query %q returned %v, want empty", query, resultIDs(got))
		}
	}
}

func TestSearch_CategoryFilter(t *testing.T) {
	got, err := Search(testItems(), "idea", Options{Category: "Writing"})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range got {
		if r.Item.Category != "writing" {
			t.Errorf("category filter leaked %q", r.Item.ID)
		}
	}
	if len(got) != 1 || got[0].Item.ID != "blog-outliner" {
		t.Errorf("expected only blog-outliner, got %v", resultIDs(got))
	}
}

func TestSearch_NoMatchesDropped(t *testing.T) {
	got, err := Search(testItems(), "xylophone", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("unmatched query returned %v, want empty", resultIDs(got))
	}
}

func TestSearch_DeterministicTieBreak(t *testing.T) {
	items := []catalog.Item{
		{ID: "first", Title: "Same Title"},
		{ID: "second", Title: "Same Title"},
	}

	for i := 0; i < 5; i++ {
		got, err := Search(items, "same title", Options{})
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(resultIDs(got), []string{"first", "second"}) {
			t.Fatalf("run %d: tie-break order %v, want catalog order", i, resultIDs(got))
		}
	}
}

func TestSearch_PartialConfigKeepsDefaults(t *testing.T) {
	// Overriding one knob must not zero out the field weights.
	got, err := Search(testItems(), "code review", Options{
		Config: Config{FuzzyThreshold: 0.9},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 || got[0].Item.ID != "code-reviewer" {
		t.Fatalf("partial config lost exact matching, got %v", resultIDs(got))
	}

	// The overridden knob still takes effect: 0.9 is above the 0.83
	// similarity of wizrd/wizard, so the fuzzy query finds nothing.
	got, err = Search(testItems(), "wizrd", Options{
		Config: Config{FuzzyThreshold: 0.9},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("raised threshold should drop fuzzy matches, got %v", resultIDs(got))
	}
}

func TestSearch_LimitAndValidate(t *testing.T) {
	got, err := Search(testItems(), "idea", Options{Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("limit 1 returned %d results", len(got))
	}

	if _, err := Search(testItems(), "idea", Options{Limit: -1}); err == nil {
		t.Error("negative limit should be rejected")
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"The Idea Wizard", []string{"the", "idea", "wizard"}},
		{"one-two_three", []string{"one", "two", "three"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{"v2.0 beta", []string{"v2", "0", "beta"}},
		{"!!!", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := Tokenize(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"idea", "idea", 1},
		{"idee", "idea", 0.75},
		{"wizrd", "wizard", 1 - 1.0/6.0},
		{"", "", 1},
		{"abc", "", 0},
		{"cat", "dog", 0},
	}

	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func resultIDs(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Item.ID
	}
	return out
}
