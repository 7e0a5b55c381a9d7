// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package trending

import (
	"math"
	"testing"
	"time"

	"github.com/promptdeck/promptdeck/internal/catalog"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func stamp(daysAgo int) string {
	return testNow.AddDate(0, 0, -daysAgo).Format(time.RFC3339)
}

func TestTrending_HigherEngagementWinsWhenEquallyFresh(t *testing.T) {
	items := []catalog.Item{
		{
			ID:        "y",
			Title:     "Y",
			Stats:     catalog.Stats{Views: 40, Copies: 5, Saves: 3, AvgRating: 4.0, RatingCount: 10},
			UpdatedAt: stamp(2),
		},
		{
			ID:        "x",
			Title:     "X",
			Stats:     catalog.Stats{Views: 900, Copies: 120, Saves: 80, AvgRating: 4.6, RatingCount: 200},
			UpdatedAt: stamp(2),
		},
	}

	ranked, err := Trending(items, Options{})
	if err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if ranked[0].ID != "x" {
		t.Errorf("expected x to outrank y, got %q first", ranked[0].ID)
	}

	scored, err := TrendingWithScores(items, Options{})
	if err != nil {
		t.Fatalf("TrendingWithScores: %v", err)
	}
	for _, s := range scored {
		b := s.Breakdown
		for name, v := range map[string]float64{
			"view": b.View, "copy": b.Copy, "save": b.Save,
			"rating": b.Rating, "freshness": b.Freshness, "total": b.Total,
		} {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Errorf("item %s component %s = %v, want within [0, 1]", b.ID, name, v)
			}
		}
	}
}

func TestScore_ZeroCorpusIsFinite(t *testing.T) {
	item := catalog.Item{ID: "only", UpdatedAt: "not a timestamp"}
	ctx := NewContext([]catalog.Item{item}, testNow)

	b := Score(item, ctx)
	if math.IsNaN(b.Total) || math.IsInf(b.Total, 0) {
		t.Fatalf("total = %v, want finite", b.Total)
	}
	if b.View != 0 || b.Copy != 0 || b.Save != 0 {
		t.Errorf("zero counters should score zero, got view=%v copy=%v save=%v", b.View, b.Copy, b.Save)
	}
	if b.Freshness != staleFreshness {
		t.Errorf("unparseable timestamp freshness = %v, want %v", b.Freshness, staleFreshness)
	}
}

func TestRatingConfidence(t *testing.T) {
	// Same perfect average; the single-rating item must sit closer to the
	// neutral prior than the heavily rated one.
	items := []catalog.Item{
		{ID: "few", Stats: catalog.Stats{AvgRating: 5, RatingCount: 1}, UpdatedAt: stamp(1)},
		{ID: "many", Stats: catalog.Stats{AvgRating: 5, RatingCount: 500}, UpdatedAt: stamp(1)},
	}
	ctx := NewContext(items, testNow)

	few := Score(items[0], ctx)
	many := Score(items[1], ctx)

	if many.Rating <= few.Rating {
		t.Errorf("rating with 500 counts (%v) should beat 1 count (%v)", many.Rating, few.Rating)
	}
	if math.Abs(many.Rating-1.0) > 1e-9 {
		t.Errorf("full-confidence perfect rating = %v, want 1", many.Rating)
	}
	if few.Rating <= neutralRating {
		t.Errorf("low-confidence perfect rating = %v, should still exceed the %v prior", few.Rating, neutralRating)
	}

	// A low average with few ratings is pulled up toward the prior, never
	// further punished.
	bad := Score(catalog.Item{ID: "bad", Stats: catalog.Stats{AvgRating: 1, RatingCount: 1}, UpdatedAt: stamp(1)}, ctx)
	if bad.Rating >= neutralRating || bad.Rating <= 0.2 {
		t.Errorf("low-confidence bad rating = %v, want between raw 0.2 and prior %v", bad.Rating, neutralRating)
	}
}

func TestFreshnessDecay(t *testing.T) {
	mk := func(id string, daysAgo int) catalog.Item {
		return catalog.Item{ID: id, UpdatedAt: stamp(daysAgo)}
	}
	items := []catalog.Item{mk("today", 0), mk("month", 30), mk("year", 365)}
	ctx := NewContext(items, testNow)

	today := Score(items[0], ctx).Freshness
	month := Score(items[1], ctx).Freshness
	year := Score(items[2], ctx).Freshness

	if !(today > month && month > year) {
		t.Fatalf("freshness not strictly decreasing: today=%v month=%v year=%v", today, month, year)
	}
	if math.Abs(today-1) > 1e-9 {
		t.Errorf("freshness at reference time = %v, want 1", today)
	}
	if math.Abs(month-0.5) > 1e-9 {
		t.Errorf("freshness after one half-life = %v, want 0.5", month)
	}

	future := Score(catalog.Item{ID: "future", UpdatedAt: stamp(-7)}, ctx).Freshness
	if math.Abs(future-1) > 1e-9 {
		t.Errorf("future timestamp freshness = %v, want clamped to 1", future)
	}
}

func TestTrending_Filters(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Category: "coding", Stats: catalog.Stats{Views: 100}, UpdatedAt: stamp(1)},
		{ID: "b", Category: "coding", Stats: catalog.Stats{Views: 50}, UpdatedAt: stamp(1)},
		{ID: "c", Category: "writing", Stats: catalog.Stats{Views: 80}, UpdatedAt: stamp(1)},
	}

	t.Run("category", func(t *testing.T) {
		got, err := Trending(items, Options{Category: "Coding"})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
			t.Errorf("category filter returned %v", ids(got))
		}
	})

	t.Run("exclude", func(t *testing.T) {
		got, err := Trending(items, Options{ExcludeIDs: []string{"a", "c"}})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].ID != "b" {
			t.Errorf("exclusion returned %v", ids(got))
		}
	})

	t.Run("limit", func(t *testing.T) {
		got, err := Trending(items, Options{Limit: 1})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].ID != "a" {
			t.Errorf("limit 1 returned %v", ids(got))
		}
	})

	t.Run("min score", func(t *testing.T) {
		got, err := Trending(items, Options{MinScore: 0.99})
		if err != nil {
			t.Fatal(err)
		}
		for _, item := range got {
			if item.ID == "b" {
				t.Error("b scores well below 0.99 and should be dropped")
			}
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		got, err := Trending(nil, Options{Limit: 5})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("empty catalog returned %v", ids(got))
		}
	})
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "zero value", opts: Options{}},
		{name: "valid floor", opts: Options{MinScore: 0.5, Limit: 10}},
		{name: "negative limit", opts: Options{Limit: -1}, wantErr: true},
		{name: "floor above one", opts: Options{MinScore: 1.5}, wantErr: true},
		{name: "negative floor", opts: Options{MinScore: -0.1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if _, err := Trending(nil, Options{Limit: -3}); err == nil {
		t.Error("Trending should refuse a negative limit")
	}
}

func TestWeightsNormalize(t *testing.T) {
	sum := func(w Weights) float64 {
		return w.Views + w.Copies + w.Saves + w.Rating + w.Freshness
	}

	if got := sum(DefaultWeights().Normalize()); math.Abs(got-1) > 1e-9 {
		t.Errorf("default weights sum = %v, want 1", got)
	}
	if got := sum(Weights{Views: 2, Copies: 2}.Normalize()); math.Abs(got-1) > 1e-9 {
		t.Errorf("scaled weights sum = %v, want 1", got)
	}

	zero := Weights{}.Normalize()
	if math.Abs(sum(zero)-1) > 1e-9 || zero.Views != zero.Freshness {
		t.Errorf("zero weights should normalize to equal fifths, got %+v", zero)
	}
}

func TestBreakdownEchoesWeights(t *testing.T) {
	item := catalog.Item{ID: "a", Stats: catalog.Stats{Views: 10}, UpdatedAt: stamp(1)}
	ctx := NewContext([]catalog.Item{item}, testNow)

	custom := Weights{Views: 1} // everything on views
	b := ScoreWithWeights(item, ctx, custom)
	if b.Weights.Views != 1 {
		t.Errorf("breakdown weights = %+v, want views-only after normalization", b.Weights)
	}
	if math.Abs(b.Total-b.View) > 1e-9 {
		t.Errorf("views-only total = %v, want view component %v", b.Total, b.View)
	}
}

func TestSortByTrending(t *testing.T) {
	items := []catalog.Item{
		{ID: "cold", Stats: catalog.Stats{Views: 1}, UpdatedAt: stamp(300)},
		{ID: "hot", Stats: catalog.Stats{Views: 500, Copies: 40, Saves: 30}, UpdatedAt: stamp(1)},
	}
	SortByTrending(items, testNow)
	if items[0].ID != "hot" {
		t.Errorf("first after sort = %q, want hot", items[0].ID)
	}
}

func ids(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
