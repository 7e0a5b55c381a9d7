// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package recommend

import (
	"strings"
	"testing"
	"time"

	"github.com/promptdeck/promptdeck/internal/catalog"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func testItems() []catalog.Item {
	stamp := testNow.AddDate(0, 0, -3).Format(time.RFC3339)
	return []catalog.Item{
		{ID: "inbox-zero", Title: "Inbox Zero Coach", Category: "automation", Tags: []string{"email", "productivity"}, UpdatedAt: stamp},
		{ID: "standup-bot", Title: "Standup Summarizer", Category: "automation", Tags: []string{"meetings", "productivity"}, UpdatedAt: stamp},
		{ID: "agenda-maker", Title: "Meeting Agenda Builder", Category: "automation", Tags: []string{"meetings"}, UpdatedAt: stamp},
		{ID: "code-review", Title: "Code Review Companion", Category: "coding", Tags: []string{"review"}, UpdatedAt: stamp},
		{ID: "blog-outline", Title: "Blog Post Outliner", Category: "writing", Tags: []string{"blogging"}, UpdatedAt: stamp},
	}
}

func TestRecommend_ColdStartReturnsEmpty(t *testing.T) {
	got, err := Recommend(nil, Preferences{}, testItems(), Options{Now: testNow})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("cold start returned %d results, want 0", len(got))
	}

	// Exclusions alone are not a positive signal either.
	got, err = Recommend(nil, Preferences{ExcludeCategories: []string{"coding"}}, testItems(), Options{Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("exclusion-only preferences returned %d results, want 0", len(got))
	}
}

func TestRecommend_SavedCategoryDrivesResults(t *testing.T) {
	signals := []Signal{{ItemID: "inbox-zero", Kind: SignalSaved, At: testNow}}

	got, err := Recommend(signals, Preferences{}, testItems(), Options{Now: testNow})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("saved automation prompt produced no recommendations")
	}

	for _, r := range got {
		if r.Item.ID == "inbox-zero" {
			t.Error("the saved item itself must not be recommended")
		}
	}
	if got[0].Item.Category != "automation" {
		t.Errorf("top result category = %q, want automation", got[0].Item.Category)
	}

	if len(got[0].Reasons) == 0 || len(got[0].Reasons) > 2 {
		t.Fatalf("reasons = %v, want 1 or 2 entries", got[0].Reasons)
	}
	joined := strings.Join(got[0].Reasons, "; ")
	if !strings.Contains(joined, "automation") && !strings.Contains(joined, "productivity") {
		t.Errorf("reasons %v should mention the shared category or tag", got[0].Reasons)
	}
}

func TestRecommend_SaveOutweighsView(t *testing.T) {
	items := []catalog.Item{
		{ID: "seen-coding", Category: "coding"},
		{ID: "seen-writing", Category: "writing"},
		{ID: "cand-coding", Category: "coding"},
		{ID: "cand-writing", Category: "writing"},
	}
	signals := []Signal{
		{ItemID: "seen-writing", Kind: SignalViewed},
		{ItemID: "seen-coding", Kind: SignalSaved},
	}

	got, err := Recommend(signals, Preferences{}, items, Options{Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Item.ID != "cand-coding" {
		t.Errorf("saved-category candidate should rank above viewed-category, got %v first", got[0].Item.ID)
	}
}

func TestRecommend_ExclusionsAreAbsolute(t *testing.T) {
	signals := []Signal{
		{ItemID: "inbox-zero", Kind: SignalSaved},
		{ItemID: "standup-bot", Kind: SignalSaved},
	}
	prefs := Preferences{ExcludeCategories: []string{"Automation"}}

	got, err := Recommend(signals, prefs, testItems(), Options{Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range got {
		if strings.EqualFold(r.Item.Category, "automation") {
			t.Errorf("excluded category leaked: %s", r.Item.ID)
		}
	}

	prefs = Preferences{ExcludeTags: []string{"meetings"}}
	got, err = Recommend(signals, prefs, testItems(), Options{Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range got {
		for _, tag := range r.Item.Tags {
			if strings.EqualFold(tag, "meetings") {
				t.Errorf("excluded tag leaked: %s", r.Item.ID)
			}
		}
	}
}

func TestRecommend_BoostsAloneProduceResults(t *testing.T) {
	prefs := Preferences{BoostCategories: []string{"writing"}}

	got, err := Recommend(nil, prefs, testItems(), Options{Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Item.ID != "blog-outline" {
		t.Fatalf("boosted category should surface blog-outline, got %v", resultIDs(got))
	}
	if len(got[0].Reasons) == 0 || !strings.Contains(got[0].Reasons[0], "writing") {
		t.Errorf("boost reason missing, got %v", got[0].Reasons)
	}
}

func TestRecommend_BoostsAddToSignals(t *testing.T) {
	signals := []Signal{{ItemID: "code-review", Kind: SignalViewed}}
	items := testItems()

	without, err := Recommend(signals, Preferences{}, items, Options{Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	with, err := Recommend(signals, Preferences{BoostTags: []string{"meetings"}}, items, Options{Now: testNow})
	if err != nil {
		t.Fatal(err)
	}

	if len(with) <= len(without) {
		t.Errorf("boost should widen the result set: %d without, %d with", len(without), len(with))
	}
	if with[0].Item.HasTag("meetings") == false {
		t.Errorf("boosted tag should dominate ranking, got %v first", with[0].Item.ID)
	}
}

func TestRecommend_UnknownSignalIDsIgnored(t *testing.T) {
	signals := []Signal{
		{ItemID: "no-such-item", Kind: SignalSaved},
		{ItemID: "inbox-zero", Kind: SignalViewed},
	}

	got, err := Recommend(signals, Preferences{}, testItems(), Options{Now: testNow})
	if err != nil {
		t.Fatalf("unknown signal ID should not error: %v", err)
	}
	if len(got) == 0 {
		t.Error("the one valid signal should still drive recommendations")
	}
}

func TestRecommend_LimitAndValidate(t *testing.T) {
	signals := []Signal{{ItemID: "inbox-zero", Kind: SignalSaved}}

	got, err := Recommend(signals, Preferences{}, testItems(), Options{Limit: 1, Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("limit 1 returned %d results", len(got))
	}

	if _, err := Recommend(signals, Preferences{}, testItems(), Options{Limit: -1}); err == nil {
		t.Error("negative limit should be rejected")
	}
}

func TestRecommend_TrendingBreaksAffinityTies(t *testing.T) {
	stamp := testNow.AddDate(0, 0, -1).Format(time.RFC3339)
	items := []catalog.Item{
		{ID: "seen", Category: "coding"},
		{ID: "quiet", Category: "coding", UpdatedAt: stamp},
		{ID: "popular", Category: "coding", UpdatedAt: stamp,
			Stats: catalog.Stats{Views: 1000, Copies: 100, Saves: 50, AvgRating: 4.8, RatingCount: 90}},
	}
	signals := []Signal{{ItemID: "seen", Kind: SignalSaved}}

	got, err := Recommend(signals, Preferences{}, items, Options{Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Item.ID != "popular" {
		t.Errorf("equal affinity should fall back to trending, got %v", resultIDs(got))
	}
}

func TestSignalKindJSON(t *testing.T) {
	for _, kind := range []SignalKind{SignalViewed, SignalSaved} {
		data, err := kind.MarshalJSON()
		if err != nil {
			t.Fatal(err)
		}
		var back SignalKind
		if err := back.UnmarshalJSON(data); err != nil {
			t.Fatalf("round trip %s: %v", kind, err)
		}
		if back != kind {
			t.Errorf("round trip %s came back as %s", kind, back)
		}
	}

	var k SignalKind
	if err := k.UnmarshalJSON([]byte(`"starred"`)); err == nil {
		t.Error("unknown kind should fail to decode")
	}
}

func resultIDs(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Item.ID
	}
	return out
}
