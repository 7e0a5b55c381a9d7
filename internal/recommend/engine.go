// Promptdeck - Prompt Catalog Ranking and Recommendations
// Copyright 2026 Promptdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promptdeck/promptdeck

package recommend

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/ranking"
	"github.com/promptdeck/promptdeck/internal/trending"
)

const (
	// boostWeight is what an explicit preference contributes per match.
	// Deliberate but cheaper than an actual save.
	boostWeight = 1.5

	// trendingTieWeight scales the trending score added to every
	// candidate. Small enough that affinity always dominates; it only
	// decides between candidates with near-equal affinity.
	trendingTieWeight = 0.05

	// maxReasons caps the explanation strings per result.
	maxReasons = 2
)

// Options controls a recommendation call.
type Options struct {
	// Limit caps the result count. Zero means unlimited.
	Limit int

	// Now anchors the trending tie-break. Zero means time.Now.
	Now time.Time
}

// Validate rejects malformed options.
func (o Options) Validate() error {
	if o.Limit < 0 {
		return fmt.Errorf("recommend: limit must be >= 0, got %d", o.Limit)
	}
	return nil
}

// Result is one recommended item with its affinity score and up to two
// human-readable reasons explaining why it surfaced.
type Result struct {
	Item    catalog.Item `json:"item"`
	Score   float64      `json:"score"`
	Reasons []string     `json:"reasons"`
}

// interest is one learned or declared preference for a tag or category,
// with the strongest evidence source retained for reason text.
type interest struct {
	weight float64
	source string // "saved", "viewed", or "boosted"
	peak   float64
}

func (in *interest) add(weight float64, source string) {
	in.weight += weight
	if weight > in.peak {
		in.peak = weight
		in.source = source
	}
}

// profile is the aggregate taste model built from signals and preferences.
type profile struct {
	tags       map[string]*interest
	categories map[string]*interest
}

// Recommend ranks unseen catalog items by affinity with the user's
// signals and explicit preferences. With no usable signal and no boosts
// it returns an empty slice: a fabricated recommendation is worse than
// none. Signals naming unknown items are skipped. Exclusion preferences
// are absolute and override any amount of positive evidence.
func Recommend(signals []Signal, prefs Preferences, items []catalog.Item, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	byID := make(map[string]catalog.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	prof := profile{
		tags:       make(map[string]*interest),
		categories: make(map[string]*interest),
	}
	seen := make(map[string]struct{})

	for _, sig := range signals {
		item, ok := byID[sig.ItemID]
		if !ok {
			continue
		}
		seen[item.ID] = struct{}{}
		w, src := sig.Kind.Weight(), sig.Kind.String()
		for _, tag := range item.Tags {
			addInterest(prof.tags, tag, w, src)
		}
		addInterest(prof.categories, item.Category, w, src)
	}

	for _, tag := range prefs.BoostTags {
		addInterest(prof.tags, tag, boostWeight, "boosted")
	}
	for _, cat := range prefs.BoostCategories {
		addInterest(prof.categories, cat, boostWeight, "boosted")
	}

	// Cold start: nothing learned, nothing declared.
	if len(prof.tags) == 0 && len(prof.categories) == 0 {
		return []Result{}, nil
	}

	excludeTags := lowerSet(prefs.ExcludeTags)
	excludeCategories := lowerSet(prefs.ExcludeCategories)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	trendCtx := trending.NewContext(items, now)

	results := make([]Result, 0, len(items))
	for _, item := range items {
		if _, wasSeen := seen[item.ID]; wasSeen {
			continue
		}
		if excludedByPrefs(item, excludeTags, excludeCategories) {
			continue
		}

		affinity, reasons := scoreCandidate(item, prof)
		if affinity <= 0 {
			continue
		}

		score := affinity + trendingTieWeight*trending.Score(item, trendCtx).Total
		results = append(results, Result{Item: item, Score: score, Reasons: reasons})
	}

	ranking.SortByScoreDesc(results, func(r Result) float64 { return r.Score })
	return ranking.Limit(results, opts.Limit), nil
}

func addInterest(m map[string]*interest, key string, weight float64, source string) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return
	}
	in, ok := m[key]
	if !ok {
		in = &interest{}
		m[key] = in
	}
	in.add(weight, source)
}

func lowerSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}

func excludedByPrefs(item catalog.Item, tags, categories map[string]struct{}) bool {
	if _, ok := categories[strings.ToLower(item.Category)]; ok {
		return true
	}
	for _, tag := range item.Tags {
		if _, ok := tags[strings.ToLower(tag)]; ok {
			return true
		}
	}
	return false
}

// contribution is one matched interest, kept for reason ranking.
type contribution struct {
	weight float64
	reason string
}

// scoreCandidate sums the candidate's overlap with the profile and builds
// the explanation strings, strongest evidence first.
func scoreCandidate(item catalog.Item, prof profile) (float64, []string) {
	var total float64
	var contribs []contribution

	if in, ok := prof.categories[strings.ToLower(item.Category)]; ok {
		total += in.weight
		contribs = append(contribs, contribution{
			weight: in.weight,
			reason: fmt.Sprintf("in the '%s' category you %s", strings.ToLower(item.Category), verb(in.source)),
		})
	}
	for _, tag := range item.Tags {
		if in, ok := prof.tags[strings.ToLower(tag)]; ok {
			total += in.weight
			contribs = append(contribs, contribution{
				weight: in.weight,
				reason: fmt.Sprintf("tagged '%s', which you %s", strings.ToLower(tag), verb(in.source)),
			})
		}
	}

	sort.SliceStable(contribs, func(i, j int) bool { return contribs[i].weight > contribs[j].weight })
	reasons := make([]string, 0, maxReasons)
	for _, c := range contribs {
		if len(reasons) == maxReasons {
			break
		}
		reasons = append(reasons, c.reason)
	}
	return total, reasons
}

func verb(source string) string {
	switch source {
	case "saved":
		return "saved prompts from"
	case "boosted":
		return "asked to see more of"
	default:
		return "viewed prompts from"
	}
}
