// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/putuwidya/selera/internal/entity"
)

// BoostRule is one named multiplicative adjustment. Apply returns a
// multiplier (1.0 = neutral) and, when the rule matched, a
// human-readable label for the result's MatchedOn list.
type BoostRule struct {
	Name  string
	Apply func(ents *entity.Result, doc *document) (float64, string)
}

// boostRules builds the ordered tier rules: location, cuisine,
// preference, price, feature. Combo and quality bonuses are applied by
// the pipeline after the tiers; see applyBoost.
func boostRules(cfg *BoostConfig) []BoostRule {
	return []BoostRule{
		{Name: "location", Apply: locationRule(cfg)},
		{Name: "cuisine", Apply: cuisineRule(cfg)},
		{Name: "preference", Apply: preferenceRule(cfg)},
		{Name: "price", Apply: priceRule(cfg)},
		{Name: "feature", Apply: featureRule(cfg)},
	}
}

// locationRule matches requested locations against the restaurant's
// location and address. Exact matches beat fuzzy (abbreviation) ones.
// With the penalty policy enabled, a requested-but-unmatched location
// scales the candidate down instead of staying neutral.
func locationRule(cfg *BoostConfig) func(*entity.Result, *document) (float64, string) {
	return func(ents *entity.Result, doc *document) (float64, string) {
		if len(ents.Locations) == 0 {
			return 1.0, ""
		}
		best := 1.0
		var matched string
		for _, term := range ents.Locations {
			if containsWord(doc.location, term) || containsWord(doc.address, term) {
				if cfg.LocationExact > best {
					best = cfg.LocationExact
					matched = term
				}
				continue
			}
			if fuzzyLocationMatch(doc.location, term) || fuzzyLocationMatch(doc.address, term) {
				if cfg.LocationFuzzy > best {
					best = cfg.LocationFuzzy
					matched = term
				}
			}
		}
		if best > 1.0 {
			return best, "location: " + matched
		}
		if cfg.PenalizeUnmatchedLocation {
			return cfg.UnmatchedLocationFactor, ""
		}
		return 1.0, ""
	}
}

// fuzzyLocationMatch accepts abbreviation-style matches: the query term
// and a word of the field share a prefix relationship spanning at least
// one full leading token ("gili t" against "gili trawangan").
func fuzzyLocationMatch(field, term string) bool {
	if field == "" || term == "" {
		return false
	}
	termTokens := strings.Fields(term)
	fieldTokens := strings.Fields(field)
	if len(termTokens) == 0 || len(fieldTokens) == 0 {
		return false
	}
	for i := 0; i <= len(fieldTokens)-len(termTokens); i++ {
		if matchAbbrev(fieldTokens, termTokens, i) {
			return true
		}
	}
	return false
}

// matchAbbrev aligns term tokens against field tokens starting at
// offset: all but the last must match exactly, the last may be a prefix.
func matchAbbrev(field, term []string, offset int) bool {
	if offset+len(term) > len(field) {
		return false
	}
	for j := 0; j < len(term)-1; j++ {
		if field[offset+j] != term[j] {
			return false
		}
	}
	last := term[len(term)-1]
	return strings.HasPrefix(field[offset+len(term)-1], last)
}

// cuisineRule rewards cuisine matches; a hit in the restaurant's name
// or cuisine list counts as direct, a synonym-expanded hit counts less.
func cuisineRule(cfg *BoostConfig) func(*entity.Result, *document) (float64, string) {
	return func(ents *entity.Result, doc *document) (float64, string) {
		best := 1.0
		var matched string
		for _, term := range ents.Cuisines {
			if containsWord(doc.name, term) || listHasForm(doc.cuisines, []string{term}) {
				if cfg.CuisineDirect > best {
					best = cfg.CuisineDirect
					matched = term
				}
				continue
			}
			forms := entity.Expand(entity.CategoryCuisine, term)
			if anyForm(doc.name, forms) || listHasForm(doc.cuisines, forms) || anyForm(doc.about, forms) {
				if cfg.CuisineSynonym > best {
					best = cfg.CuisineSynonym
					matched = term
				}
			}
		}
		if best > 1.0 {
			return best, "cuisine: " + matched
		}
		return 1.0, ""
	}
}

// preferenceRule matches mood terms against the description and
// preference fields, direct or via synonym.
func preferenceRule(cfg *BoostConfig) func(*entity.Result, *document) (float64, string) {
	return func(ents *entity.Result, doc *document) (float64, string) {
		best := 1.0
		var matched string
		for _, term := range ents.Moods {
			if containsWord(doc.about, term) || listHasForm(doc.preferences, []string{term}) {
				if cfg.PreferenceDirect > best {
					best = cfg.PreferenceDirect
					matched = term
				}
				continue
			}
			forms := entity.Expand(entity.CategoryMood, term)
			if anyForm(doc.about, forms) || listHasForm(doc.preferences, forms) {
				if cfg.PreferenceSynonym > best {
					best = cfg.PreferenceSynonym
					matched = term
				}
			}
		}
		if best > 1.0 {
			return best, "preference: " + matched
		}
		return 1.0, ""
	}
}

// priceRule rewards agreement between a price cue and the price tier.
func priceRule(cfg *BoostConfig) func(*entity.Result, *document) (float64, string) {
	return func(ents *entity.Result, doc *document) (float64, string) {
		for _, term := range ents.Prices {
			if priceMatches(term, doc.r.PriceRange) {
				return cfg.Price, "price: " + term
			}
		}
		return 1.0, ""
	}
}

// priceMatches maps the canonical cheap/expensive cues onto dollar-sign
// tiers: murah accepts up to two signs, mahal requires at least three.
func priceMatches(term, priceRange string) bool {
	signs := strings.Count(priceRange, "$")
	if signs == 0 {
		return false
	}
	switch term {
	case "murah":
		return signs <= 2
	case "mahal":
		return strings.Count(lastTier(priceRange), "$") >= 3
	default:
		return false
	}
}

// lastTier returns the upper bound of a range like "$$-$$$".
func lastTier(priceRange string) string {
	if i := strings.LastIndex(priceRange, "-"); i >= 0 {
		return priceRange[i+1:]
	}
	return priceRange
}

// featureRule rewards amenity matches; the weakest tier.
func featureRule(cfg *BoostConfig) func(*entity.Result, *document) (float64, string) {
	return func(ents *entity.Result, doc *document) (float64, string) {
		for _, term := range ents.Features {
			forms := entity.Expand(entity.CategoryFeature, term)
			if listHasForm(doc.features, forms) || anyForm(doc.about, forms) {
				return cfg.Feature, "feature: " + term
			}
		}
		return 1.0, ""
	}
}

// comboMultiplier returns the specificity bonus: Combo applied once per
// matched tier beyond the first.
func comboMultiplier(cfg *BoostConfig, matchedTiers int) float64 {
	if matchedTiers < 2 {
		return 1.0
	}
	return math.Pow(cfg.Combo, float64(matchedTiers-1))
}

// qualityMultiplier returns the rating bonus. It is strictly smaller
// than any entity-match bonus so rating never overrides relevance.
func qualityMultiplier(cfg *BoostConfig, rating float64) float64 {
	switch {
	case rating >= 4.8:
		return cfg.QualityHigh
	case rating >= 4.5:
		return cfg.QualityMid
	case rating >= 4.0:
		return cfg.QualityBase
	default:
		return 1.0
	}
}

// applyBoost runs the full pipeline over a base score: tier rules in
// order, then the combo bonus, then the quality bonus, with the result
// clipped to [0, 1].
func applyBoost(rules []BoostRule, cfg *BoostConfig, base float64, ents *entity.Result, doc *document) (float64, []string) {
	product := 1.0
	matchedTiers := 0
	var labels []string

	for _, rule := range rules {
		mult, label := rule.Apply(ents, doc)
		if mult == 1.0 {
			continue
		}
		product *= mult
		if mult > 1.0 {
			matchedTiers++
			if label != "" {
				labels = append(labels, label)
			}
		}
	}

	product *= comboMultiplier(cfg, matchedTiers)
	product *= qualityMultiplier(cfg, doc.r.Rating)

	return clip(base*product), labels
}

// describeRules is used in debug logs to show the active pipeline.
func describeRules(rules []BoostRule) string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return fmt.Sprintf("[%s]", strings.Join(names, " "))
}
