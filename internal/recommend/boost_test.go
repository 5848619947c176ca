// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package recommend

import (
	"testing"

	"github.com/putuwidya/selera/internal/catalog"
	"github.com/putuwidya/selera/internal/entity"
	"github.com/putuwidya/selera/internal/textproc"
)

func testDoc(r catalog.Restaurant) *document {
	n := textproc.NewNormalizer(textproc.Options{RemoveStopwords: true})
	d := newDocument(n, &r)
	return &d
}

var pizzeria = catalog.Restaurant{
	ID: 1, Name: "Pizzeria Roma", Rating: 4.5, ReviewCount: 120,
	About:       "wood fired pizza and pasta, romantic candle light dinner",
	Address:     "Jl. Raya Kuta", Location: "Kuta", PriceRange: "$$",
	Cuisines:    []string{"Italian", "Pizza"},
	Features:    []string{"wifi", "outdoor seating"},
	Preferences: []string{"romantis"},
}

func TestLocationRuleExact(t *testing.T) {
	cfg := &DefaultConfig().Boost
	rule := locationRule(cfg)
	doc := testDoc(pizzeria)

	mult, label := rule(&entity.Result{Locations: []string{"kuta"}}, doc)
	if mult != cfg.LocationExact {
		t.Errorf("mult = %v, want exact %v", mult, cfg.LocationExact)
	}
	if label != "location: kuta" {
		t.Errorf("label = %q", label)
	}
}

func TestLocationRuleFuzzyAbbreviation(t *testing.T) {
	cfg := &DefaultConfig().Boost
	rule := locationRule(cfg)
	doc := testDoc(catalog.Restaurant{
		ID: 4, Name: "Gili Sunset Bar", Rating: 4.2,
		Location: "Gili Trawangan",
	})

	// "gili traw" is a prefix abbreviation, not an exact token match.
	mult, _ := rule(&entity.Result{Locations: []string{"gili traw"}}, doc)
	if mult != cfg.LocationFuzzy {
		t.Errorf("mult = %v, want fuzzy %v", mult, cfg.LocationFuzzy)
	}
}

func TestLocationRuleNeutralByDefault(t *testing.T) {
	cfg := &DefaultConfig().Boost
	rule := locationRule(cfg)
	doc := testDoc(pizzeria)

	mult, label := rule(&entity.Result{Locations: []string{"senggigi"}}, doc)
	if mult != 1.0 || label != "" {
		t.Errorf("unmatched location = (%v, %q), want neutral", mult, label)
	}
}

func TestLocationRulePenaltyPolicy(t *testing.T) {
	cfg := DefaultConfig().Boost
	cfg.PenalizeUnmatchedLocation = true
	rule := locationRule(&cfg)
	doc := testDoc(pizzeria)

	mult, _ := rule(&entity.Result{Locations: []string{"senggigi"}}, doc)
	if mult != cfg.UnmatchedLocationFactor {
		t.Errorf("mult = %v, want penalty %v", mult, cfg.UnmatchedLocationFactor)
	}

	// No requested location stays neutral even with the policy on.
	mult, _ = rule(&entity.Result{}, doc)
	if mult != 1.0 {
		t.Errorf("mult without location request = %v, want 1.0", mult)
	}
}

func TestCuisineRuleDirectVsSynonym(t *testing.T) {
	cfg := &DefaultConfig().Boost
	rule := cuisineRule(cfg)
	doc := testDoc(pizzeria)

	direct, label := rule(&entity.Result{Cuisines: []string{"pizza"}}, doc)
	if direct != cfg.CuisineDirect {
		t.Errorf("direct mult = %v, want %v", direct, cfg.CuisineDirect)
	}
	if label != "cuisine: pizza" {
		t.Errorf("label = %q", label)
	}

	// "pasta" is not in the cuisine list or name, but the about text
	// mentions it; only the synonym-expanded path reaches it.
	syn, _ := rule(&entity.Result{Cuisines: []string{"pasta"}}, doc)
	if syn != cfg.CuisineSynonym {
		t.Errorf("synonym mult = %v, want %v", syn, cfg.CuisineSynonym)
	}

	none, _ := rule(&entity.Result{Cuisines: []string{"sushi"}}, doc)
	if none != 1.0 {
		t.Errorf("unmatched mult = %v, want 1.0", none)
	}
}

func TestPreferenceRule(t *testing.T) {
	cfg := &DefaultConfig().Boost
	rule := preferenceRule(cfg)
	doc := testDoc(pizzeria)

	direct, _ := rule(&entity.Result{Moods: []string{"romantis"}}, doc)
	if direct != cfg.PreferenceDirect {
		t.Errorf("direct mult = %v, want %v", direct, cfg.PreferenceDirect)
	}

	// Nothing in the pizzeria speaks to a laid-back mood.
	none, _ := rule(&entity.Result{Moods: []string{"santai"}}, doc)
	if none != 1.0 {
		t.Errorf("unmatched mood mult = %v, want 1.0", none)
	}
}

func TestPriceRule(t *testing.T) {
	cfg := &DefaultConfig().Boost
	rule := priceRule(cfg)

	cheap := testDoc(pizzeria) // "$$"
	mult, _ := rule(&entity.Result{Prices: []string{"murah"}}, cheap)
	if mult != cfg.Price {
		t.Errorf("murah vs $$ = %v, want %v", mult, cfg.Price)
	}

	mult, _ = rule(&entity.Result{Prices: []string{"mahal"}}, cheap)
	if mult != 1.0 {
		t.Errorf("mahal vs $$ = %v, want neutral", mult)
	}

	fancy := testDoc(catalog.Restaurant{ID: 9, Name: "X", PriceRange: "$$-$$$"})
	mult, _ = rule(&entity.Result{Prices: []string{"mahal"}}, fancy)
	if mult != cfg.Price {
		t.Errorf("mahal vs $$-$$$ = %v, want %v", mult, cfg.Price)
	}
}

func TestFeatureRule(t *testing.T) {
	cfg := &DefaultConfig().Boost
	rule := featureRule(cfg)
	doc := testDoc(pizzeria)

	mult, label := rule(&entity.Result{Features: []string{"wifi"}}, doc)
	if mult != cfg.Feature || label != "feature: wifi" {
		t.Errorf("wifi = (%v, %q)", mult, label)
	}

	mult, _ = rule(&entity.Result{Features: []string{"buffet"}}, doc)
	if mult != 1.0 {
		t.Errorf("buffet = %v, want neutral", mult)
	}
}

func TestComboMultiplier(t *testing.T) {
	cfg := &DefaultConfig().Boost
	if got := comboMultiplier(cfg, 0); got != 1.0 {
		t.Errorf("combo(0) = %v", got)
	}
	if got := comboMultiplier(cfg, 1); got != 1.0 {
		t.Errorf("combo(1) = %v", got)
	}
	if got := comboMultiplier(cfg, 2); got != cfg.Combo {
		t.Errorf("combo(2) = %v, want %v", got, cfg.Combo)
	}
	if got := comboMultiplier(cfg, 3); got != cfg.Combo*cfg.Combo {
		t.Errorf("combo(3) = %v", got)
	}
}

func TestQualityMultiplier(t *testing.T) {
	cfg := &DefaultConfig().Boost
	cases := []struct {
		rating float64
		want   float64
	}{
		{4.9, cfg.QualityHigh},
		{4.8, cfg.QualityHigh},
		{4.6, cfg.QualityMid},
		{4.2, cfg.QualityBase},
		{3.9, 1.0},
	}
	for _, c := range cases {
		if got := qualityMultiplier(cfg, c.rating); got != c.want {
			t.Errorf("quality(%v) = %v, want %v", c.rating, got, c.want)
		}
	}
}

func TestQualityBonusBelowEntityBonuses(t *testing.T) {
	cfg := &DefaultConfig().Boost
	entityBonuses := []float64{
		cfg.LocationExact, cfg.LocationFuzzy, cfg.CuisineDirect,
		cfg.CuisineSynonym, cfg.PreferenceDirect, cfg.PreferenceSynonym,
		cfg.Price, cfg.Feature,
	}
	for _, b := range entityBonuses {
		if cfg.QualityHigh >= b {
			t.Errorf("quality bonus %v not strictly below entity bonus %v",
				cfg.QualityHigh, b)
		}
	}
}

func TestApplyBoostClipsToOne(t *testing.T) {
	cfg := DefaultConfig()
	rules := boostRules(&cfg.Boost)
	doc := testDoc(pizzeria)
	ents := &entity.Result{
		Locations: []string{"kuta"},
		Cuisines:  []string{"pizza"},
		Moods:     []string{"romantis"},
		Prices:    []string{"murah"},
		Features:  []string{"wifi"},
	}

	score, labels := applyBoost(rules, &cfg.Boost, 0.9, ents, doc)
	if score != 1.0 {
		t.Errorf("score = %v, want clipped 1.0", score)
	}
	if len(labels) != 5 {
		t.Errorf("labels = %v, want all five tiers", labels)
	}
}

func TestApplyBoostNeutralWithoutMatches(t *testing.T) {
	cfg := DefaultConfig()
	rules := boostRules(&cfg.Boost)
	doc := testDoc(catalog.Restaurant{ID: 7, Name: "Plain Diner", Rating: 3.5})

	score, labels := applyBoost(rules, &cfg.Boost, 0.4, &entity.Result{}, doc)
	if score != 0.4 {
		t.Errorf("score = %v, want unchanged base", score)
	}
	if len(labels) != 0 {
		t.Errorf("labels = %v, want none", labels)
	}
}

func TestFuzzyLocationMatch(t *testing.T) {
	cases := []struct {
		field, term string
		want        bool
	}{
		{"gili trawangan", "gili traw", true},
		{"gili trawangan", "gili trawangan", true},
		{"gili trawangan", "gili meno", false},
		{"kuta", "kut", true},
		{"kuta", "senggigi", false},
		{"", "kuta", false},
	}
	for _, c := range cases {
		if got := fuzzyLocationMatch(c.field, c.term); got != c.want {
			t.Errorf("fuzzyLocationMatch(%q, %q) = %v, want %v",
				c.field, c.term, got, c.want)
		}
	}
}
