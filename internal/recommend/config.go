// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package recommend

import (
	"fmt"

	"github.com/putuwidya/selera/internal/index"
)

// Config contains all configuration for the recommendation engine.
// Historical revisions of the scoring pipeline used materially different
// thresholds and weight tables; every such value is named here instead
// of being baked into the code.
type Config struct {
	// RuleWeights defines the per-category contribution to the
	// rule-based retrieval score.
	RuleWeights RuleWeights `json:"rule_weights"`

	// MinRuleScore excludes rule-pool candidates below this weighted
	// overlap score.
	MinRuleScore float64 `json:"min_rule_score"`

	// SimilarityThreshold excludes vector-pool candidates below this
	// cosine similarity.
	SimilarityThreshold float64 `json:"similarity_threshold"`

	// SimilarThreshold is the cosine floor for Similar lookups.
	SimilarThreshold float64 `json:"similar_threshold"`

	// CandidateMultiplier caps each retrieval pool at
	// topN * CandidateMultiplier candidates before ranking.
	CandidateMultiplier int `json:"candidate_multiplier"`

	// DefaultTopN is the result count when the caller passes topN <= 0.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN caps the per-call result count.
	MaxTopN int `json:"max_top_n"`

	// Boost holds the multiplicative boost pipeline parameters.
	Boost BoostConfig `json:"boost"`

	// CategoryWeights holds the per-field weights of the category
	// browse path, which is independent of the TF-IDF index.
	CategoryWeights CategoryWeights `json:"category_weights"`

	// Ranking holds tie-breaking and diversity parameters.
	Ranking RankingConfig `json:"ranking"`

	// Index configures the TF-IDF vectorizer.
	Index index.Config `json:"index"`

	// Seed is the random seed for deterministic tie-break jitter.
	// If zero, a fixed default seed is used.
	Seed int64 `json:"seed"`
}

// RuleWeights defines the relative contribution of each entity category
// to the rule-based retrieval score. Location dominates, then cuisine,
// then free-text description, with preferences and features trailing.
type RuleWeights struct {
	Location   float64 `json:"location"`
	Cuisine    float64 `json:"cuisine"`
	About      float64 `json:"about"`
	Preference float64 `json:"preference"`
	Feature    float64 `json:"feature"`
}

// BoostConfig parametrizes the multiplicative boost rules. Every
// multiplier is >= 1.0 except UnmatchedLocationFactor, which applies
// only when PenalizeUnmatchedLocation is set.
type BoostConfig struct {
	// LocationExact applies when a requested location matches the
	// restaurant's location or address verbatim; LocationFuzzy when it
	// matches as an abbreviation ("gili t" for "gili trawangan").
	LocationExact float64 `json:"location_exact"`
	LocationFuzzy float64 `json:"location_fuzzy"`

	// CuisineDirect applies to a match in the restaurant's name or
	// cuisine list; CuisineSynonym to a synonym-table match.
	CuisineDirect  float64 `json:"cuisine_direct"`
	CuisineSynonym float64 `json:"cuisine_synonym"`

	// PreferenceDirect and PreferenceSynonym likewise for mood terms
	// against the description and preference fields.
	PreferenceDirect  float64 `json:"preference_direct"`
	PreferenceSynonym float64 `json:"preference_synonym"`

	// Price applies when a price cue agrees with the price tier.
	Price float64 `json:"price"`

	// Feature applies per amenity match; the weakest tier.
	Feature float64 `json:"feature"`

	// Combo applies once per matched tier beyond the first, rewarding
	// specific queries.
	Combo float64 `json:"combo"`

	// Quality multipliers by rating threshold. Strictly smaller than
	// any entity-match bonus so rating only breaks relevance ties.
	QualityHigh float64 `json:"quality_high"` // rating >= 4.8
	QualityMid  float64 `json:"quality_mid"`  // rating >= 4.5
	QualityBase float64 `json:"quality_base"` // rating >= 4.0

	// PenalizeUnmatchedLocation is a policy flag: when set, candidates
	// matching none of the explicitly requested locations are scaled
	// by UnmatchedLocationFactor instead of staying neutral.
	PenalizeUnmatchedLocation bool    `json:"penalize_unmatched_location"`
	UnmatchedLocationFactor   float64 `json:"unmatched_location_factor"`
}

// CategoryWeights holds the per-field weights used by ByCategory.
type CategoryWeights struct {
	Cuisine    float64 `json:"cuisine"`
	Location   float64 `json:"location"`
	About      float64 `json:"about"`
	Preference float64 `json:"preference"`
	Feature    float64 `json:"feature"`
}

// RankingConfig holds tie-breaking and diversity parameters.
type RankingConfig struct {
	// TieEpsilon groups near-tied scores for the diversity pass.
	TieEpsilon float64 `json:"tie_epsilon"`

	// JitterScale bounds the magnitude of the tie-break jitter. The
	// jitter orders exact ties only and never appears in the reported
	// score.
	JitterScale float64 `json:"jitter_scale"`

	// Diversify enables the near-tie cuisine diversity pass.
	Diversify bool `json:"diversify"`
}

// DefaultConfig returns the production engine configuration.
func DefaultConfig() *Config {
	return &Config{
		RuleWeights: RuleWeights{
			Location:   0.30,
			Cuisine:    0.25,
			About:      0.20,
			Preference: 0.15,
			Feature:    0.10,
		},
		MinRuleScore:        0.30,
		SimilarityThreshold: 0.10,
		SimilarThreshold:    0.10,
		CandidateMultiplier: 2,
		DefaultTopN:         5,
		MaxTopN:             20,
		Boost: BoostConfig{
			LocationExact:             1.50,
			LocationFuzzy:             1.35,
			CuisineDirect:             1.30,
			CuisineSynonym:            1.15,
			PreferenceDirect:          1.20,
			PreferenceSynonym:         1.10,
			Price:                     1.10,
			Feature:                   1.08,
			Combo:                     1.10,
			QualityHigh:               1.05,
			QualityMid:                1.03,
			QualityBase:               1.01,
			PenalizeUnmatchedLocation: false,
			UnmatchedLocationFactor:   0.5,
		},
		CategoryWeights: CategoryWeights{
			Cuisine:    0.8,
			Location:   0.6,
			About:      0.5,
			Preference: 0.4,
			Feature:    0.3,
		},
		Ranking: RankingConfig{
			TieEpsilon:  0.01,
			JitterScale: 1e-9,
			Diversify:   true,
		},
		Index: index.DefaultConfig(),
		Seed:  0,
	}
}

// Validate checks the configuration for invalid combinations.
func (c *Config) Validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"rule_weights.location", c.RuleWeights.Location},
		{"rule_weights.cuisine", c.RuleWeights.Cuisine},
		{"rule_weights.about", c.RuleWeights.About},
		{"rule_weights.preference", c.RuleWeights.Preference},
		{"rule_weights.feature", c.RuleWeights.Feature},
	}
	for _, w := range weights {
		if w.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %f", w.name, w.value)
		}
	}

	if c.MinRuleScore < 0 || c.MinRuleScore > 1 {
		return fmt.Errorf("min_rule_score must be in [0, 1], got %f", c.MinRuleScore)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold must be in [0, 1], got %f", c.SimilarityThreshold)
	}
	if c.SimilarThreshold < 0 || c.SimilarThreshold > 1 {
		return fmt.Errorf("similar_threshold must be in [0, 1], got %f", c.SimilarThreshold)
	}
	if c.CandidateMultiplier < 1 {
		return fmt.Errorf("candidate_multiplier must be positive, got %d", c.CandidateMultiplier)
	}
	if c.DefaultTopN < 1 {
		return fmt.Errorf("default_top_n must be positive, got %d", c.DefaultTopN)
	}
	if c.MaxTopN < c.DefaultTopN {
		return fmt.Errorf("max_top_n %d must be >= default_top_n %d", c.MaxTopN, c.DefaultTopN)
	}

	boosts := []struct {
		name  string
		value float64
	}{
		{"boost.location_exact", c.Boost.LocationExact},
		{"boost.location_fuzzy", c.Boost.LocationFuzzy},
		{"boost.cuisine_direct", c.Boost.CuisineDirect},
		{"boost.cuisine_synonym", c.Boost.CuisineSynonym},
		{"boost.preference_direct", c.Boost.PreferenceDirect},
		{"boost.preference_synonym", c.Boost.PreferenceSynonym},
		{"boost.price", c.Boost.Price},
		{"boost.feature", c.Boost.Feature},
		{"boost.combo", c.Boost.Combo},
		{"boost.quality_high", c.Boost.QualityHigh},
		{"boost.quality_mid", c.Boost.QualityMid},
		{"boost.quality_base", c.Boost.QualityBase},
	}
	for _, b := range boosts {
		if b.value < 1.0 {
			return fmt.Errorf("%s must be >= 1.0, got %f", b.name, b.value)
		}
	}
	if c.Boost.UnmatchedLocationFactor <= 0 || c.Boost.UnmatchedLocationFactor > 1 {
		return fmt.Errorf("boost.unmatched_location_factor must be in (0, 1], got %f",
			c.Boost.UnmatchedLocationFactor)
	}

	if c.Ranking.TieEpsilon < 0 {
		return fmt.Errorf("ranking.tie_epsilon must be non-negative, got %f", c.Ranking.TieEpsilon)
	}
	if c.Ranking.JitterScale < 0 {
		return fmt.Errorf("ranking.jitter_scale must be non-negative, got %f", c.Ranking.JitterScale)
	}
	if c.Ranking.TieEpsilon > 0 && c.Ranking.JitterScale >= c.Ranking.TieEpsilon {
		return fmt.Errorf("ranking.jitter_scale %g must stay below tie_epsilon %g",
			c.Ranking.JitterScale, c.Ranking.TieEpsilon)
	}

	if err := c.Index.Validate(); err != nil {
		return fmt.Errorf("index: %w", err)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types.
	clone := *c
	return &clone
}
