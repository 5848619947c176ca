// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

// Package config loads application configuration from layered sources:
// built-in defaults, an optional YAML file, and environment variables,
// in ascending order of precedence.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is the top-level application configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog" validate:"required"`
	Logging   LoggingConfig   `koanf:"logging" validate:"required"`
	Recommend RecommendConfig `koanf:"recommend" validate:"required"`
}

// CatalogConfig configures the restaurant catalog source.
type CatalogConfig struct {
	// Path to the JSON catalog file.
	Path string `koanf:"path" validate:"required"`
}

// LoggingConfig configures the zerolog global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig holds the application-facing engine knobs. The full
// engine configuration lives in internal/recommend; this subset covers
// what operators actually tune.
type RecommendConfig struct {
	// DefaultTopN is the result count when a query does not specify one.
	DefaultTopN int `koanf:"default_top_n" validate:"gte=1"`

	// MaxTopN caps the per-query result count.
	MaxTopN int `koanf:"max_top_n" validate:"gte=1,gtefield=DefaultTopN"`

	// MinRuleScore is the weighted-overlap threshold for the rule pool.
	MinRuleScore float64 `koanf:"min_rule_score" validate:"gte=0,lte=1"`

	// SimilarityThreshold is the cosine threshold for the similarity pool.
	SimilarityThreshold float64 `koanf:"similarity_threshold" validate:"gte=0,lte=1"`

	// RandomSeed seeds the tie-break jitter for reproducible runs.
	// Zero selects the built-in default seed.
	RandomSeed int64 `koanf:"random_seed"`

	// Diversity enables the near-tie cuisine reordering pass.
	Diversity bool `koanf:"diversity"`

	// PenalizeUnmatchedLocation halves the score of candidates whose
	// location matches none of the requested ones instead of leaving
	// them un-boosted.
	PenalizeUnmatchedLocation bool `koanf:"penalize_unmatched_location"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration for invalid combinations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
