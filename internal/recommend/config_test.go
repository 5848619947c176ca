// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package recommend

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative rule weight", func(c *Config) { c.RuleWeights.Location = -0.1 }},
		{"min rule score above one", func(c *Config) { c.MinRuleScore = 1.5 }},
		{"similarity threshold negative", func(c *Config) { c.SimilarityThreshold = -0.01 }},
		{"zero candidate multiplier", func(c *Config) { c.CandidateMultiplier = 0 }},
		{"zero default top n", func(c *Config) { c.DefaultTopN = 0 }},
		{"max below default", func(c *Config) { c.MaxTopN = 2 }},
		{"boost below one", func(c *Config) { c.Boost.LocationExact = 0.9 }},
		{"penalty factor above one", func(c *Config) { c.Boost.UnmatchedLocationFactor = 1.5 }},
		{"penalty factor zero", func(c *Config) { c.Boost.UnmatchedLocationFactor = 0 }},
		{"jitter above epsilon", func(c *Config) { c.Ranking.JitterScale = 0.5 }},
		{"bad index ngram", func(c *Config) { c.Index.NgramMin = 3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.MinRuleScore = 0.9
	clone.Boost.Combo = 2.0
	if cfg.MinRuleScore == clone.MinRuleScore {
		t.Error("clone shares MinRuleScore with original")
	}
	if cfg.Boost.Combo == clone.Boost.Combo {
		t.Error("clone shares boost table with original")
	}
}
