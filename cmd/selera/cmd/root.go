// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

// Package cmd implements the selera CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/putuwidya/selera/internal/config"
	"github.com/putuwidya/selera/internal/logging"
	"github.com/putuwidya/selera/internal/recommend"
)

var (
	flagConfig  string
	flagCatalog string
	flagTopN    int
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "selera",
	Short: "Selera — restaurant recommendation engine",
	Long: "Free-text restaurant recommendations over a JSON catalog:\n" +
		"entity extraction, TF-IDF similarity, and rule-based boosting.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (overrides SELERA_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "catalog JSON path (overrides config)")
	rootCmd.PersistentFlags().IntVarP(&flagTopN, "top", "n", 0, "number of results (0 = configured default)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print raw JSON instead of formatted output")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(statsCmd)
}

// newEngine loads configuration, initializes logging, and constructs
// the engine over the configured catalog.
func newEngine() (*recommend.Engine, error) {
	if flagConfig != "" {
		if err := os.Setenv(config.ConfigPathEnvVar, flagConfig); err != nil {
			return nil, fmt.Errorf("set config path: %w", err)
		}
	}

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	catalogPath := cfg.Catalog.Path
	if flagCatalog != "" {
		catalogPath = flagCatalog
	}

	return recommend.NewFromFile(engineConfig(cfg), logging.Logger(), catalogPath)
}

// engineConfig maps the operator-facing configuration onto the full
// engine configuration, keeping the scoring tables at their defaults.
func engineConfig(cfg *config.Config) *recommend.Config {
	ec := recommend.DefaultConfig()
	ec.DefaultTopN = cfg.Recommend.DefaultTopN
	ec.MaxTopN = cfg.Recommend.MaxTopN
	ec.MinRuleScore = cfg.Recommend.MinRuleScore
	ec.SimilarityThreshold = cfg.Recommend.SimilarityThreshold
	ec.Seed = cfg.Recommend.RandomSeed
	ec.Ranking.Diversify = cfg.Recommend.Diversity
	ec.Boost.PenalizeUnmatchedLocation = cfg.Recommend.PenalizeUnmatchedLocation
	return ec
}
