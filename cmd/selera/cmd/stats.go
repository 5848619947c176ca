// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog and index statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}

	s := e.Statistics()
	if flagJSON {
		return printJSON(s)
	}

	fmt.Printf("restaurants:     %d\n", s.TotalRestaurants)
	fmt.Printf("average rating:  %.2f\n", s.AverageRating)
	fmt.Printf("cuisines:        %d\n", s.UniqueCuisines)
	fmt.Printf("features:        %d\n", s.UniqueFeatures)
	fmt.Printf("locations:       %d\n", s.UniqueLocations)
	fmt.Printf("index terms:     %d\n", s.VectorDimensionality)
	return nil
}
