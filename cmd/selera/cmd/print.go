// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package cmd

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/putuwidya/selera/internal/recommend"
)

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRecommendations writes a human-readable result list.
func printRecommendations(recs []recommend.Recommendation) {
	if len(recs) == 0 {
		fmt.Println("no results")
		return
	}
	for i, rec := range recs {
		r := rec.Restaurant
		fmt.Printf("%2d. %s  (%.3f)\n", i+1, r.Name, rec.Score)
		fmt.Printf("    %s | %s | rating %.1f (%d reviews)\n",
			r.Location, r.PriceRange, r.Rating, r.ReviewCount)
		if len(r.Cuisines) > 0 {
			fmt.Printf("    cuisine: %s\n", strings.Join(r.Cuisines, ", "))
		}
		if len(rec.MatchedOn) > 0 {
			fmt.Printf("    matched: %s\n", strings.Join(rec.MatchedOn, "; "))
		}
		if rec.Explanation != "" {
			fmt.Printf("    note: %s\n", rec.Explanation)
		}
	}
}
