// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category <term>",
	Short: "Browse restaurants by a category term (cuisine, location, feature)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCategory,
}

func runCategory(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}

	recs := e.ByCategory(strings.Join(args, " "), flagTopN)
	if flagJSON {
		return printJSON(recs)
	}
	printRecommendations(recs)
	return nil
}
