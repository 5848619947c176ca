// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Recommend restaurants for a free-text query",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	e, err := newEngine()
	if err != nil {
		return err
	}

	recs := e.Recommend(strings.Join(args, " "), flagTopN)
	if flagJSON {
		return printJSON(recs)
	}
	printRecommendations(recs)
	return nil
}
