// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var similarCmd = &cobra.Command{
	Use:   "similar <restaurant-id>",
	Short: "Find restaurants similar to a catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimilar,
}

func runSimilar(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("restaurant id must be an integer: %q", args[0])
	}

	e, err := newEngine()
	if err != nil {
		return err
	}

	recs, err := e.Similar(id, flagTopN)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(recs)
	}
	printRecommendations(recs)
	return nil
}
