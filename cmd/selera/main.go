// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

// Package main is the entry point for the Selera command-line interface.
//
// Selera answers free-text restaurant queries ("seafood murah di gili
// trawangan") over a JSON catalog. The engine is built once per
// invocation: catalog load, entity tables, and the TF-IDF index are all
// constructed up front, then the requested operation runs against the
// immutable engine.
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (SELERA_*)
//   - Config file (selera.yaml, or SELERA_CONFIG)
//   - Built-in defaults
//
// Example usage:
//
//	selera query "pizza romantis di kuta"
//	selera similar 42
//	selera category seafood --top 10
//	selera stats --json
package main

import (
	"os"

	"github.com/putuwidya/selera/cmd/selera/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
