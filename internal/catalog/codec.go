// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package catalog

import (
	"strings"

	json "github.com/goccy/go-json"
)

// EncodeList serializes a string list into its canonical JSON array form.
// EncodeList(nil) yields "[]".
func EncodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		// Strings always marshal; unreachable in practice.
		return "[]"
	}
	return string(b)
}

// DecodeList parses a serialized string list. It accepts the canonical JSON
// array form plus a comma-delimited plain string ("wifi, outdoor seating")
// as produced by older exports. Malformed input never raises an error; it
// decodes to the empty list.
func DecodeList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return []string{}
	}

	if strings.HasPrefix(s, "[") {
		var items []string
		if err := json.Unmarshal([]byte(s), &items); err != nil {
			return []string{}
		}
		return cleanList(items)
	}

	return cleanList(strings.Split(s, ","))
}

// cleanList trims whitespace and stray quotes and drops empty elements.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		it = strings.Trim(it, `'"`)
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}
