// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package recommend

import (
	"strings"

	"github.com/putuwidya/selera/internal/catalog"
	"github.com/putuwidya/selera/internal/textproc"
)

// document is the normalized view of one restaurant, computed once at
// engine construction so per-query matching never re-normalizes fields.
type document struct {
	r *catalog.Restaurant

	name     string
	about    string
	address  string
	location string

	cuisines    []string
	features    []string
	preferences []string

	// text is the concatenated document fed to the TF-IDF index.
	text string
}

func newDocument(n *textproc.Normalizer, r *catalog.Restaurant) document {
	d := document{
		r:           r,
		name:        n.Normalize(r.Name),
		about:       n.Normalize(r.About),
		address:     n.Normalize(r.Address),
		location:    n.Normalize(r.Location),
		cuisines:    normalizeList(n, r.Cuisines),
		features:    normalizeList(n, r.Features),
		preferences: normalizeList(n, r.Preferences),
	}

	parts := []string{d.name, d.about, d.address, d.location}
	parts = append(parts, d.cuisines...)
	parts = append(parts, d.preferences...)
	parts = append(parts, d.features...)
	d.text = strings.Join(nonEmpty(parts), " ")
	return d
}

func normalizeList(n *textproc.Normalizer, items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if norm := n.Normalize(it); norm != "" {
			out = append(out, norm)
		}
	}
	return out
}

func nonEmpty(items []string) []string {
	out := items[:0]
	for _, it := range items {
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}

// containsWord reports whether text contains term bounded by word
// boundaries. Both are expected in normalized form.
func containsWord(text, term string) bool {
	if text == "" || term == "" {
		return false
	}
	padded := " " + text + " "
	return strings.Contains(padded, " "+term+" ")
}

// anyForm reports whether any surface form appears in text.
func anyForm(text string, forms []string) bool {
	for _, f := range forms {
		if containsWord(text, f) {
			return true
		}
	}
	return false
}

// listHasForm reports whether any list item contains any surface form.
func listHasForm(items []string, forms []string) bool {
	for _, it := range items {
		if anyForm(it, forms) {
			return true
		}
	}
	return false
}
