// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

// Package entity classifies free-text query substrings into typed
// categories (location, cuisine, mood, price, feature) through keyword
// and synonym lookup over the normalized query.
package entity

import (
	"strings"

	"github.com/putuwidya/selera/internal/textproc"
)

// Result is the fixed-schema extraction output. Slices hold the terms
// in match order without duplicates; a synonym hit contributes both the
// canonical term and the literal matched form.
type Result struct {
	Locations []string
	Cuisines  []string
	Moods     []string
	Prices    []string
	Features  []string

	// Raw is the query as given; Normalized is the form matching ran on.
	Raw        string
	Normalized string
}

// Terms returns the matched terms for one category.
func (r *Result) Terms(cat Category) []string {
	switch cat {
	case CategoryLocation:
		return r.Locations
	case CategoryCuisine:
		return r.Cuisines
	case CategoryMood:
		return r.Moods
	case CategoryPrice:
		return r.Prices
	case CategoryFeature:
		return r.Features
	default:
		return nil
	}
}

// TermCount is the total number of matched terms across all categories.
func (r *Result) TermCount() int {
	return len(r.Locations) + len(r.Cuisines) + len(r.Moods) +
		len(r.Prices) + len(r.Features)
}

// Empty reports whether nothing was extracted.
func (r *Result) Empty() bool {
	return r.TermCount() == 0
}

// Extractor matches a static keyword/synonym table against queries.
// Safe for concurrent use; the tables are immutable after construction.
type Extractor struct {
	normalizer *textproc.Normalizer
	entries    map[Category][]keywordEntry
}

// NewExtractor builds an Extractor over the built-in vocabulary.
func NewExtractor() *Extractor {
	return &Extractor{
		// Stopwords and stemming stay off so multi-word keywords
		// ("matahari terbenam") survive normalization intact.
		normalizer: textproc.NewNormalizer(textproc.Options{}),
		entries:    buildEntries(),
	}
}

// Extract scans the query for keyword and synonym matches, longest
// keyword first, word-boundary aligned. A span consumed by a higher
// priority category is not re-attributed to a lower one. Extract never
// fails; an empty query yields an empty Result.
func (e *Extractor) Extract(query string) *Result {
	res := &Result{Raw: query}
	res.Normalized = e.normalizer.Normalize(query)
	if res.Normalized == "" {
		return res
	}

	// Pad with sentinels so boundary checks are uniform.
	text := " " + res.Normalized + " "
	consumed := make([]bool, len(text))

	for _, cat := range categoryOrder {
		var matched []string
		for _, entry := range e.entries[cat] {
			spans := findWordSpans(text, entry.text)
			for _, sp := range spans {
				if spanConsumed(consumed, sp.start, sp.end) {
					continue
				}
				markConsumed(consumed, sp.start, sp.end)
				matched = appendUnique(matched, entry.canonical)
				if entry.canonical != entry.text {
					matched = appendUnique(matched, entry.text)
				}
			}
		}
		setTerms(res, cat, matched)
	}
	return res
}

type span struct{ start, end int }

// findWordSpans returns every occurrence of needle in text that is
// bounded by spaces on both sides. text must carry space sentinels.
func findWordSpans(text, needle string) []span {
	var spans []span
	for from := 0; ; {
		i := strings.Index(text[from:], needle)
		if i < 0 {
			return spans
		}
		start := from + i
		end := start + len(needle)
		from = start + 1
		if text[start-1] != ' ' {
			continue
		}
		if end >= len(text) || text[end] != ' ' {
			continue
		}
		spans = append(spans, span{start: start, end: end})
	}
}

func spanConsumed(consumed []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if consumed[i] {
			return true
		}
	}
	return false
}

func markConsumed(consumed []bool, start, end int) {
	for i := start; i < end; i++ {
		consumed[i] = true
	}
}

func appendUnique(items []string, s string) []string {
	for _, it := range items {
		if it == s {
			return items
		}
	}
	return append(items, s)
}

func setTerms(r *Result, cat Category, terms []string) {
	switch cat {
	case CategoryLocation:
		r.Locations = terms
	case CategoryCuisine:
		r.Cuisines = terms
	case CategoryMood:
		r.Moods = terms
	case CategoryPrice:
		r.Prices = terms
	case CategoryFeature:
		r.Features = terms
	}
}
