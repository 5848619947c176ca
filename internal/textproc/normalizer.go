// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

// Package textproc normalizes and tokenizes Indonesian/English mixed
// restaurant queries and catalog text. Normalization is deterministic:
// the same input always yields the same output, which keeps the index
// and the query pipeline consistent.
package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Options selects optional normalization stages. The zero value applies
// only the base pipeline (lowercase, punctuation strip, whitespace fold,
// diacritic transliteration).
type Options struct {
	// RemoveStopwords drops common Indonesian and English function words.
	RemoveStopwords bool

	// Stem applies light Indonesian affix stripping to each token.
	Stem bool
}

// Normalizer converts raw text to canonical token form.
type Normalizer struct {
	opts Options
}

// NewNormalizer returns a Normalizer with the given options.
func NewNormalizer(opts Options) *Normalizer {
	return &Normalizer{opts: opts}
}

// Normalize lowercases the input, transliterates diacritics to ASCII,
// replaces punctuation with spaces, collapses whitespace, and applies
// the optional stopword and stemming stages. Empty or all-punctuation
// input yields "".
func (n *Normalizer) Normalize(s string) string {
	return strings.Join(n.Tokens(s), " ")
}

// Tokens normalizes the input and returns its whitespace-split tokens.
func (n *Normalizer) Tokens(s string) []string {
	s = foldDiacritics(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	if !n.opts.RemoveStopwords && !n.opts.Stem {
		return fields
	}

	out := fields[:0]
	for _, tok := range fields {
		if n.opts.RemoveStopwords && isStopword(tok) {
			continue
		}
		if n.opts.Stem {
			tok = Stem(tok)
		}
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// foldDiacritics decomposes the string and drops combining marks, so
// "café" becomes "cafe" and "Jalan Udayana" survives untouched.
func foldDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
