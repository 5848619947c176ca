// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package textproc

import "strings"

// Stem applies light Indonesian affix stripping: particle and possessive
// suffixes first, then derivational suffixes, then at most one prefix.
// It is intentionally shallower than a full Nazief-Adriani stemmer; for
// retrieval it only needs to map inflections of the same root together
// ("makanan", "makan" -> "makan"). Words of four letters or fewer are
// returned unchanged.
func Stem(word string) string {
	if len(word) <= 4 {
		return word
	}

	// Particles and possessive pronouns.
	for _, suf := range []string{"lah", "kah", "pun", "nya", "ku", "mu"} {
		if trimmed, ok := stripSuffix(word, suf); ok {
			word = trimmed
			break
		}
	}

	// Derivational suffixes.
	for _, suf := range []string{"kan", "an", "i"} {
		if trimmed, ok := stripSuffix(word, suf); ok {
			word = trimmed
			break
		}
	}

	// Derivational prefixes, longest first. One round only; chained
	// prefixes ("memper-") are rare in this domain's vocabulary.
	for _, pre := range []string{"meng", "meny", "mem", "men", "peng", "peny", "pem", "pen", "ber", "ter", "me", "pe", "be", "te", "di", "ke", "se"} {
		if strings.HasPrefix(word, pre) && len(word)-len(pre) >= 3 {
			word = word[len(pre):]
			break
		}
	}

	return word
}

func stripSuffix(word, suf string) (string, bool) {
	if strings.HasSuffix(word, suf) && len(word)-len(suf) >= 3 {
		return word[:len(word)-len(suf)], true
	}
	return word, false
}
