// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

// Package index builds a TF-IDF vector space over the restaurant
// catalog once at engine construction and serves cosine similarity
// queries against it. The fitted index is immutable; rebuilding means
// constructing a new one.
package index

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Config controls vocabulary construction.
type Config struct {
	// MaxFeatures caps the vocabulary size; the most frequent terms
	// across the corpus are kept. Zero means unlimited.
	MaxFeatures int

	// MinDF drops terms appearing in fewer documents than this.
	MinDF int

	// MaxDF drops terms appearing in more than this fraction of
	// documents (corpus-wide boilerplate).
	MaxDF float64

	// NgramMin and NgramMax bound the token n-gram sizes included in
	// the vocabulary.
	NgramMin int
	NgramMax int
}

// DefaultConfig returns the production vectorizer settings.
func DefaultConfig() Config {
	return Config{
		MaxFeatures: 5000,
		MinDF:       1,
		MaxDF:       0.95,
		NgramMin:    1,
		NgramMax:    2,
	}
}

// Validate checks the configuration for invalid combinations.
func (c Config) Validate() error {
	if c.MinDF < 1 {
		return fmt.Errorf("min_df must be >= 1, got %d", c.MinDF)
	}
	if c.MaxDF <= 0 || c.MaxDF > 1 {
		return fmt.Errorf("max_df must be in (0, 1], got %v", c.MaxDF)
	}
	if c.NgramMin < 1 || c.NgramMax < c.NgramMin {
		return fmt.Errorf("invalid ngram range (%d, %d)", c.NgramMin, c.NgramMax)
	}
	return nil
}

// Vector is a sparse l2-normalized term-weight vector keyed by
// vocabulary index. Cosine similarity between two Vectors is their dot
// product.
type Vector map[int]float64

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	// Iterate the smaller side.
	a, b := v, other
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for i, w := range a {
		if bw, ok := b[i]; ok {
			sum += w * bw
		}
	}
	return sum
}

// Vectorizer converts documents to TF-IDF vectors. It must be fitted
// before Transform; after fitting it is immutable and safe for
// concurrent use.
type Vectorizer struct {
	cfg   Config
	vocab map[string]int
	idf   []float64
}

// NewVectorizer creates an unfitted Vectorizer.
func NewVectorizer(cfg Config) *Vectorizer {
	return &Vectorizer{cfg: cfg}
}

// ErrEmptyCorpus is returned when Fit receives no usable documents.
var ErrEmptyCorpus = errors.New("empty corpus")

// Fit builds the vocabulary and inverse document frequencies from the
// corpus. Documents are expected in normalized form; tokenization is
// whitespace splitting plus n-gram expansion per the configuration.
func (v *Vectorizer) Fit(docs []string) error {
	if err := v.cfg.Validate(); err != nil {
		return fmt.Errorf("vectorizer config: %w", err)
	}
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	df := make(map[string]int)
	cf := make(map[string]int)
	for _, doc := range docs {
		terms := v.ngrams(doc)
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			cf[t]++
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				df[t]++
			}
		}
	}

	n := len(docs)
	maxDoc := int(v.cfg.MaxDF * float64(n))
	candidates := make([]string, 0, len(df))
	for term, count := range df {
		if count < v.cfg.MinDF {
			continue
		}
		// With a single-document corpus max_df would reject every
		// term; keep terms whose df equals the corpus size of 1.
		if n > 1 && count > maxDoc {
			continue
		}
		candidates = append(candidates, term)
	}
	if len(candidates) == 0 {
		return ErrEmptyCorpus
	}

	// Most frequent first, alphabetical among ties, so the vocabulary
	// cap is deterministic.
	sort.Slice(candidates, func(i, j int) bool {
		if cf[candidates[i]] != cf[candidates[j]] {
			return cf[candidates[i]] > cf[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if v.cfg.MaxFeatures > 0 && len(candidates) > v.cfg.MaxFeatures {
		candidates = candidates[:v.cfg.MaxFeatures]
	}
	sort.Strings(candidates)

	v.vocab = make(map[string]int, len(candidates))
	v.idf = make([]float64, len(candidates))
	for i, term := range candidates {
		v.vocab[term] = i
		// Smoothed idf: ln((1+n)/(1+df)) + 1.
		v.idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}
	return nil
}

// Transform projects a document into the fitted vector space. Terms
// outside the vocabulary are ignored; a document with no known terms
// yields an empty vector.
func (v *Vectorizer) Transform(doc string) Vector {
	vec := make(Vector)
	if v.vocab == nil {
		return vec
	}
	for _, t := range v.ngrams(doc) {
		if i, ok := v.vocab[t]; ok {
			vec[i] += v.idf[i]
		}
	}
	normalize(vec)
	return vec
}

// Dimensionality is the fitted vocabulary size.
func (v *Vectorizer) Dimensionality() int {
	return len(v.vocab)
}

// ngrams tokenizes by whitespace and expands token n-grams within the
// configured range.
func (v *Vectorizer) ngrams(doc string) []string {
	tokens := strings.Fields(doc)
	if len(tokens) == 0 {
		return nil
	}
	var out []string
	for size := v.cfg.NgramMin; size <= v.cfg.NgramMax; size++ {
		for i := 0; i+size <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+size], " "))
		}
	}
	return out
}

func normalize(vec Vector) {
	var sq float64
	for _, w := range vec {
		sq += w * w
	}
	if sq == 0 {
		return
	}
	norm := math.Sqrt(sq)
	for i := range vec {
		vec[i] /= norm
	}
}
