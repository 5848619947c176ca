// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package index

import "fmt"

// Index holds the fitted vector space plus one vector per catalog
// document. Build it once; it serves concurrent queries without locking
// because nothing is mutated afterwards.
type Index struct {
	vectorizer *Vectorizer
	docs       []Vector
}

// Build fits a vectorizer over the documents and stores their vectors.
// Document order is preserved: document i keeps id i.
func Build(cfg Config, docs []string) (*Index, error) {
	v := NewVectorizer(cfg)
	if err := v.Fit(docs); err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	vectors := make([]Vector, len(docs))
	for i, doc := range docs {
		vectors[i] = v.Transform(doc)
	}
	return &Index{vectorizer: v, docs: vectors}, nil
}

// Query projects the normalized text into the vector space and returns
// its cosine similarity against every document, indexed by document id.
func (ix *Index) Query(text string) []float64 {
	return ix.similarities(ix.vectorizer.Transform(text))
}

// SimilarTo returns cosine similarities of every document against the
// stored vector of the given document id.
func (ix *Index) SimilarTo(docID int) ([]float64, error) {
	if docID < 0 || docID >= len(ix.docs) {
		return nil, fmt.Errorf("document id %d out of range [0, %d)", docID, len(ix.docs))
	}
	return ix.similarities(ix.docs[docID]), nil
}

// Dimensionality is the vocabulary size of the fitted space.
func (ix *Index) Dimensionality() int {
	return ix.vectorizer.Dimensionality()
}

// Len is the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.docs)
}

func (ix *Index) similarities(query Vector) []float64 {
	sims := make([]float64, len(ix.docs))
	if len(query) == 0 {
		return sims
	}
	for i, doc := range ix.docs {
		sims[i] = query.Dot(doc)
	}
	return sims
}
