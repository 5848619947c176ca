// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package recommend

import (
	"sort"

	"github.com/putuwidya/selera/internal/entity"
)

// fallbackExplanation tags popularity-based results so callers can
// distinguish them from similarity-driven matches.
const fallbackExplanation = "popular / highly rated"

// fallback returns the rating-sorted popularity list. When the query
// carried a location entity, the list is filtered to that location
// first; if the filter empties it, the global list is used instead.
// Scores are synthesized from rating, not similarity.
func (e *Engine) fallback(ents *entity.Result, topN int) []Recommendation {
	docs := e.docs
	if ents != nil && len(ents.Locations) > 0 {
		if filtered := e.filterByLocation(ents.Locations); len(filtered) > 0 {
			docs = filtered
		}
	}

	recs := make([]Recommendation, 0, len(docs))
	for i := range docs {
		r := docs[i].r
		recs = append(recs, Recommendation{
			Restaurant:  r,
			Score:       clip(r.Rating / 5.0),
			Explanation: fallbackExplanation,
			Source:      SourcePopularity,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Restaurant.Rating != b.Restaurant.Rating {
			return a.Restaurant.Rating > b.Restaurant.Rating
		}
		return a.Restaurant.ReviewCount > b.Restaurant.ReviewCount
	})

	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}

func (e *Engine) filterByLocation(locations []string) []document {
	var out []document
	for i := range e.docs {
		doc := e.docs[i]
		for _, term := range locations {
			forms := entity.Expand(entity.CategoryLocation, term)
			if anyForm(doc.location, forms) || anyForm(doc.address, forms) {
				out = append(out, doc)
				break
			}
		}
	}
	return out
}
