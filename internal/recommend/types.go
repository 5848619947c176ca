// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package recommend

import (
	"github.com/putuwidya/selera/internal/catalog"
)

// Source identifies which retrieval path produced a recommendation.
type Source string

const (
	// SourceRules marks entity-rule retrieval candidates.
	SourceRules Source = "rules"

	// SourceSimilarity marks TF-IDF cosine retrieval candidates.
	SourceSimilarity Source = "similarity"

	// SourcePopularity marks rating-based fallback results, which carry
	// synthesized scores rather than similarity.
	SourcePopularity Source = "popularity"
)

// Recommendation is one scored, ranked result. Ordering within a result
// list is significant; Score is always within [0, 1].
type Recommendation struct {
	Restaurant *catalog.Restaurant `json:"restaurant"`

	// Score is the boosted, clipped relevance score. Tie-break jitter
	// is never included here.
	Score float64 `json:"score"`

	// MatchedOn lists human-readable labels of the matched tiers.
	MatchedOn []string `json:"matched_on,omitempty"`

	// Explanation is an optional short provenance note, set for
	// fallback results so callers can label them.
	Explanation string `json:"explanation,omitempty"`

	Source Source `json:"source"`
}

// Statistics summarizes the engine's catalog and index.
type Statistics struct {
	TotalRestaurants     int     `json:"total_restaurants"`
	AverageRating        float64 `json:"average_rating"`
	UniqueCuisines       int     `json:"unique_cuisines"`
	UniqueFeatures       int     `json:"unique_features"`
	UniqueLocations      int     `json:"unique_locations"`
	VectorDimensionality int     `json:"vector_dimensionality"`
}

// clip bounds a score to [0, 1].
func clip(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
