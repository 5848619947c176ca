// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

// Package catalog defines the restaurant data model and the catalog loader.
//
// A catalog is loaded exactly once from a JSON file at engine construction
// and is immutable for the process lifetime. Per-record problems (malformed
// list fields, out-of-range ratings) are recovered by defaulting the field;
// file-level problems (missing file, invalid JSON, duplicate ids) are fatal.
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a restaurant id does not exist in the catalog.
var ErrNotFound = errors.New("restaurant not found")

// Restaurant is a single catalog entry. Instances are never mutated after
// loading; the engine shares them freely across concurrent queries.
type Restaurant struct {
	// ID is the unique restaurant identifier.
	ID int `json:"id" validate:"gte=0"`

	// Name is the display name.
	Name string `json:"name" validate:"required"`

	// Rating is the aggregate review rating in [0, 5].
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`

	// ReviewCount is the number of reviews behind Rating. Optional;
	// used only as a ranking tie-breaker when present.
	ReviewCount int `json:"review_count,omitempty"`

	// About is the free-text description.
	About string `json:"about,omitempty"`

	// Address is the street address.
	Address string `json:"address,omitempty"`

	// Location is the canonical area name (e.g. "Kuta", "Gili Trawangan").
	Location string `json:"location,omitempty"`

	// PriceRange is the categorical price tier ("$", "$$", "$$-$$$", ...).
	PriceRange string `json:"price_range,omitempty"`

	// Cuisines, Features and Preferences are order-irrelevant sets of
	// normalized strings. Always a list, never nil after loading.
	Cuisines    []string `json:"cuisines"`
	Features    []string `json:"features"`
	Preferences []string `json:"preferences"`
}

// Stats summarizes a loaded catalog.
type Stats struct {
	TotalRestaurants int     `json:"total_restaurants"`
	AverageRating    float64 `json:"average_rating"`
	UniqueCuisines   int     `json:"unique_cuisines"`
	UniqueFeatures   int     `json:"unique_features"`
	UniqueLocations  int     `json:"unique_locations"`
}

// ComputeStats derives summary statistics from a catalog.
func ComputeStats(restaurants []Restaurant) Stats {
	s := Stats{TotalRestaurants: len(restaurants)}
	if len(restaurants) == 0 {
		return s
	}

	cuisines := make(map[string]struct{})
	features := make(map[string]struct{})
	locations := make(map[string]struct{})

	var ratingSum float64
	for i := range restaurants {
		r := &restaurants[i]
		ratingSum += r.Rating
		for _, c := range r.Cuisines {
			cuisines[c] = struct{}{}
		}
		for _, f := range r.Features {
			features[f] = struct{}{}
		}
		if r.Location != "" {
			locations[r.Location] = struct{}{}
		}
	}

	s.AverageRating = ratingSum / float64(len(restaurants))
	s.UniqueCuisines = len(cuisines)
	s.UniqueFeatures = len(features)
	s.UniqueLocations = len(locations)
	return s
}

// FindByID returns the restaurant with the given id.
func FindByID(restaurants []Restaurant, id int) (*Restaurant, error) {
	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i], nil
		}
	}
	return nil, fmt.Errorf("id %d: %w", id, ErrNotFound)
}
