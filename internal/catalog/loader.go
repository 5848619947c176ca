// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package catalog

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/putuwidya/selera/internal/logging"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// rawRestaurant defers the list-valued fields so that legacy exports that
// carry them as serialized strings still load.
type rawRestaurant struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	About       string          `json:"about"`
	Address     string          `json:"address"`
	Location    string          `json:"location"`
	PriceRange  string          `json:"price_range"`
	Cuisines    json.RawMessage `json:"cuisines"`
	Features    json.RawMessage `json:"features"`
	Preferences json.RawMessage `json:"preferences"`
}

// Load reads a restaurant catalog from a JSON file. The file must contain a
// JSON array of restaurant objects. Recoverable per-record problems are
// logged and defaulted; a missing file, invalid JSON or a duplicate id is a
// hard error.
func Load(path string) ([]Restaurant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a catalog from its raw JSON bytes.
func Parse(data []byte) ([]Restaurant, error) {
	var raw []rawRestaurant
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	restaurants := make([]Restaurant, 0, len(raw))
	seen := make(map[int]struct{}, len(raw))

	for i, rr := range raw {
		if _, dup := seen[rr.ID]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate restaurant id %d", rr.ID)
		}
		seen[rr.ID] = struct{}{}

		r := Restaurant{
			ID:          rr.ID,
			Name:        rr.Name,
			Rating:      rr.Rating,
			ReviewCount: rr.ReviewCount,
			About:       rr.About,
			Address:     rr.Address,
			Location:    rr.Location,
			PriceRange:  rr.PriceRange,
			Cuisines:    decodeListField(rr.ID, "cuisines", rr.Cuisines),
			Features:    decodeListField(rr.ID, "features", rr.Features),
			Preferences: decodeListField(rr.ID, "preferences", rr.Preferences),
		}

		if r.Name == "" {
			logging.Warn().Int("id", r.ID).Int("index", i).
				Msg("skipping restaurant without a name")
			continue
		}
		if err := validate.Struct(&r); err != nil {
			// Out-of-range ratings come from scraper glitches; clamp
			// rather than reject the whole record.
			if r.Rating < 0 || r.Rating > 5 {
				logging.Warn().Int("id", r.ID).Float64("rating", r.Rating).
					Msg("clamping out-of-range rating")
				r.Rating = clamp(r.Rating, 0, 5)
			}
			if err := validate.Struct(&r); err != nil {
				return nil, fmt.Errorf("parse catalog: restaurant %d: %w", r.ID, err)
			}
		}

		restaurants = append(restaurants, r)
	}

	logging.Info().Int("restaurants", len(restaurants)).Msg("catalog loaded")
	return restaurants, nil
}

// decodeListField accepts either a JSON array of strings or a quoted string
// holding a serialized list. Anything else decodes to the empty list with a
// warning, matching the malformed-field contract of DecodeList.
func decodeListField(id int, field string, raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err == nil {
		return cleanList(items)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return DecodeList(s)
	}

	logging.Warn().Int("id", id).Str("field", field).
		Msg("malformed list field, defaulting to empty")
	return []string{}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
