// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package recommend

import (
	"sort"
)

// rank merges the candidate pools into the final ordered result list:
// dedup by restaurant id (max score wins, matched labels union), sort
// by (score desc, rating desc, review count desc, jitter), optional
// diversity pass over near-ties, truncate to topN.
func (e *Engine) rank(recs []Recommendation, topN int) []Recommendation {
	merged := dedup(recs)

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Restaurant.Rating != b.Restaurant.Rating {
			return a.Restaurant.Rating > b.Restaurant.Rating
		}
		if a.Restaurant.ReviewCount != b.Restaurant.ReviewCount {
			return a.Restaurant.ReviewCount > b.Restaurant.ReviewCount
		}
		// Exact ties fall through to per-restaurant jitter, fixed for
		// the engine lifetime and never reflected in Score.
		return e.jitter[a.Restaurant.ID] > e.jitter[b.Restaurant.ID]
	})

	if e.config.Ranking.Diversify {
		merged = e.diversify(merged)
	}

	if len(merged) > topN {
		merged = merged[:topN]
	}
	return merged
}

// dedup groups candidates by restaurant id, keeping the higher boosted
// score and the union of matched labels. First-seen order is preserved
// for stability.
func dedup(recs []Recommendation) []Recommendation {
	byID := make(map[int]int, len(recs))
	out := make([]Recommendation, 0, len(recs))

	for _, rec := range recs {
		idx, seen := byID[rec.Restaurant.ID]
		if !seen {
			byID[rec.Restaurant.ID] = len(out)
			out = append(out, rec)
			continue
		}
		kept := &out[idx]
		if rec.Score > kept.Score {
			kept.Score = rec.Score
			kept.Source = rec.Source
			kept.Explanation = rec.Explanation
		}
		kept.MatchedOn = unionLabels(kept.MatchedOn, rec.MatchedOn)
	}
	return out
}

func unionLabels(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	for _, l := range a {
		seen[l] = struct{}{}
	}
	for _, l := range b {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			a = append(a, l)
		}
	}
	return a
}

// diversify re-orders groups of near-tied scores (difference below
// TieEpsilon): candidates carrying matched-entity labels come first,
// then candidates whose cuisines overlap an already picked result are
// deferred while at least two diverse picks exist.
func (e *Engine) diversify(sorted []Recommendation) []Recommendation {
	eps := e.config.Ranking.TieEpsilon
	if eps <= 0 || len(sorted) < 3 {
		return sorted
	}

	out := make([]Recommendation, 0, len(sorted))
	chosenCuisines := make(map[string]struct{})

	for start := 0; start < len(sorted); {
		end := start + 1
		for end < len(sorted) && sorted[start].Score-sorted[end].Score < eps {
			end++
		}
		group := append([]Recommendation(nil), sorted[start:end]...)

		// Personalization signal first: candidates with concrete
		// entity matches outrank bare similarity hits in a tie.
		sort.SliceStable(group, func(i, j int) bool {
			return len(group[i].MatchedOn) > len(group[j].MatchedOn)
		})

		var picked, deferred []Recommendation
		for _, rec := range group {
			chosen := len(out) + len(picked)
			if chosen >= 2 && overlapsCuisines(chosenCuisines, rec.Restaurant.Cuisines) {
				deferred = append(deferred, rec)
				continue
			}
			picked = append(picked, rec)
			markCuisines(chosenCuisines, rec.Restaurant.Cuisines)
		}
		out = append(out, picked...)
		out = append(out, deferred...)
		start = end
	}
	return out
}

func overlapsCuisines(chosen map[string]struct{}, cuisines []string) bool {
	for _, c := range cuisines {
		if _, ok := chosen[c]; ok {
			return true
		}
	}
	return false
}

func markCuisines(chosen map[string]struct{}, cuisines []string) {
	for _, c := range cuisines {
		chosen[c] = struct{}{}
	}
}
