// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package recommend

import (
	"sort"

	"github.com/putuwidya/selera/internal/entity"
)

// candidate is a pre-ranking scored restaurant reference.
type candidate struct {
	docID  int
	score  float64
	source Source
}

// retrieveByRules scans every restaurant and scores the weighted
// overlap between the extracted entities and the restaurant's fields.
// Restaurants below MinRuleScore are excluded; the pool is capped at
// the candidate limit, highest scores first.
func (e *Engine) retrieveByRules(ents *entity.Result, limit int) []candidate {
	if ents.Empty() {
		return nil
	}

	var pool []candidate
	for i := range e.docs {
		score := ruleScore(ents, &e.docs[i], &e.config.RuleWeights)
		if score < e.config.MinRuleScore {
			continue
		}
		pool = append(pool, candidate{docID: i, score: clip(score), source: SourceRules})
	}
	return capCandidates(pool, limit)
}

// ruleScore is the weighted sum over categories of the fraction of the
// query's terms for that category found in the restaurant's
// corresponding fields, verbatim or via synonym.
func ruleScore(ents *entity.Result, doc *document, w *RuleWeights) float64 {
	var score float64

	score += w.Location * fractionMatched(ents.Locations, entity.CategoryLocation, func(forms []string) bool {
		return anyForm(doc.location, forms) || anyForm(doc.address, forms)
	})
	score += w.Cuisine * fractionMatched(ents.Cuisines, entity.CategoryCuisine, func(forms []string) bool {
		return anyForm(doc.name, forms) || listHasForm(doc.cuisines, forms)
	})

	// The about field is scored over the descriptive terms: cuisine and
	// mood vocabulary appearing in the free text.
	descriptive := append(append([]string{}, ents.Cuisines...), ents.Moods...)
	score += w.About * fractionMatchedPlain(descriptive, doc.about)

	score += w.Preference * fractionMatched(ents.Moods, entity.CategoryMood, func(forms []string) bool {
		return listHasForm(doc.preferences, forms) || anyForm(doc.about, forms)
	})
	score += w.Feature * fractionMatched(ents.Features, entity.CategoryFeature, func(forms []string) bool {
		return listHasForm(doc.features, forms)
	})

	return score
}

// fractionMatched returns the matched fraction of terms, where each
// term matches through any of its synonym-expanded surface forms.
func fractionMatched(terms []string, cat entity.Category, match func([]string) bool) float64 {
	if len(terms) == 0 {
		return 0
	}
	hit := 0
	for _, t := range terms {
		if match(entity.Expand(cat, t)) {
			hit++
		}
	}
	return float64(hit) / float64(len(terms))
}

func fractionMatchedPlain(terms []string, text string) float64 {
	if len(terms) == 0 {
		return 0
	}
	hit := 0
	for _, t := range terms {
		if containsWord(text, t) {
			hit++
		}
	}
	return float64(hit) / float64(len(terms))
}

// retrieveByVector projects the normalized query into the index and
// keeps documents whose cosine similarity clears the threshold, capped
// at the candidate limit.
func (e *Engine) retrieveByVector(normalizedQuery string, limit int) []candidate {
	sims := e.index.Query(normalizedQuery)

	var pool []candidate
	for i, sim := range sims {
		if sim < e.config.SimilarityThreshold {
			continue
		}
		pool = append(pool, candidate{docID: i, score: clip(sim), source: SourceSimilarity})
	}
	return capCandidates(pool, limit)
}

// capCandidates sorts by descending score (document order among ties,
// for determinism) and truncates to the limit.
func capCandidates(pool []candidate, limit int) []candidate {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].score > pool[j].score
	})
	if limit > 0 && len(pool) > limit {
		pool = pool[:limit]
	}
	return pool
}
