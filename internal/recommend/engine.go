// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package recommend

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/putuwidya/selera/internal/catalog"
	"github.com/putuwidya/selera/internal/entity"
	"github.com/putuwidya/selera/internal/index"
	"github.com/putuwidya/selera/internal/metrics"
	"github.com/putuwidya/selera/internal/textproc"
)

// ErrNotFound is returned by id-based lookups for unknown restaurants.
var ErrNotFound = catalog.ErrNotFound

// Engine answers recommendation queries over an immutable catalog.
// Construction loads the catalog and builds the TF-IDF index
// synchronously; afterwards the engine holds no mutable state and is
// safe for concurrent use without locking. Per-query work is local to
// the call.
type Engine struct {
	config *Config
	logger zerolog.Logger

	restaurants []catalog.Restaurant
	docs        []document
	docByID     map[int]int

	index      *index.Index
	extractor  *entity.Extractor
	normalizer *textproc.Normalizer
	rules      []BoostRule

	// jitter holds one tiny pre-drawn value per restaurant id, used
	// only to order exact (score, rating, reviews) ties. Drawing them
	// once at construction keeps repeated calls stable.
	jitter map[int]float64
}

// New creates an engine over an already loaded catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg *Config, logger zerolog.Logger, restaurants []catalog.Restaurant) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if len(restaurants) == 0 {
		return nil, errors.New("empty catalog")
	}

	e := &Engine{
		config:      cfg.Clone(),
		logger:      logger.With().Str("component", "recommend").Logger(),
		restaurants: restaurants,
		docByID:     make(map[int]int, len(restaurants)),
		extractor:   entity.NewExtractor(),
		normalizer:  textproc.NewNormalizer(textproc.Options{RemoveStopwords: true}),
		rules:       boostRules(&cfg.Boost),
		jitter:      make(map[int]float64, len(restaurants)),
	}

	texts := make([]string, len(restaurants))
	for i := range restaurants {
		doc := newDocument(e.normalizer, &e.restaurants[i])
		e.docs = append(e.docs, doc)
		e.docByID[restaurants[i].ID] = i
		texts[i] = doc.text
	}

	ix, err := index.Build(cfg.Index, texts)
	if err != nil {
		return nil, fmt.Errorf("build catalog index: %w", err)
	}
	e.index = ix

	seed := cfg.Seed
	if seed == 0 {
		seed = 42
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // tie-break jitter only
	for i := range restaurants {
		e.jitter[restaurants[i].ID] = rng.Float64() * cfg.Ranking.JitterScale
	}

	metrics.SetCatalogSize(len(restaurants))
	metrics.SetIndexDimensionality(ix.Dimensionality())

	e.logger.Info().
		Int("restaurants", len(restaurants)).
		Int("dimensionality", ix.Dimensionality()).
		Str("boost_rules", describeRules(e.rules)).
		Msg("engine ready")
	return e, nil
}

// NewFromFile loads the catalog from a JSON file and constructs the
// engine. A missing or unreadable catalog is fatal: the error is
// propagated and no engine is returned.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFromFile(cfg *Config, logger zerolog.Logger, path string) (*Engine, error) {
	restaurants, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(cfg, logger, restaurants)
}

// Recommend returns up to topN scored recommendations for a free-text
// query. It never returns an error for well-formed input: sparse or
// unmatched queries fall back to the popularity list, and a panic in
// scoring is recovered into the same fallback.
func (e *Engine) Recommend(query string, topN int) []Recommendation {
	start := time.Now()
	queryID := uuid.NewString()
	topN = e.clampTopN(topN)
	outcome := metrics.OutcomeMatched

	ents := e.extractor.Extract(query)

	var results []Recommendation
	func() {
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error().
					Str("query_id", queryID).
					Interface("panic", r).
					Msg("scoring panicked, serving fallback")
				results = nil
			}
		}()
		results = e.retrieve(ents, topN)
	}()

	if len(results) == 0 {
		results = e.fallback(ents, topN)
		outcome = metrics.OutcomeFallback
		if len(results) == 0 {
			outcome = metrics.OutcomeEmpty
		}
	}

	metrics.RecordQuery("recommend", outcome, time.Since(start))
	e.logger.Debug().
		Str("query_id", queryID).
		Str("query", queryPreview(query)).
		Int("entities", ents.TermCount()).
		Int("results", len(results)).
		Str("outcome", outcome).
		Dur("elapsed", time.Since(start)).
		Msg("query served")
	return results
}

// retrieve runs both candidate pools, boosts every candidate, and
// ranks the merged set.
func (e *Engine) retrieve(ents *entity.Result, topN int) []Recommendation {
	limit := topN * e.config.CandidateMultiplier

	pools := e.retrieveByRules(ents, limit)
	normalized := e.normalizer.Normalize(ents.Raw)
	pools = append(pools, e.retrieveByVector(normalized, limit)...)
	if len(pools) == 0 {
		return nil
	}

	recs := make([]Recommendation, 0, len(pools))
	for _, cand := range pools {
		doc := &e.docs[cand.docID]
		score, labels := applyBoost(e.rules, &e.config.Boost, cand.score, ents, doc)
		recs = append(recs, Recommendation{
			Restaurant: doc.r,
			Score:      score,
			MatchedOn:  labels,
			Source:     cand.source,
		})
	}
	return e.rank(recs, topN)
}

// Similar returns up to topN restaurants most similar to the given
// restaurant, by cosine similarity of the indexed documents. The target
// itself is never included. Unknown ids return ErrNotFound.
func (e *Engine) Similar(id, topN int) ([]Recommendation, error) {
	start := time.Now()
	topN = e.clampTopN(topN)

	docID, ok := e.docByID[id]
	if !ok {
		metrics.RecordQuery("similar", metrics.OutcomeEmpty, time.Since(start))
		return nil, fmt.Errorf("similar: id %d: %w", id, ErrNotFound)
	}

	sims, err := e.index.SimilarTo(docID)
	if err != nil {
		return nil, fmt.Errorf("similar: %w", err)
	}

	recs := make([]Recommendation, 0, topN)
	for i, sim := range sims {
		if i == docID || sim < e.config.SimilarThreshold {
			continue
		}
		recs = append(recs, Recommendation{
			Restaurant: e.docs[i].r,
			Score:      clip(sim),
			Source:     SourceSimilarity,
		})
	}
	recs = e.rank(recs, topN)

	outcome := metrics.OutcomeMatched
	if len(recs) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordQuery("similar", outcome, time.Since(start))
	return recs, nil
}

// ByCategory matches a category string against location, cuisine,
// description, preference and feature fields with per-field weights,
// independent of the TF-IDF path. Results are sorted by (score desc,
// rating desc).
func (e *Engine) ByCategory(category string, topN int) []Recommendation {
	start := time.Now()
	topN = e.clampTopN(topN)
	term := e.normalizer.Normalize(category)
	if term == "" {
		metrics.RecordQuery("category", metrics.OutcomeEmpty, time.Since(start))
		return nil
	}

	w := e.config.CategoryWeights
	var recs []Recommendation
	for i := range e.docs {
		doc := &e.docs[i]
		var score float64
		var labels []string

		if listHasForm(doc.cuisines, []string{term}) || containsWord(doc.name, term) {
			score += w.Cuisine
			labels = append(labels, "cuisine: "+term)
		}
		if containsWord(doc.location, term) || containsWord(doc.address, term) {
			score += w.Location
			labels = append(labels, "location: "+term)
		}
		if containsWord(doc.about, term) {
			score += w.About
			labels = append(labels, "about: "+term)
		}
		if listHasForm(doc.preferences, []string{term}) {
			score += w.Preference
			labels = append(labels, "preference: "+term)
		}
		if listHasForm(doc.features, []string{term}) {
			score += w.Feature
			labels = append(labels, "feature: "+term)
		}

		if score <= 0 {
			continue
		}
		recs = append(recs, Recommendation{
			Restaurant: doc.r,
			Score:      clip(score),
			MatchedOn:  labels,
			Source:     SourceRules,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Restaurant.Rating > b.Restaurant.Rating
	})
	if len(recs) > topN {
		recs = recs[:topN]
	}

	outcome := metrics.OutcomeMatched
	if len(recs) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordQuery("category", outcome, time.Since(start))
	return recs
}

// Statistics summarizes the catalog and the fitted index.
func (e *Engine) Statistics() Statistics {
	s := catalog.ComputeStats(e.restaurants)
	return Statistics{
		TotalRestaurants:     s.TotalRestaurants,
		AverageRating:        s.AverageRating,
		UniqueCuisines:       s.UniqueCuisines,
		UniqueFeatures:       s.UniqueFeatures,
		UniqueLocations:      s.UniqueLocations,
		VectorDimensionality: e.index.Dimensionality(),
	}
}

// Restaurant returns the catalog entry for an id.
func (e *Engine) Restaurant(id int) (*catalog.Restaurant, error) {
	docID, ok := e.docByID[id]
	if !ok {
		return nil, fmt.Errorf("restaurant: id %d: %w", id, ErrNotFound)
	}
	return e.docs[docID].r, nil
}

// Restaurants returns the full catalog in load order.
func (e *Engine) Restaurants() []catalog.Restaurant {
	return e.restaurants
}

// clampTopN applies the default and maximum result counts.
func (e *Engine) clampTopN(topN int) int {
	if topN <= 0 {
		return e.config.DefaultTopN
	}
	if topN > e.config.MaxTopN {
		return e.config.MaxTopN
	}
	return topN
}

// queryPreview truncates long queries for log lines.
func queryPreview(q string) string {
	const max = 120
	if len(q) <= max {
		return q
	}
	return strings.TrimSpace(q[:max]) + "..."
}
