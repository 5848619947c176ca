// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

// Package metrics exposes Prometheus collectors for the recommendation
// engine: query throughput by outcome, query latency, and catalog/index
// size gauges. All recording functions are safe for concurrent use.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcome label values.
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
	OutcomeEmpty    = "empty"
)

var (
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "selera_queries_total",
			Help: "Total recommendation queries by outcome",
		},
		[]string{"operation", "outcome"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "selera_query_duration_seconds",
			Help:    "Recommendation query latency in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"operation"},
	)

	CatalogRestaurants = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "selera_catalog_restaurants",
			Help: "Number of restaurants in the loaded catalog",
		},
	)

	IndexDimensionality = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "selera_index_dimensionality",
			Help: "Vocabulary size of the fitted TF-IDF index",
		},
	)
)

// RecordQuery records one completed engine call.
func RecordQuery(operation, outcome string, duration time.Duration) {
	QueriesTotal.WithLabelValues(operation, outcome).Inc()
	QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetCatalogSize updates the catalog gauge after loading.
func SetCatalogSize(n int) {
	CatalogRestaurants.Set(float64(n))
}

// SetIndexDimensionality updates the index gauge after building.
func SetIndexDimensionality(n int) {
	IndexDimensionality.Set(float64(n))
}
