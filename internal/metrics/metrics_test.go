// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordQuery(t *testing.T) {
	before := testutil.ToFloat64(QueriesTotal.WithLabelValues("recommend", OutcomeMatched))

	RecordQuery("recommend", OutcomeMatched, 3*time.Millisecond)
	RecordQuery("recommend", OutcomeMatched, 7*time.Millisecond)

	after := testutil.ToFloat64(QueriesTotal.WithLabelValues("recommend", OutcomeMatched))
	if after-before != 2 {
		t.Errorf("counter delta = %v, want 2", after-before)
	}
}

func TestGauges(t *testing.T) {
	SetCatalogSize(42)
	if got := testutil.ToFloat64(CatalogRestaurants); got != 42 {
		t.Errorf("catalog gauge = %v", got)
	}
	SetIndexDimensionality(5000)
	if got := testutil.ToFloat64(IndexDimensionality); got != 5000 {
		t.Errorf("index gauge = %v", got)
	}
}
