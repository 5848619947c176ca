// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package entity

import (
	"reflect"
	"testing"
)

func TestExtractBasicQuery(t *testing.T) {
	e := NewExtractor()
	res := e.Extract("pizza di kuta")

	if !reflect.DeepEqual(res.Locations, []string{"kuta"}) {
		t.Errorf("locations = %v", res.Locations)
	}
	if !reflect.DeepEqual(res.Cuisines, []string{"pizza"}) {
		t.Errorf("cuisines = %v", res.Cuisines)
	}
	if res.TermCount() != 2 {
		t.Errorf("term count = %d, want 2", res.TermCount())
	}
}

func TestExtractMultiWordLocationNotSplit(t *testing.T) {
	e := NewExtractor()
	res := e.Extract("seafood enak di gili trawangan")

	if !reflect.DeepEqual(res.Locations, []string{"gili trawangan"}) {
		t.Errorf("locations = %v, want gili trawangan whole", res.Locations)
	}
	// "gili" alone must not reappear once the phrase consumed it.
	for _, l := range res.Locations {
		if l == "gili" {
			t.Error("component word re-attributed after phrase match")
		}
	}
	if !reflect.DeepEqual(res.Cuisines, []string{"seafood"}) {
		t.Errorf("cuisines = %v", res.Cuisines)
	}
}

func TestExtractSynonymContributesBothForms(t *testing.T) {
	e := NewExtractor()
	res := e.Extract("restoran jepang di senggigi")

	want := []string{"japanese", "jepang"}
	if !reflect.DeepEqual(res.Cuisines, want) {
		t.Errorf("cuisines = %v, want %v", res.Cuisines, want)
	}
}

func TestExtractLocationAbbreviation(t *testing.T) {
	e := NewExtractor()
	res := e.Extract("sushi murah di gili t")

	if !reflect.DeepEqual(res.Locations, []string{"gili trawangan", "gili t"}) {
		t.Errorf("locations = %v", res.Locations)
	}
	if !reflect.DeepEqual(res.Prices, []string{"murah"}) {
		t.Errorf("prices = %v", res.Prices)
	}
}

func TestExtractPriceVocabulary(t *testing.T) {
	e := NewExtractor()

	cheap := e.Extract("tempat makan budget di mataram")
	if !reflect.DeepEqual(cheap.Prices, []string{"murah", "budget"}) {
		t.Errorf("cheap prices = %v", cheap.Prices)
	}

	expensive := e.Extract("restoran mewah romantis")
	if !reflect.DeepEqual(expensive.Prices, []string{"mahal", "mewah"}) {
		t.Errorf("expensive prices = %v", expensive.Prices)
	}
	if !reflect.DeepEqual(expensive.Moods, []string{"romantis"}) {
		t.Errorf("moods = %v", expensive.Moods)
	}
}

func TestExtractWordBoundary(t *testing.T) {
	e := NewExtractor()
	// "barat" contains "bar"; must not match the cuisine keyword.
	res := e.Extract("restoran di barat")
	if len(res.Cuisines) != 0 {
		t.Errorf("cuisines = %v, want none", res.Cuisines)
	}
}

func TestExtractEmptyQuery(t *testing.T) {
	e := NewExtractor()
	for _, q := range []string{"", "   ", "?!"} {
		res := e.Extract(q)
		if !res.Empty() {
			t.Errorf("Extract(%q) not empty: %+v", q, res)
		}
	}
}

func TestExtractFeatureAndMood(t *testing.T) {
	e := NewExtractor()
	res := e.Extract("cafe santai dengan wifi dan live music")

	if !reflect.DeepEqual(res.Cuisines, []string{"cafe"}) {
		t.Errorf("cuisines = %v", res.Cuisines)
	}
	if !reflect.DeepEqual(res.Features, []string{"wifi"}) {
		t.Errorf("features = %v", res.Features)
	}
	wantMoods := []string{"live music", "santai"}
	if !reflect.DeepEqual(res.Moods, wantMoods) {
		t.Errorf("moods = %v, want %v", res.Moods, wantMoods)
	}
}

func TestExtractNoDuplicateTerms(t *testing.T) {
	e := NewExtractor()
	res := e.Extract("pizza pizza pizza")
	if !reflect.DeepEqual(res.Cuisines, []string{"pizza"}) {
		t.Errorf("cuisines = %v, want single pizza", res.Cuisines)
	}
}

func TestExpand(t *testing.T) {
	forms := Expand(CategoryCuisine, "japanese")
	found := false
	for _, f := range forms {
		if f == "jepang" {
			found = true
		}
	}
	if !found || forms[0] != "japanese" {
		t.Errorf("Expand(japanese) = %v", forms)
	}

	plain := Expand(CategoryCuisine, "jepang")
	if !reflect.DeepEqual(plain, []string{"jepang"}) {
		t.Errorf("Expand(jepang) = %v", plain)
	}
}

func TestTermsAccessor(t *testing.T) {
	r := &Result{Locations: []string{"kuta"}, Features: []string{"wifi"}}
	if got := r.Terms(CategoryLocation); !reflect.DeepEqual(got, []string{"kuta"}) {
		t.Errorf("Terms(location) = %v", got)
	}
	if got := r.Terms(CategoryFeature); !reflect.DeepEqual(got, []string{"wifi"}) {
		t.Errorf("Terms(feature) = %v", got)
	}
	if got := r.Terms(Category("unknown")); got != nil {
		t.Errorf("Terms(unknown) = %v", got)
	}
}
