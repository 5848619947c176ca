// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDecodeListRoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{"wifi"},
		{"outdoor seating", "live music", "wifi"},
		{"pizza", "pasta, baked"},
	}
	for _, want := range cases {
		got := DecodeList(EncodeList(want))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("DecodeList(EncodeList(%v)) = %v", want, got)
		}
	}
}

func TestDecodeListMalformed(t *testing.T) {
	cases := []string{
		"[unterminated",
		`["mixed", 42]`,
		"[]",
		"",
		"   ",
	}
	for _, in := range cases {
		got := DecodeList(in)
		if len(got) != 0 {
			t.Errorf("DecodeList(%q) = %v, want empty", in, got)
		}
		if got == nil {
			t.Errorf("DecodeList(%q) = nil, want empty slice", in)
		}
	}
}

func TestDecodeListCommaDelimited(t *testing.T) {
	got := DecodeList("wifi, outdoor seating , 'live music'")
	want := []string{"wifi", "outdoor seating", "live music"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeList comma form = %v, want %v", got, want)
	}
}

func TestParseStringEncodedLists(t *testing.T) {
	data := []byte(`[
		{"id": 1, "name": "Warung Satu", "rating": 4.5,
		 "cuisines": "[\"seafood\", \"indonesian\"]",
		 "features": "wifi, outdoor seating",
		 "preferences": ["romantis"]}
	]`)
	rs, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rs) != 1 {
		t.Fatalf("got %d restaurants, want 1", len(rs))
	}
	r := rs[0]
	if !reflect.DeepEqual(r.Cuisines, []string{"seafood", "indonesian"}) {
		t.Errorf("cuisines = %v", r.Cuisines)
	}
	if !reflect.DeepEqual(r.Features, []string{"wifi", "outdoor seating"}) {
		t.Errorf("features = %v", r.Features)
	}
	if !reflect.DeepEqual(r.Preferences, []string{"romantis"}) {
		t.Errorf("preferences = %v", r.Preferences)
	}
}

func TestParseMalformedListDefaultsEmpty(t *testing.T) {
	data := []byte(`[{"id": 7, "name": "Rumah Makan", "rating": 4.0, "cuisines": 12}]`)
	rs, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rs[0].Cuisines) != 0 || rs[0].Cuisines == nil {
		t.Errorf("cuisines = %v, want empty slice", rs[0].Cuisines)
	}
}

func TestParseDuplicateID(t *testing.T) {
	data := []byte(`[
		{"id": 1, "name": "A", "rating": 4.0},
		{"id": 1, "name": "B", "rating": 3.0}
	]`)
	if _, err := Parse(data); err == nil {
		t.Fatal("Parse accepted duplicate ids")
	}
}

func TestParseClampsRating(t *testing.T) {
	data := []byte(`[{"id": 3, "name": "C", "rating": 6.2}]`)
	rs, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rs[0].Rating != 5 {
		t.Errorf("rating = %v, want 5", rs[0].Rating)
	}
}

func TestParseSkipsNameless(t *testing.T) {
	data := []byte(`[
		{"id": 1, "rating": 4.0},
		{"id": 2, "name": "Keeps", "rating": 4.0}
	]`)
	rs, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rs) != 1 || rs[0].ID != 2 {
		t.Errorf("got %v, want only id 2", rs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Load of missing file succeeded")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	body := `[{"id": 1, "name": "Warung", "rating": 4.2, "location": "Kuta",
		"cuisines": ["seafood"], "features": [], "preferences": []}]`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	rs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rs) != 1 || rs[0].Location != "Kuta" {
		t.Errorf("unexpected catalog %v", rs)
	}
}

func TestComputeStats(t *testing.T) {
	rs := []Restaurant{
		{ID: 1, Name: "A", Rating: 4.0, Location: "Kuta", Cuisines: []string{"pizza", "pasta"}, Features: []string{"wifi"}},
		{ID: 2, Name: "B", Rating: 5.0, Location: "Senggigi", Cuisines: []string{"pizza"}, Features: []string{"wifi", "bar"}},
		{ID: 3, Name: "C", Rating: 3.0, Location: "Kuta"},
	}
	s := ComputeStats(rs)
	if s.TotalRestaurants != 3 {
		t.Errorf("total = %d", s.TotalRestaurants)
	}
	if s.AverageRating != 4.0 {
		t.Errorf("average rating = %v", s.AverageRating)
	}
	if s.UniqueCuisines != 2 {
		t.Errorf("unique cuisines = %d", s.UniqueCuisines)
	}
	if s.UniqueFeatures != 2 {
		t.Errorf("unique features = %d", s.UniqueFeatures)
	}
	if s.UniqueLocations != 2 {
		t.Errorf("unique locations = %d", s.UniqueLocations)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	if s.TotalRestaurants != 0 || s.AverageRating != 0 {
		t.Errorf("empty stats = %+v", s)
	}
}

func TestFindByID(t *testing.T) {
	rs := []Restaurant{{ID: 1, Name: "A"}, {ID: 9, Name: "B"}}
	r, err := FindByID(rs, 9)
	if err != nil || r.Name != "B" {
		t.Errorf("FindByID(9) = %v, %v", r, err)
	}
	if _, err := FindByID(rs, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID(42) err = %v, want ErrNotFound", err)
	}
}
