// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package entity

import "sort"

// Category identifies one extraction category. Listed in descending
// match priority: a query span consumed by a higher category is never
// re-attributed to a lower one.
type Category string

const (
	CategoryLocation Category = "location"
	CategoryCuisine  Category = "cuisine"
	CategoryMood     Category = "mood"
	CategoryPrice    Category = "price"
	CategoryFeature  Category = "feature"
)

// categoryOrder is the span-consumption priority.
var categoryOrder = []Category{
	CategoryLocation,
	CategoryCuisine,
	CategoryMood,
	CategoryPrice,
	CategoryFeature,
}

// canonicalKeywords holds, per category, the canonical vocabulary. The
// lists cover the Lombok/Gili service area and the cuisine and amenity
// vocabulary of the catalog.
var canonicalKeywords = map[Category][]string{
	CategoryLocation: {
		"kuta", "senggigi", "gili trawangan", "gili air", "gili meno",
		"gili indah", "gili", "mataram", "lombok", "pemenang",
		"sunset boulevard", "kelapa road", "jalan bambu",
		"west nusa tenggara", "north lombok regency",
	},
	CategoryCuisine: {
		"western", "asian", "italian", "japanese", "indonesian",
		"korean", "chinese", "thai", "mexican", "indian",
		"mediterranean", "european", "spanish", "polynesian",
		"hawaiian", "fusion", "international", "contemporary",
		"pizza", "sushi", "seafood", "steak", "barbecue", "grill",
		"pasta", "burger", "salad", "curry", "noodles", "soup",
		"ramen", "tacos", "sandwich", "coffee", "healthy",
		"street food", "fast food", "bar", "cafe", "pub",
	},
	CategoryMood: {
		"santai", "pesta", "keluarga", "romantis", "pemandangan",
		"matahari terbenam", "populer", "live music", "tepi pantai",
		"instagramable", "outdoor", "indoor", "rooftop", "beachfront",
		"vegetarian", "vegan", "sea view", "fire show",
	},
	CategoryPrice: {
		"murah", "mahal",
	},
	CategoryFeature: {
		"wifi", "reservasi", "delivery", "takeaway", "parking",
		"credit card", "outdoor seating", "happy hour", "buffet",
		"halal", "full bar", "table service", "wheelchair accessible",
		"cash only", "serves alcohol", "digital payments",
	},
}

// synonymTable maps a canonical term to its accepted surface forms.
// A synonym hit records both the canonical term and the literal form.
var synonymTable = map[Category]map[string][]string{
	CategoryLocation: {
		"gili trawangan": {"gili t"},
		"kuta":           {"kuta lombok"},
		"gili":           {"gili islands"},
	},
	CategoryCuisine: {
		"italian":    {"italy", "italia", "lasagna", "risotto"},
		"japanese":   {"jepang", "tempura", "teriyaki"},
		"indonesian": {"indonesia", "nasi goreng", "sate", "rendang", "gado gado"},
		"korean":     {"korea"},
		"chinese":    {"cina", "dim sum", "fried rice", "dumplings"},
		"european":   {"eropa"},
		"mexican":    {"meksiko", "taco", "burrito", "quesadilla", "nachos"},
		"thai":       {"pad thai", "tom yum"},
		"coffee":     {"kopi"},
		"barbecue":   {"barbeku", "bbq", "iga"},
		"seafood":    {"fish", "shrimp", "lobster", "ikan bakar"},
		"noodles":    {"mie", "bakmi"},
		"steak":      {"wagyu"},
	},
	CategoryMood: {
		"romantis":          {"romantic"},
		"keluarga":          {"family", "family friendly"},
		"santai":            {"relax", "chill", "cozy"},
		"pemandangan":       {"view", "scenic"},
		"matahari terbenam": {"sunset"},
		"tepi pantai":       {"beach", "pantai", "beachside"},
		"pesta":             {"party"},
		"populer":           {"popular", "hits"},
	},
	CategoryPrice: {
		"murah": {"terjangkau", "budget", "hemat", "ekonomis", "cheap", "affordable"},
		"mahal": {"mewah", "premium", "expensive", "luxury", "fancy", "high end"},
	},
	CategoryFeature: {
		"wifi":             {"free wifi", "internet"},
		"reservasi":        {"reservation", "reservations", "booking"},
		"takeaway":         {"takeout", "bungkus"},
		"parking":          {"parkir", "parking available", "street parking"},
		"credit card":      {"accepts credit cards", "kartu kredit", "mastercard", "visa"},
		"outdoor seating":  {"teras", "terrace"},
		"delivery":         {"antar", "diantar"},
		"serves alcohol":   {"wine and beer", "cocktails"},
		"digital payments": {"qris", "cashless"},
	},
}

// Expand returns all surface forms that count as a match for the given
// term within a category: the term itself plus, when the term is
// canonical, its synonyms. Lookup keys are expected in normalized form.
func Expand(cat Category, term string) []string {
	forms := []string{term}
	if syns, ok := synonymTable[cat][term]; ok {
		forms = append(forms, syns...)
	}
	return forms
}

// keywordEntry is one matchable surface form.
type keywordEntry struct {
	text      string
	canonical string // equals text for canonical entries
}

// buildEntries flattens canonical keywords and synonyms into one list
// per category, sorted longest-first so multi-word phrases win over
// their component words.
func buildEntries() map[Category][]keywordEntry {
	out := make(map[Category][]keywordEntry, len(canonicalKeywords))
	for cat, keywords := range canonicalKeywords {
		entries := make([]keywordEntry, 0, len(keywords)*2)
		for _, kw := range keywords {
			entries = append(entries, keywordEntry{text: kw, canonical: kw})
			for _, syn := range synonymTable[cat][kw] {
				entries = append(entries, keywordEntry{text: syn, canonical: kw})
			}
		}
		sortEntriesLongestFirst(entries)
		out[cat] = entries
	}
	return out
}

// sortEntriesLongestFirst orders entries by descending length; table
// order is preserved among equal lengths.
func sortEntriesLongestFirst(entries []keywordEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].text) > len(entries[j].text)
	})
}
