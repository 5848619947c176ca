// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

package textproc

// stopwords covers the Indonesian function words that dominate
// conversational queries plus the handful of English ones that show up
// in mixed-language input. Domain words ("murah", "enak") are kept on
// purpose; they carry signal downstream.
var stopwords = map[string]struct{}{
	// Indonesian
	"ada": {}, "adalah": {}, "agar": {}, "akan": {}, "aku": {},
	"anda": {}, "apa": {}, "atau": {}, "bagaimana": {}, "bahwa": {},
	"banyak": {}, "bisa": {}, "boleh": {}, "buat": {}, "cari": {},
	"dan": {}, "dari": {}, "dekat": {}, "dengan": {}, "di": {},
	"dia": {}, "dong": {}, "ini": {}, "itu": {}, "jadi": {},
	"jika": {}, "juga": {}, "kah": {}, "kami": {}, "kamu": {},
	"karena": {}, "ke": {}, "kita": {}, "lagi": {}, "lah": {},
	"mau": {}, "mereka": {}, "minta": {}, "mohon": {}, "nya": {},
	"pada": {}, "para": {}, "saja": {}, "sama": {}, "saya": {},
	"sebuah": {}, "sekitar": {}, "semua": {}, "si": {}, "sih": {},
	"suatu": {}, "tapi": {}, "telah": {}, "tempat": {}, "tentang": {},
	"tolong": {}, "untuk": {}, "yang": {},

	// English
	"a": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"at": {}, "best": {}, "can": {}, "find": {}, "for": {},
	"i": {}, "in": {}, "is": {}, "me": {}, "my": {},
	"near": {}, "of": {}, "on": {}, "or": {}, "place": {},
	"please": {}, "some": {}, "the": {}, "to": {}, "want": {},
	"what": {}, "where": {}, "with": {}, "you": {},
}

func isStopword(tok string) bool {
	_, ok := stopwords[tok]
	return ok
}
