// Package analytics counts the location terms used across the company list.
package analytics

import (
	"strings"
	"unicode"
)

// fillerWords are connectives that show up between place names in
// free-text locations ("Berlin or Remote", "US only").
var fillerWords = map[string]struct{}{
	"and": {}, "or": {}, "in": {}, "only": {}, "the": {}, "of": {},
	"etc": {}, "area": {}, "based": {}, "anywhere": {},
}

// IsFiller reports whether term carries no place information on its own.
func IsFiller(term string) bool {
	_, ok := fillerWords[strings.ToLower(term)]
	return ok
}

func isSeparator(r rune) bool {
	switch r {
	case ',', '/', ';', '|', '(', ')', '&', '+':
		return true
	}
	return false
}

// TermFrequency splits a location string on its separators and counts the
// lower-cased segments. "Berlin, Germany / Remote" gives berlin, germany and
// remote once each.
func TermFrequency(location string) map[string]int {
	frequencies := make(map[string]int)

	for _, segment := range strings.FieldsFunc(strings.ToLower(location), isSeparator) {
		// Drop filler words at the edges so "or remote" counts as "remote".
		words := strings.Fields(segment)
		for len(words) > 0 && IsFiller(words[0]) {
			words = words[1:]
		}
		for len(words) > 0 && IsFiller(words[len(words)-1]) {
			words = words[:len(words)-1]
		}

		term := strings.TrimFunc(strings.Join(words, " "), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if term == "" {
			continue
		}
		frequencies[term]++
	}

	return frequencies
}
