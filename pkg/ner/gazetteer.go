package ner

import (
	"strings"
	"unicode"

	"github.com/nlpjobsfinder/jobs-finder/models"
	"github.com/nlpjobsfinder/jobs-finder/pkg/country"
)

// usStates lists the US states and DC. Location strings in the company list
// name states far more often than cities.
var usStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "District of Columbia", "Florida", "Georgia",
	"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas", "Kentucky",
	"Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
	"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota",
	"Ohio", "Oklahoma", "Oregon", "Pennsylvania", "Rhode Island",
	"South Carolina", "South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

// Gazetteer is a dictionary recognizer. Every known place name found in the
// text is emitted as a GPE entity, preferring the longest match at each
// position.
type Gazetteer struct {
	names    map[string]struct{}
	maxWords int
}

// NewGazetteer builds a gazetteer over the given names only.
func NewGazetteer(names ...string) *Gazetteer {
	g := &Gazetteer{names: map[string]struct{}{}}
	g.Add(names...)
	return g
}

// NewDefaultGazetteer builds a gazetteer over country names, US states and the
// city, region and country columns of the given rows.
func NewDefaultGazetteer(cities []models.City) *Gazetteer {
	g := NewGazetteer(country.Names()...)
	g.Add(usStates...)
	for _, c := range cities {
		g.Add(c.City, c.CityASCII, c.AdminName, c.Country)
	}
	return g
}

// Add registers more names. Matching is case-insensitive.
func (g *Gazetteer) Add(names ...string) {
	for _, name := range names {
		words := strings.Fields(strings.ToLower(name))
		if len(words) == 0 {
			continue
		}
		g.names[strings.Join(words, " ")] = struct{}{}
		if len(words) > g.maxWords {
			g.maxWords = len(words)
		}
	}
}

// Len returns the number of distinct names.
func (g *Gazetteer) Len() int {
	return len(g.names)
}

// Recognize scans text word by word and emits a GPE entity for the longest
// known name starting at each position. Matching ignores case.
func (g *Gazetteer) Recognize(text string) ([]Entity, error) {
	spans := wordSpans(text)
	var out []Entity

	for i := 0; i < len(spans); {
		matched := 0
		limit := g.maxWords
		if rest := len(spans) - i; rest < limit {
			limit = rest
		}
		for n := limit; n > 0; n-- {
			if _, ok := g.names[joinLower(text, spans[i:i+n])]; ok {
				matched = n
				break
			}
		}
		if matched == 0 {
			i++
			continue
		}
		start, end := spans[i].start, spans[i+matched-1].end
		out = append(out, Entity{Text: text[start:end], Label: LabelGPE})
		i += matched
	}
	return out, nil
}

type span struct {
	start, end int
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '\''
}

// wordSpans returns byte offsets of the words in text.
func wordSpans(text string) []span {
	var spans []span
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			spans = append(spans, span{start, i})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, span{start, len(text)})
	}
	return spans
}

func joinLower(text string, spans []span) string {
	words := make([]string, len(spans))
	for i, s := range spans {
		words[i] = strings.ToLower(text[s.start:s.end])
	}
	return strings.Join(words, " ")
}
