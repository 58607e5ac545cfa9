// Package location classifies free-text location strings into countries,
// cities and work-arrangement terms.
package location

import (
	"fmt"
	"strings"

	"github.com/nlpjobsfinder/jobs-finder/models"
	"github.com/nlpjobsfinder/jobs-finder/pkg/country"
	"github.com/nlpjobsfinder/jobs-finder/pkg/ner"
)

// Keyword maps a lower-case work-arrangement term to the label reported for it.
type Keyword struct {
	Term  string
	Label string
}

// DefaultKeywords are scanned in this order.
var DefaultKeywords = []Keyword{
	{Term: "remote", Label: "Remote"},
	{Term: "hybrid", Label: "Hybrid"},
	{Term: "on-site", Label: "On-site"},
	{Term: "onsite", Label: "On-site"},
}

// CountryMatcher decides whether an entity names a country.
type CountryMatcher func(name string) bool

// Parser splits location text using a NER model, a country table and the
// keyword list.
type Parser struct {
	recognizer ner.Recognizer
	isCountry  CountryMatcher
	keywords   []Keyword
	byTerm     map[string]string
}

// Option customises a Parser.
type Option func(*Parser)

// WithCountryMatcher replaces the ISO country lookup.
func WithCountryMatcher(m CountryMatcher) Option {
	return func(p *Parser) {
		p.isCountry = m
	}
}

// WithKeywords replaces DefaultKeywords.
func WithKeywords(keywords []Keyword) Option {
	return func(p *Parser) {
		p.keywords = keywords
	}
}

// NewParser returns a Parser over r using the ISO country table and
// DefaultKeywords unless opts replace them.
func NewParser(r ner.Recognizer, opts ...Option) *Parser {
	p := &Parser{
		recognizer: r,
		isCountry:  country.IsCountry,
		keywords:   DefaultKeywords,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.byTerm = make(map[string]string, len(p.keywords))
	for _, k := range p.keywords {
		p.byTerm[strings.ToLower(k.Term)] = k.Label
	}
	return p
}

// Parse classifies every GPE entity in text, then appends the label of each
// keyword that occurs anywhere in text. Entities that are neither keywords nor
// countries are reported as cities. Nothing is de-duplicated.
func (p *Parser) Parse(text string) (models.Locations, error) {
	locs := models.NewLocations()

	ents, err := p.recognizer.Recognize(text)
	if err != nil {
		return locs, fmt.Errorf("entity recognition failed: %w", err)
	}

	for _, ent := range ents {
		if ent.Label != ner.LabelGPE {
			continue
		}
		if label, ok := p.byTerm[strings.ToLower(ent.Text)]; ok {
			locs.CustomTerms = append(locs.CustomTerms, label)
			continue
		}
		if p.isCountry(ent.Text) {
			locs.Countries = append(locs.Countries, ent.Text)
			continue
		}
		locs.Cities = append(locs.Cities, ent.Text)
	}

	lower := strings.ToLower(text)
	for _, k := range p.keywords {
		if strings.Contains(lower, strings.ToLower(k.Term)) {
			locs.CustomTerms = append(locs.CustomTerms, k.Label)
		}
	}

	return locs, nil
}
