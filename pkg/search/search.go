// Package search filters company records by a location query.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nlpjobsfinder/jobs-finder/models"
)

// Classifier splits a location string into places. *location.Parser
// implements it.
type Classifier interface {
	Parse(text string) (models.Locations, error)
}

// Whole-word delimiters. RE2's \b is ASCII only, these count any Unicode
// letter or digit as a word character.
const (
	wordBoundary    = `(?:^|[^\p{L}\p{N}_])`
	wordBoundaryEnd = `(?:$|[^\p{L}\p{N}_])`
)

// ByLocation returns the companies whose location matches query, in input
// order. A company matches when the query occurs as a whole word in its
// location, or, failing that, when the classifier reports the query as one of
// the location's countries, cities or custom terms. An empty query matches
// nothing.
func ByLocation(companies []models.Company, query string, classifier Classifier) ([]models.SearchResult, error) {
	results := []models.SearchResult{}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return results, nil
	}
	wholeWord, err := regexp.Compile(wordBoundary + regexp.QuoteMeta(query) + wordBoundaryEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid location query %q: %w", query, err)
	}

	for _, c := range companies {
		if wholeWord.MatchString(strings.ToLower(c.Location)) {
			results = append(results, models.NewSearchResult(c, models.MatchKindRegex))
			continue
		}

		locs, err := classifier.Parse(c.Location)
		if err != nil {
			return nil, fmt.Errorf("failed to classify location of %q: %w", c.Name, err)
		}
		if containsFold(locs.Countries, query) || containsFold(locs.Cities, query) || containsFold(locs.CustomTerms, query) {
			results = append(results, models.NewSearchResult(c, models.MatchKindClassified))
		}
	}

	return results, nil
}

// containsFold reports whether any item lower-cased equals the already
// lower-cased needle.
func containsFold(items []string, needle string) bool {
	for _, item := range items {
		if strings.ToLower(item) == needle {
			return true
		}
	}
	return false
}
