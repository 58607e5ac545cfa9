package search

import (
	"errors"
	"testing"

	"github.com/nlpjobsfinder/jobs-finder/models"
	"github.com/nlpjobsfinder/jobs-finder/pkg/location"
	"github.com/nlpjobsfinder/jobs-finder/pkg/ner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassifier returns canned Locations per input string and counts calls.
type stubClassifier struct {
	byText map[string]models.Locations
	calls  int
	err    error
}

func (s *stubClassifier) Parse(text string) (models.Locations, error) {
	s.calls++
	if s.err != nil {
		return models.Locations{}, s.err
	}
	if locs, ok := s.byText[text]; ok {
		return locs, nil
	}
	return models.NewLocations(), nil
}

func names(results []models.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Company
	}
	return out
}

var companies = []models.Company{
	{Name: "Acme", Location: "Louisville, Kentucky", Description: "Widgets"},
	{Name: "Globex", Location: "Berlin, Germany", Description: "Chemicals"},
	{Name: "Initech", Location: "Remote (US-only)", Description: "TPS reports"},
	{Name: "Hooli", Location: "Mountain View, CA", Description: "Search"},
	{Name: "Kentuckiana", Location: "Kentuckiana region", Description: ""},
}

func TestByLocation_RegexMatch(t *testing.T) {
	stub := &stubClassifier{}

	got, err := ByLocation(companies, "Kentucky", stub)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, models.SearchResult{
		Company:     "Acme",
		Location:    "Louisville, Kentucky",
		Description: "Widgets",
		MatchKind:   models.MatchKindRegex,
	}, got[0])
	// Every other company went through the classifier.
	assert.Equal(t, len(companies)-1, stub.calls)
}

func TestByLocation_WholeWordOnly(t *testing.T) {
	got, err := ByLocation(companies, "kentuck", &stubClassifier{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestByLocation_NonASCIIWholeWord(t *testing.T) {
	list := []models.Company{
		{Name: "Sweden Co", Location: "Malmö, Sweden"},
		{Name: "Paris Co", Location: "Île-de-France (hybrid)"},
		{Name: "Longer Co", Location: "Malmöhus"},
		{Name: "Prefix Co", Location: "Seine-et-Île"},
	}

	got, err := ByLocation(list, "malmö", &stubClassifier{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sweden Co"}, names(got))

	got, err = ByLocation(list, "ÎLE-DE-FRANCE", &stubClassifier{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris Co"}, names(got))
	assert.Equal(t, models.MatchKindRegex, got[0].MatchKind)

	got, err = ByLocation(list, "île", &stubClassifier{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris Co", "Prefix Co"}, names(got))
}

func TestByLocation_ClassifiedMatch(t *testing.T) {
	stub := &stubClassifier{byText: map[string]models.Locations{
		"Mountain View, CA": {Cities: []string{"Mountain View"}, Countries: []string{}, CustomTerms: []string{}},
		"Remote (US-only)":  {Countries: []string{"United States"}, Cities: []string{}, CustomTerms: []string{"Remote"}},
	}}

	got, err := ByLocation(companies, "united states", stub)
	require.NoError(t, err)
	assert.Equal(t, []string{"Initech"}, names(got))
	assert.Equal(t, models.MatchKindClassified, got[0].MatchKind)
}

func TestByLocation_QueryIsNormalised(t *testing.T) {
	got, err := ByLocation(companies, "  GERMANY ", &stubClassifier{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Globex"}, names(got))
}

func TestByLocation_RegexMetacharacters(t *testing.T) {
	list := []models.Company{
		{Name: "Dotted", Location: "St. Louis, MO"},
		{Name: "Plain", Location: "Stx Louis, MO"},
	}
	got, err := ByLocation(list, "st. louis", &stubClassifier{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dotted"}, names(got))
}

func TestByLocation_EmptyQuery(t *testing.T) {
	stub := &stubClassifier{}
	got, err := ByLocation(companies, "   ", stub)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, stub.calls)
}

func TestByLocation_ClassifierError(t *testing.T) {
	boom := errors.New("ner failed")
	_, err := ByLocation(companies, "Paris", &stubClassifier{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestByLocation_KeepsInputOrderAndDuplicates(t *testing.T) {
	list := []models.Company{
		{Name: "B", Location: "Remote"},
		{Name: "A", Location: "remote, worldwide"},
		{Name: "B", Location: "Remote"},
	}
	got, err := ByLocation(list, "remote", &stubClassifier{})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "B"}, names(got))
}

func TestByLocation_WithLocationParser(t *testing.T) {
	list := []models.Company{
		{Name: "Onsite Co", Location: "Onsite only"},
		{Name: "Office Co", Location: "Chicago"},
	}
	parser := location.NewParser(ner.NewGazetteer())

	// "on-site" never occurs literally, the keyword scan maps "onsite" to it.
	got, err := ByLocation(list, "On-site", parser)
	require.NoError(t, err)
	assert.Equal(t, []string{"Onsite Co"}, names(got))
}
