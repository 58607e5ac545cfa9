package match

import (
	"errors"
	"strings"
	"testing"

	"github.com/nlpjobsfinder/jobs-finder/models"
	"github.com/nlpjobsfinder/jobs-finder/pkg/location"
	"github.com/nlpjobsfinder/jobs-finder/pkg/ner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingClassifier returns fixed Locations and remembers its input.
type recordingClassifier struct {
	locs models.Locations
	err  error
	got  string
}

func (r *recordingClassifier) Parse(text string) (models.Locations, error) {
	r.got = text
	return r.locs, r.err
}

const resume = `Jane Doe
Backend engineer.

EXPERIENCE
Acme Corp, Louisville, Kentucky. Worked remotely with a distributed team.
Globex, Manchester, UK

EDUCATION
University of Hamburg, Germany
`

func TestNormalize(t *testing.T) {
	assert.Equal(t, "st louis mo", Normalize("  St. Louis, MO "))
	assert.Equal(t, "", Normalize(" , . "))
}

func TestSplitLocation(t *testing.T) {
	assert.Equal(t, []string{"st louis mo", "remote"}, SplitLocation("St. Louis, MO / Remote;;"))
	assert.Empty(t, SplitLocation(" / ; "))
}

func TestIsLocationMatch(t *testing.T) {
	tests := []struct {
		name     string
		profile  []string
		location string
		want     bool
	}{
		{name: "empty profile matches anything", profile: nil, location: "Tokyo", want: true},
		{name: "company part contains profile place", profile: []string{"kentucky"}, location: "Louisville, Kentucky", want: true},
		{name: "profile place contains company part", profile: []string{"new york city"}, location: "New York / Remote", want: true},
		{name: "second segment", profile: []string{"hamburg"}, location: "Munich; Hamburg", want: true},
		{name: "no overlap", profile: []string{"berlin"}, location: "Munich; Hamburg", want: false},
		{name: "empty segments never match", profile: []string{"ohio"}, location: " / ;", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLocationMatch(tt.profile, tt.location))
		})
	}
}

func TestExperienceSection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "no heading", text: "Just a list of places: Berlin", want: "Just a list of places: Berlin"},
		{name: "heading to next section", text: "Intro\nWORK HISTORY\nAcme\nSKILLS\nGo", want: "WORK HISTORY\nAcme\n"},
		{name: "heading to end", text: "Intro\nEmployment\nAcme, Ohio", want: "Employment\nAcme, Ohio"},
		{name: "heading inside a word is ignored", text: "Networking\nExperience\nAcme", want: "Experience\nAcme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceSection(tt.text))
		})
	}
}

func TestExtractProfile(t *testing.T) {
	c := &recordingClassifier{locs: models.Locations{
		Countries: []string{},
		Cities:    []string{"Louisville", "Kentucky", "Manchester", "Louisville"},
	}}

	p, err := ExtractProfile(resume, c)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(c.got, "EXPERIENCE"))
	assert.NotContains(t, c.got, "Hamburg")
	// "uk" is too short to keep.
	assert.Equal(t, []string{"louisville", "kentucky", "manchester"}, p.Locations)
	assert.True(t, p.HasRemoteExperience)
}

func TestExtractProfile_CountryPatterns(t *testing.T) {
	c := &recordingClassifier{locs: models.NewLocations()}

	p, err := ExtractProfile("Contractor across the U.S.A. and Great Britain, on site.", c)
	require.NoError(t, err)
	assert.Equal(t, []string{"usa", "great britain"}, p.Locations)
	assert.False(t, p.HasRemoteExperience)
}

func TestExtractProfile_ClassifierError(t *testing.T) {
	boom := errors.New("ner failed")
	_, err := ExtractProfile(resume, &recordingClassifier{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestExtractProfile_WithLocationParser(t *testing.T) {
	parser := location.NewParser(ner.NewDefaultGazetteer(nil))

	p, err := ExtractProfile(resume, parser)
	require.NoError(t, err)
	assert.Contains(t, p.Locations, "kentucky")
	assert.NotContains(t, p.Locations, "germany")
	assert.True(t, p.HasRemoteExperience)
}

func TestFilter(t *testing.T) {
	companies := []models.Company{
		{Name: "Acme", Location: "Louisville, KY"},
		{Name: "Globex", Location: "Berlin / Remote"},
		{Name: "Initech", Location: "Austin, TX"},
		{Name: "Umbrella", Location: "Manchester; London"},
	}
	names := func(cs []models.Company) []string {
		out := make([]string, len(cs))
		for i, c := range cs {
			out[i] = c.Name
		}
		return out
	}
	profile := Profile{Locations: []string{"louisville", "manchester"}}

	assert.Equal(t, []string{"Acme", "Umbrella"}, names(Filter(companies, profile, false)))
	assert.Equal(t, []string{"Acme", "Globex", "Umbrella"}, names(Filter(companies, profile, true)))

	profile.HasRemoteExperience = true
	assert.Equal(t, []string{"Acme", "Globex", "Umbrella"}, names(Filter(companies, profile, false)))

	assert.Equal(t, []string{"Acme", "Globex", "Initech", "Umbrella"}, names(Filter(companies, Profile{}, false)))

	got := Filter(nil, profile, false)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
