// Package match filters companies against the locations found in a resume.
package match

import (
	"regexp"
	"strings"

	"github.com/nlpjobsfinder/jobs-finder/models"
)

// Classifier splits text into places. *location.Parser implements it.
type Classifier interface {
	Parse(text string) (models.Locations, error)
}

// Profile is what a resume says about where its owner has worked.
type Profile struct {
	Locations           []string `json:"locations"`
	HasRemoteExperience bool     `json:"hasRemoteExperience"`
}

// Result is a profile and the companies it matched.
type Result struct {
	Profile   Profile          `json:"profile"`
	Companies []models.Company `json:"companies"`
}

var (
	sectionStart = regexp.MustCompile(`(?i)\b(?:experience|work|employment|history)\b`)
	sectionEnd   = regexp.MustCompile(`(?i)\b(?:education|skills|projects|achievements)\b`)

	remoteExperience = regexp.MustCompile(`(?i)\b(?:remote|remotely|virtual|work from home|telecommute|distributed team)\b`)

	countryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:united states|usa|u\.s\.a|america)\b`),
		regexp.MustCompile(`(?i)\b(?:uk|united kingdom|great britain)\b`),
	}

	punctuation = strings.NewReplacer(".", "", ",", "")
)

// minLocationLen drops two-letter fragments such as "uk" or "ny", which would
// otherwise match inside unrelated place names.
const minLocationLen = 3

// Normalize lower-cases and trims a location and strips periods and commas.
func Normalize(location string) string {
	return punctuation.Replace(strings.ToLower(strings.TrimSpace(location)))
}

// SplitLocation splits a company location on "/" and ";" and normalizes
// each part. Empty parts are dropped.
func SplitLocation(location string) []string {
	parts := strings.FieldsFunc(location, func(r rune) bool { return r == '/' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := strings.TrimSpace(Normalize(p)); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// IsLocationMatch reports whether any profile location and any part of the
// company location contain one another. An empty profile matches everything.
func IsLocationMatch(profileLocations []string, companyLocation string) bool {
	if len(profileLocations) == 0 {
		return true
	}
	parts := SplitLocation(companyLocation)
	for _, want := range profileLocations {
		for _, part := range parts {
			if strings.Contains(part, want) || strings.Contains(want, part) {
				return true
			}
		}
	}
	return false
}

// ExperienceSection returns the text from the first work history heading up
// to the next education, skills, projects or achievements heading. Text
// without a heading is returned whole.
func ExperienceSection(text string) string {
	start := sectionStart.FindStringIndex(text)
	if start == nil {
		return text
	}
	if end := sectionEnd.FindStringIndex(text[start[1]:]); end != nil {
		return text[start[0] : start[1]+end[0]]
	}
	return text[start[0]:]
}

// ExtractProfile reads the experience section of resume text. Places come
// from the classifier's countries and cities plus explicit US and UK
// mentions, normalized and deduplicated in first-seen order.
func ExtractProfile(text string, classifier Classifier) (Profile, error) {
	section := ExperienceSection(text)

	locs, err := classifier.Parse(section)
	if err != nil {
		return Profile{}, err
	}

	p := Profile{
		Locations:           []string{},
		HasRemoteExperience: remoteExperience.MatchString(section),
	}
	seen := map[string]bool{}
	add := func(place string) {
		n := Normalize(place)
		if len(n) < minLocationLen || seen[n] {
			return
		}
		seen[n] = true
		p.Locations = append(p.Locations, n)
	}

	for _, place := range locs.Cities {
		add(place)
	}
	for _, place := range locs.Countries {
		add(place)
	}
	for _, re := range countryPatterns {
		for _, m := range re.FindAllString(section, -1) {
			add(m)
		}
	}
	return p, nil
}

// Filter keeps the companies whose location matches the profile, plus remote
// companies when the profile has remote experience or includeRemote is set.
// Input order is kept.
func Filter(companies []models.Company, p Profile, includeRemote bool) []models.Company {
	wantRemote := p.HasRemoteExperience || includeRemote

	out := []models.Company{}
	for _, c := range companies {
		if IsLocationMatch(p.Locations, c.Location) {
			out = append(out, c)
			continue
		}
		if wantRemote && strings.Contains(strings.ToLower(c.Location), "remote") {
			out = append(out, c)
		}
	}
	return out
}
