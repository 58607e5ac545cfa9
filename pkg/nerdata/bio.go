// Package nerdata builds token-level training data for a location NER model.
package nerdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/nlpjobsfinder/jobs-finder/models"
)

// NormalWords are interview-process terms appended once, labelled O, so the
// model sees hyphenated non-location tokens.
var NormalWords = []string{
	"intro-call", "technical-round", "take-home-project", "in-person-interview",
	"HR-round", "values-round", "real-world-problems", "screening",
	"coding-test", "behavioral-interview", "case-study", "panel-interview",
	"remote-interview", "onsite-interview", "technical-discussion",
	"problem-solving-round", "system-design", "cultural-fit",
	"skills-assessment", "phone-screen", "video-call", "mock-project",
	"whiteboarding-session", "portfolio-review", "aptitude-test",
	"team-collaboration", "project-discussion", "coding-challenge",
	"experience-evaluation", "background-check", "final-round",
	"feedback-session", "live-coding", "role-specific-round",
	"scenario-based-questions", "cognitive-assessment", "structured-interview",
	"project-presentation", "leadership-round", "peer-discussion",
	"competency-assessment", "problem-analysis", "technical-assessment",
	"engineering-challenge", "code-review", "technical-fit",
	"role-alignment", "interaction-round", "decision-making-round",
	"offer-discussion", "reference-check",
}

// Tokens tags one city row: city words as City, country words as Country,
// iso3 words as State, then a trailing "remote" tagged as a country.
func Tokens(c models.City) []models.TokenLabel {
	var out []models.TokenLabel
	out = appendSpan(out, c.City, models.LabelBCity, models.LabelICity)
	out = appendSpan(out, c.Country, models.LabelBCountry, models.LabelICountry)
	out = appendSpan(out, c.ISO3, models.LabelBState, models.LabelIState)
	return append(out, models.TokenLabel{Token: "remote", Label: models.LabelBCountry})
}

func appendSpan(out []models.TokenLabel, text, begin, inside string) []models.TokenLabel {
	for i, word := range strings.Fields(text) {
		label := inside
		if i == 0 {
			label = begin
		}
		out = append(out, models.TokenLabel{Token: word, Label: label})
	}
	return out
}

// Build tags every row in order and finishes with NormalWords.
func Build(rows []models.City) []models.TokenLabel {
	var out []models.TokenLabel
	for _, c := range rows {
		out = append(out, Tokens(c)...)
	}
	for _, w := range NormalWords {
		out = append(out, models.TokenLabel{Token: w, Label: models.LabelOutside})
	}
	return out
}

// WriteCSV writes the pairs with a Token,Label header.
func WriteCSV(w io.Writer, pairs []models.TokenLabel) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Token", "Label"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range pairs {
		if err := writer.Write([]string{p.Token, p.Label}); err != nil {
			return fmt.Errorf("failed to write token %q: %w", p.Token, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
