// Package langdetect reports which languages the scraped descriptions use.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Unknown is the bucket for empty or undecidable text.
const Unknown = "unknown"

// minLetters keeps very short descriptions out of the detector, where its
// guesses are mostly noise.
const minLetters = 12

// Languages the company list is realistically written in.
var Languages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Dutch,
}

// Detector wraps a lingua detector restricted to Languages.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds the lingua models for Languages. Building is slow, so
// reuse one Detector per run.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(Languages...).
			Build(),
	}
}

// Detect returns the lower-case ISO 639-1 code of text, or Unknown.
func (d *Detector) Detect(text string) string {
	if letterCount(text) < minLetters {
		return Unknown
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return Unknown
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

// Distribution counts the detected language of each text.
func (d *Detector) Distribution(texts []string) map[string]int {
	counts := map[string]int{}
	for _, t := range texts {
		counts[d.Detect(t)]++
	}
	return counts
}

func letterCount(s string) int {
	n := 0
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r > 127 {
			n++
		}
	}
	return n
}
