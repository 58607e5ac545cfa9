// Package classify tags companies with a job type and region from the words
// in their description and location.
package classify

import (
	"strings"
	"unicode"

	"github.com/nlpjobsfinder/jobs-finder/models"
)

var (
	remoteTerms   = []string{"remote", "work from home", "telecommute", "virtual", "anywhere"}
	hybridTerms   = []string{"hybrid", "flexible", "partially remote"}
	usaTerms      = []string{"usa", "united states", "kentucky"}
	ukTerms       = []string{"england", "uk", "united kingdom", "kent", "london", "manchester"}
	kentuckyTerms = []string{"kentucky", "ky"}
)

// words lower-cases text and joins its letter/digit runs with single spaces,
// padded so a term matches as " term ".
func words(text string) string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return " " + strings.Join(fields, " ") + " "
}

func hasAny(joined string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(joined, " "+term+" ") {
			return true
		}
	}
	return false
}

// Classify derives the job type and region of one company. Terms match whole
// words, and multiword terms match consecutive words, so "work-from-home"
// counts but "virtualization" does not.
//
// Hybrid wins over remote. The region is USA before UK, else Unknown.
// IsKentucky looks at the location only.
func Classify(description, location string) models.Classification {
	all := words(description + " " + location)

	c := models.Classification{
		JobType:    models.JobTypeOnSite,
		Region:     models.RegionUnknown,
		IsRemote:   hasAny(all, remoteTerms),
		IsKentucky: hasAny(words(location), kentuckyTerms),
	}

	switch {
	case hasAny(all, hybridTerms):
		c.JobType = models.JobTypeHybrid
	case c.IsRemote:
		c.JobType = models.JobTypeRemote
	}

	switch {
	case hasAny(all, usaTerms):
		c.Region = models.RegionUSA
	case hasAny(all, ukTerms):
		c.Region = models.RegionUK
	}
	return c
}

// Companies returns a copy of companies with the classification fields set.
func Companies(companies []models.Company) []models.Company {
	out := make([]models.Company, len(companies))
	for i, c := range companies {
		cl := Classify(c.Description, c.Location)
		c.JobType = cl.JobType
		c.Region = cl.Region
		c.IsRemote = cl.IsRemote
		c.IsKentucky = cl.IsKentucky
		out[i] = c
	}
	return out
}

// JobTypeCounts tallies classified companies by job type.
func JobTypeCounts(companies []models.Company) map[string]int {
	counts := make(map[string]int)
	for _, c := range companies {
		if c.JobType != "" {
			counts[c.JobType]++
		}
	}
	return counts
}
