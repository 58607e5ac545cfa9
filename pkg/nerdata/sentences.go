package nerdata

import (
	"fmt"

	"github.com/nlpjobsfinder/jobs-finder/models"
)

// Sentences renders each company as a short sentence for annotation tools.
func Sentences(companies []models.Company) []string {
	out := make([]string, 0, len(companies))
	for _, c := range companies {
		out = append(out, fmt.Sprintf("This location %s description: %s", c.Location, c.Description))
	}
	return out
}
