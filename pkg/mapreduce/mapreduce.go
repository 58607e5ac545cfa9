package mapreduce

import "github.com/nlpjobsfinder/jobs-finder/pkg/analytics"

// Map generates a term frequency map for a single company location.
func Map(location string) map[string]int {
	return analytics.TermFrequency(location)
}

// Reduce aggregates a slice of term frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for term, count := range counts {
			finalResults[term] += count
		}
	}

	return finalResults
}

// LocationCounts maps every location and reduces the results.
func LocationCounts(locations []string) map[string]int {
	intermediate := make([]map[string]int, 0, len(locations))
	for _, loc := range locations {
		intermediate = append(intermediate, Map(loc))
	}
	return Reduce(intermediate)
}
