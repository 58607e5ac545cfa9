package mapreduce

import (
	"fmt"
	"sort"
	"strings"
)

// isValidTerm drops tokens left broken by the separator split, such as a
// dangling quote or a lone dash.
func isValidTerm(term string) bool {
	if strings.Count(term, "\"")%2 != 0 {
		return false
	}
	return strings.Trim(term, "-_.") != ""
}

// TopTerms returns the n most frequent terms formatted as "term:count"
// (e.g., "remote:312"). Ties are broken alphabetically.
func TopTerms(counts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	var ss []kv
	for k, v := range counts {
		if isValidTerm(k) {
			ss = append(ss, kv{k, v})
		}
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	terms := make([]string, limit)
	for i := 0; i < limit; i++ {
		terms[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}
	return terms
}
