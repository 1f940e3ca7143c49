package textutil

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

var levParams = levenshtein.NewParams()

// Ratio computes a case-insensitive similarity score between a and b on a
// 0-100 scale. 100 means the lowercased strings are identical.
func Ratio(a, b string) float64 {
	return 100 * levenshtein.Similarity(strings.ToLower(a), strings.ToLower(b), levParams)
}

// Match pairs a compared string with its similarity score.
type Match struct {
	Value string
	Score float64
}

// TopMatches scores candidate against every option and returns the n best in
// descending score order. Ties keep the earlier option first, so callers that
// pass options in registration order get deterministic tie-breaks.
func TopMatches(candidate string, options []string, n int) []Match {
	matches := make([]Match, 0, len(options))
	for _, option := range options {
		matches = append(matches, Match{Value: option, Score: Ratio(candidate, option)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches
}
