package textscan

import (
	"regexp"
	"sort"
	"strings"
)

var (
	fragmentSplit = regexp.MustCompile(`[,.;:\n\t()]`)
	nameToken     = regexp.MustCompile(`^[A-Z][a-zñáéíóúü]+$`)
)

// Candidate is a potential person-name mention found in description text.
type Candidate struct {
	Text      string
	MultiWord bool
}

// ExtractNames scans free text for capitalized words and runs of capitalized
// words, which in the show notes usually correspond to people. The text is
// split on punctuation first so sentence boundaries cannot bridge two
// unrelated names into one run. Results are deduplicated and sorted for
// stable output; a candidate seen both alone and inside a run keeps both
// forms.
func ExtractNames(text string) []Candidate {
	seen := make(map[string]bool)
	for _, fragment := range fragmentSplit.Split(text, -1) {
		tokens := strings.Fields(fragment)
		run := 0
		flush := func(end int) {
			if run >= 2 {
				seen[strings.Join(tokens[end-run:end], " ")] = true
			}
			run = 0
		}
		for i, token := range tokens {
			if !nameToken.MatchString(token) {
				flush(i)
				continue
			}
			seen[token] = false
			run++
		}
		flush(len(tokens))
	}

	candidates := make([]Candidate, 0, len(seen))
	for text, multi := range seen {
		candidates = append(candidates, Candidate{Text: text, MultiWord: multi})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Text < candidates[j].Text })
	return candidates
}

// HasMultiWord reports whether at least one candidate spans several words.
func HasMultiWord(candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(c, " ") {
			return true
		}
	}
	return false
}
