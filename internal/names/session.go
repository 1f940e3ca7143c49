package names

import (
	"fmt"
	"io"
	"strconv"

	"tertulia/internal/decision"
	"tertulia/internal/textutil"
)

// SessionStats summarizes one assisted normalization pass.
type SessionStats struct {
	Reviewed     int
	SelfAliased  int
	Merged       int
	NewCanonical int
	Skipped      int
}

// AssistedNormalization reviews every raw unique name that has not been
// mapped yet. For each, the closest three canonical names are offered:
// answering with a digit selects that suggestion, free text declares a new
// canonical spelling, and an empty answer keeps the name as its own
// canonical. Names picked as targets become canonical immediately, so later
// reviews in the same session can select them.
func (r *Registry) AssistedNormalization(dec decision.Provider, out io.Writer) SessionStats {
	var stats SessionStats
	for _, name := range r.raw {
		if _, reviewed := r.AliasTarget(name); reviewed {
			stats.Skipped++
			continue
		}
		if r.IsCanonical(name) {
			stats.Skipped++
			continue
		}
		stats.Reviewed++

		options := make([]string, 0, r.Len())
		for _, canonical := range r.canonical {
			if canonical != name {
				options = append(options, canonical)
			}
		}
		if len(options) == 0 {
			r.AddAlias(name, name)
			stats.SelfAliased++
			continue
		}

		matches := textutil.TopMatches(name, options, 3)
		fmt.Fprintf(out, "\nName: %s\n", name)
		for i, m := range matches {
			fmt.Fprintf(out, "  [%d] %s (score: %.0f)\n", i+1, m.Value, m.Score)
		}

		answer := dec.Input("Normalize as (1-3, new name, Enter keeps as canonical)", "")
		switch {
		case answer == "":
			r.AddAlias(name, name)
			stats.SelfAliased++
		case isSelection(answer, len(matches)):
			idx, _ := strconv.Atoi(answer)
			r.AddAlias(name, matches[idx-1].Value)
			stats.Merged++
		default:
			if !r.IsCanonical(answer) {
				stats.NewCanonical++
			}
			r.AddAlias(name, answer)
			stats.Merged++
		}
	}
	return stats
}

func isSelection(answer string, n int) bool {
	idx, err := strconv.Atoi(answer)
	return err == nil && idx >= 1 && idx <= n
}
