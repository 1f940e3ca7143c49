package complete

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"tertulia/internal/decision"
	"tertulia/internal/episode"
	"tertulia/internal/logging"
	"tertulia/internal/names"
	"tertulia/internal/textscan"
)

// GuestStats summarizes one guest completion pass.
type GuestStats struct {
	PartsMissing      int
	PartsUpdated      int
	GuestsAdded       int
	SkippedSingleWord int
}

// Contertulios proposes guest names for every part that has a description
// but no guest list. Candidates extracted from the text are resolved against
// the registry; a canonical name is only suggested when its evidence is not
// a lone single-word mention and includes at least one multi-word mention.
// Each surviving suggestion is confirmed individually: "y" accepts (the
// default), "n" skips it, "q" skips the rest of the part.
func Contertulios(episodes []episode.Episode, reg *names.Registry, threshold float64, dec decision.Provider, out io.Writer, log *slog.Logger) GuestStats {
	var stats GuestStats

	for e := range episodes {
		for p := range episodes[e].Parts {
			part := &episodes[e].Parts[p]
			if len(part.Contertulios) > 0 || part.RawDescription == "" {
				continue
			}
			stats.PartsMissing++

			suggestions, skipped := suggestGuests(part.RawDescription, reg, threshold)
			stats.SkippedSingleWord += skipped
			if len(suggestions) == 0 {
				log.Debug("no guest suggestions", logging.String("part", part.EpisodeID))
				continue
			}

			fmt.Fprintf(out, "\n%s — %s\n", episodes[e].Number, part.EpisodeID)
			var accepted []string
			for _, s := range suggestions {
				fmt.Fprintf(out, "Suggested: %s (from extracted: %s)\n", s.canonical, strings.Join(s.evidence, ", "))
				answer := strings.ToLower(dec.Input(fmt.Sprintf("Add %s? [y/n/q]", s.canonical), "y"))
				if answer == "q" {
					break
				}
				if answer == "y" || answer == "" {
					accepted = append(accepted, s.canonical)
				}
			}
			if len(accepted) > 0 {
				part.Contertulios = accepted
				stats.PartsUpdated++
				stats.GuestsAdded += len(accepted)
				log.Info("contertulios completed",
					logging.String("part", part.EpisodeID),
					logging.Int("added", len(accepted)))
			}
		}
	}
	return stats
}

type suggestion struct {
	canonical string
	evidence  []string // raw extracted mentions, multi-word first
}

// suggestGuests resolves extracted candidates to canonical names and applies
// the evidence filters. skipped counts suggestions dropped for having only
// single-word evidence.
func suggestGuests(text string, reg *names.Registry, threshold float64) ([]suggestion, int) {
	evidence := make(map[string][]string)
	for _, candidate := range textscan.ExtractNames(text) {
		canonical, _, ok := reg.Resolve(candidate.Text, threshold)
		if !ok {
			continue
		}
		evidence[canonical] = append(evidence[canonical], candidate.Text)
	}

	var suggestions []suggestion
	skipped := 0
	for canonical, raws := range evidence {
		if len(raws) == 1 && !strings.Contains(raws[0], " ") {
			skipped++
			continue
		}
		if !textscan.HasMultiWord(raws) {
			skipped++
			continue
		}
		sort.Slice(raws, func(i, j int) bool {
			wi, wj := strings.Contains(raws[i], " "), strings.Contains(raws[j], " ")
			if wi != wj {
				return wi
			}
			return raws[i] < raws[j]
		})
		suggestions = append(suggestions, suggestion{canonical: canonical, evidence: raws})
	}
	sort.Slice(suggestions, func(i, j int) bool { return suggestions[i].canonical < suggestions[j].canonical })
	return suggestions, skipped
}
