package refine

import (
	"encoding/json"
	"log/slog"
	"os"
	"regexp"
	"time"

	"tertulia/internal/episode"
	"tertulia/internal/logging"
	"tertulia/internal/pipeline"
)

// titlePrefix matches the redundant "Ep123:" / "Ep 123_A:" lead-in that the
// feed prepends to episode titles.
var titlePrefix = regexp.MustCompile(`^Ep ?\d{2,3}(_[A-Za-z]+)?: ?`)

// AddPublicationDates sets each episode's publication date to the earliest
// parseable part date, formatted DD/MM/YYYY. Episodes whose stored value
// already matches are left untouched, so re-running changes nothing.
func AddPublicationDates(episodes []episode.Episode, log *slog.Logger) int {
	updated := 0
	for i := range episodes {
		var earliest time.Time
		found := false
		for _, part := range episodes[i].Parts {
			if part.Date == "" {
				continue
			}
			t, ok := episode.ParseDate(part.Date)
			if !ok {
				log.Debug("unparseable part date",
					logging.String("episode", episodes[i].Number),
					logging.String("date", part.Date))
				continue
			}
			if !found || t.Before(earliest) {
				earliest = t
				found = true
			}
		}
		if !found {
			continue
		}
		formatted := episode.FormatDate(earliest)
		if episodes[i].PublicationDate != formatted {
			episodes[i].PublicationDate = formatted
			updated++
		}
	}
	return updated
}

// AddTotalDurations sets each episode's total duration to the sum of its
// part durations in seconds. Episodes summing to zero keep their field
// unchanged; matching values are not rewritten.
func AddTotalDurations(episodes []episode.Episode, log *slog.Logger) int {
	updated := 0
	for i := range episodes {
		total := 0
		for _, part := range episodes[i].Parts {
			total += episode.ParseDuration(part.Duration)
		}
		if total == 0 {
			continue
		}
		if episodes[i].TotalDurationSeconds != total {
			episodes[i].TotalDurationSeconds = total
			updated++
			log.Debug("total duration set",
				logging.String("episode", episodes[i].Number),
				logging.Int("seconds", total))
		}
	}
	return updated
}

// LoadPromoLinks reads the promotional link list, a flat JSON array of
// exact URLs.
func LoadPromoLinks(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFatal, "refine", "load-promo-links", path, err)
	}
	var links []string
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFatal, "refine", "load-promo-links", path, err)
	}
	return links, nil
}

// CleanPromoLinks removes exact promotional URLs from every episode's
// reference links. Returns per-episode removal counts and the total.
func CleanPromoLinks(episodes []episode.Episode, promo []string, log *slog.Logger) (map[string]int, int) {
	promoSet := make(map[string]struct{}, len(promo))
	for _, link := range promo {
		promoSet[link] = struct{}{}
	}

	removedBy := make(map[string]int)
	total := 0
	for i := range episodes {
		if len(episodes[i].RefLinks) == 0 {
			continue
		}
		kept := make([]string, 0, len(episodes[i].RefLinks))
		for _, link := range episodes[i].RefLinks {
			if _, ok := promoSet[link]; ok {
				continue
			}
			kept = append(kept, link)
		}
		if removed := len(episodes[i].RefLinks) - len(kept); removed > 0 {
			episodes[i].RefLinks = kept
			removedBy[episodes[i].Number] = removed
			total += removed
			log.Debug("removed promo links",
				logging.String("episode", episodes[i].Number),
				logging.Int("removed", removed))
		}
	}
	return removedBy, total
}

// CleanTitles strips one leading "Ep###:" prefix from every episode title,
// returning the titles that changed. Already-clean titles never match, so
// the pass is idempotent.
func CleanTitles(episodes []episode.Episode) []string {
	var affected []string
	for i := range episodes {
		title := episodes[i].Title
		if title == "" || !titlePrefix.MatchString(title) {
			continue
		}
		affected = append(affected, title)
		episodes[i].Title = titlePrefix.ReplaceAllString(title, "")
	}
	return affected
}

// ExtractoChange records the effect of ClearExtractos on one episode.
type ExtractoChange struct {
	Number    string
	Original  int
	Removed   int
	Remaining int
}

// ClearExtractos drops class-Only parts from episodes in the inclusive
// numeric range. Dual episodes in the range picked up stray extract
// segments in the feed; this manual tool removes them.
func ClearExtractos(episodes []episode.Episode, from, to int) []ExtractoChange {
	var changes []ExtractoChange
	for i := range episodes {
		number := episodes[i].NumberValue()
		if number < from || number > to {
			continue
		}
		original := len(episodes[i].Parts)
		kept := make([]episode.Part, 0, original)
		for _, part := range episodes[i].Parts {
			if part.PartClass != episode.PartOnly {
				kept = append(kept, part)
			}
		}
		if removed := original - len(kept); removed > 0 {
			episodes[i].Parts = kept
			changes = append(changes, ExtractoChange{
				Number:    episodes[i].Number,
				Original:  original,
				Removed:   removed,
				Remaining: len(kept),
			})
		}
	}
	return changes
}
