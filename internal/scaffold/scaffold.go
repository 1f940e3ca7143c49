package scaffold

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tertulia/internal/epid"
	"tertulia/internal/episode"
	"tertulia/internal/logging"
	"tertulia/internal/pipeline"
	"tertulia/internal/textutil"
)

// Stats counts one generation run.
type Stats struct {
	Written   int
	Unchanged int
}

// Generate writes one descriptive text document per episode into dir,
// named after the canonical episode id. Files whose rendered content
// already matches are left untouched, so re-running is cheap and
// timestamp-stable.
func Generate(episodes []episode.Episode, dir string, log *slog.Logger) (Stats, error) {
	var stats Stats
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return stats, pipeline.Wrap(pipeline.ErrFatal, "scaffold", "generate", dir, err)
	}

	for _, ep := range episodes {
		name := textutil.SanitizeFileName(epid.EpisodeKey(ep.Number)) + ".txt"
		path := filepath.Join(dir, name)
		content := Render(ep)

		if current, err := os.ReadFile(path); err == nil && bytes.Equal(current, []byte(content)) {
			stats.Unchanged++
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return stats, pipeline.Wrap(pipeline.ErrFatal, "scaffold", "generate", path, err)
		}
		stats.Written++
		log.Debug("episode document written", logging.String("path", path))
	}
	return stats, nil
}

// Render produces the text document of one episode.
func Render(ep episode.Episode) string {
	var b strings.Builder
	heading := epid.EpisodeKey(ep.Number)
	if ep.Title != "" {
		heading += " — " + ep.Title
	}
	fmt.Fprintf(&b, "%s\n%s\n\n", heading, strings.Repeat("=", len([]rune(heading))))

	if ep.PublicationDate != "" {
		fmt.Fprintf(&b, "Publication date: %s\n", ep.PublicationDate)
	}
	if ep.TotalDurationSeconds > 0 {
		fmt.Fprintf(&b, "Total duration: %s\n", episode.FormatSeconds(ep.TotalDurationSeconds))
	}
	fmt.Fprintf(&b, "Class: %s\n", ep.Class)
	if ep.WebLink != "" {
		fmt.Fprintf(&b, "Web: %s\n", ep.WebLink)
	}
	if len(ep.RefLinks) > 0 {
		b.WriteString("References:\n")
		for _, link := range ep.RefLinks {
			fmt.Fprintf(&b, "  - %s\n", link)
		}
	}

	for _, part := range ep.Parts {
		fmt.Fprintf(&b, "\n## Part %s (%s)\n", part.EpisodeID, part.PartClass)
		if part.Date != "" {
			fmt.Fprintf(&b, "Date: %s\n", part.Date)
		}
		if part.Duration != "" {
			fmt.Fprintf(&b, "Duration: %s\n", part.Duration)
		}
		if part.AudioURL != "" {
			fmt.Fprintf(&b, "Audio: %s\n", part.AudioURL)
		}
		if part.ExternalLink != "" {
			fmt.Fprintf(&b, "Page: %s\n", part.ExternalLink)
		}
		if len(part.Contertulios) > 0 {
			fmt.Fprintf(&b, "Contertulios: %s\n", strings.Join(part.Contertulios, ", "))
		}
		if len(part.Topics) > 0 {
			b.WriteString("Topics:\n")
			for _, topic := range part.Topics {
				if topic.Timestamp != "" {
					fmt.Fprintf(&b, "  - (%s) %s\n", topic.Timestamp, topic.Title)
				} else {
					fmt.Fprintf(&b, "  - %s\n", topic.Title)
				}
			}
		}
		if part.RawDescription != "" {
			fmt.Fprintf(&b, "Description:\n%s\n", strings.TrimRight(part.RawDescription, "\n"))
		}
	}
	return b.String()
}
