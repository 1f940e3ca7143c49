package complete

import (
	"log/slog"

	"tertulia/internal/episode"
	"tertulia/internal/logging"
	"tertulia/internal/textscan"
)

// TimestampStats summarizes one timestamp recovery pass.
type TimestampStats struct {
	PartsTotal     int
	EmptyTopics    int
	WithTimestamps int
	PartsUpdated   int
	Failures       []string // part ids whose markers yielded no topics
}

// Timestamps recovers topic lists for parts that have none but whose
// description carries timestamp markers. Parts where extraction finds
// markers yet produces no topics are recorded as failures and left
// unchanged.
func Timestamps(episodes []episode.Episode, log *slog.Logger) TimestampStats {
	var stats TimestampStats
	for e := range episodes {
		for p := range episodes[e].Parts {
			part := &episodes[e].Parts[p]
			stats.PartsTotal++
			if part.RawDescription == "" || len(part.Topics) > 0 {
				continue
			}
			stats.EmptyTopics++
			if !textscan.HasTimestamps(part.RawDescription) {
				continue
			}
			stats.WithTimestamps++

			topics := textscan.ExtractTopics(part.RawDescription)
			if len(topics) == 0 {
				stats.Failures = append(stats.Failures, part.EpisodeID)
				log.Warn("no topics extracted despite markers", logging.String("part", part.EpisodeID))
				continue
			}
			part.Topics = topics
			stats.PartsUpdated++
			log.Info("topics recovered",
				logging.String("part", part.EpisodeID),
				logging.Int("topics", len(topics)))
		}
	}
	return stats
}

// CleanTopics normalizes existing topic entries: embedded "(min M:SS)"
// markers move into the timestamp field and trailing punctuation is
// stripped from titles. Returns the number of parts changed.
func CleanTopics(episodes []episode.Episode, log *slog.Logger) int {
	changed := 0
	for e := range episodes {
		for p := range episodes[e].Parts {
			part := &episodes[e].Parts[p]
			partChanged := false
			for t := range part.Topics {
				topic := &part.Topics[t]
				title := topic.Title
				if cleaned, ts, ok := textscan.ExtractEmbeddedTimestamp(title); ok {
					topic.Timestamp = ts
					title = cleaned
				}
				title = textscan.CleanTitle(title)
				if title != topic.Title {
					topic.Title = title
					partChanged = true
				}
			}
			if partChanged {
				changed++
				log.Debug("topics cleaned", logging.String("part", part.EpisodeID))
			}
		}
	}
	return changed
}
