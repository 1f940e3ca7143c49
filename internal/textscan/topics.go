package textscan

import (
	"regexp"
	"strings"

	"tertulia/internal/episode"
)

var (
	timestampPattern  = regexp.MustCompile(`\((\d{1,2}:\d{2}(?::\d{1,2})?)(?:\s*min)?\)`)
	embeddedTSPattern = regexp.MustCompile(`(?i)\(min\s*(\d{1,2}:\d{2}(?::\d{1,2})?)\)`)
	leadingBullets    = regexp.MustCompile(`^[-–—\s]+`)
)

// HasTimestamps reports whether the text contains at least one
// parenthesized timestamp marker.
func HasTimestamps(text string) bool {
	return timestampPattern.MatchString(text)
}

// ExtractTopics recovers topic entries from free text by chunking around
// timestamp markers: the title of each topic is the last line of the text
// preceding its timestamp, with bullets and trailing delimiters stripped.
// Markers whose preceding chunk yields no title are dropped.
func ExtractTopics(raw string) []episode.Topic {
	var topics []episode.Topic
	prevEnd := 0
	for _, loc := range timestampPattern.FindAllStringSubmatchIndex(raw, -1) {
		start, end := loc[0], loc[1]
		ts := raw[loc[2]:loc[3]]
		// A marker at the start of a line leaves the chunk ending in a
		// newline; dropping that one newline keeps the preceding line as
		// the title.
		chunk := strings.TrimSuffix(raw[prevEnd:start], "\n")
		if idx := strings.LastIndexByte(chunk, '\n'); idx >= 0 {
			chunk = chunk[idx+1:]
		}
		title := strings.TrimSpace(leadingBullets.ReplaceAllString(chunk, ""))
		title = strings.TrimRight(title, ".:; ")
		if title != "" {
			topics = append(topics, episode.Topic{Title: title, Timestamp: ts})
		}
		prevEnd = end
	}
	return topics
}

// CleanTitle strips trailing whitespace and soft punctuation from a topic
// title, keeping "?" and "!" intact.
func CleanTitle(title string) string {
	title = strings.TrimRight(title, " \t")
	return strings.TrimRight(title, ".,;:")
}

// ExtractEmbeddedTimestamp pulls a "(min 1:00)" style marker out of a topic
// title, returning the cleaned title and the timestamp. ok is false when the
// title has no embedded marker.
func ExtractEmbeddedTimestamp(title string) (cleaned, timestamp string, ok bool) {
	loc := embeddedTSPattern.FindStringSubmatchIndex(title)
	if loc == nil {
		return title, "", false
	}
	timestamp = title[loc[2]:loc[3]]
	cleaned = title[:loc[0]] + title[loc[1]:]
	return cleaned, timestamp, true
}
