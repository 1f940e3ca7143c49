package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mmcdole/gofeed"

	"tertulia/internal/pipeline"
)

// ParseFeed parses the locally stored RSS XML snapshot into feed entries.
// The episode id is detected from the first "Ep"-prefixed word of the item
// title; items without one keep an empty id and are skipped later by the
// merge engine with a warning. Item-level artwork falls back to the channel
// image.
func ParseFeed(xmlPath string) ([]FeedEntry, error) {
	file, err := os.Open(xmlPath)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFatal, "sources", "parse-feed", "open snapshot", err)
	}
	defer file.Close()

	feed, err := gofeed.NewParser().Parse(file)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFatal, "sources", "parse-feed", "parse RSS", err)
	}

	channelImage := ""
	if feed.ITunesExt != nil && feed.ITunesExt.Image != "" {
		channelImage = feed.ITunesExt.Image
	} else if feed.Image != nil {
		channelImage = feed.Image.URL
	}

	entries := make([]FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entry := FeedEntry{
			EpisodeID:   detectEpisodeID(item.Title),
			Title:       strings.TrimSpace(item.Title),
			Date:        item.Published,
			Description: strings.TrimSpace(item.Description),
			Link:        item.Link,
			ImageURL:    channelImage,
		}
		if item.ITunesExt != nil {
			entry.Duration = item.ITunesExt.Duration
			if item.ITunesExt.Image != "" {
				entry.ImageURL = item.ITunesExt.Image
			}
		}
		if len(item.Enclosures) > 0 {
			entry.AudioURL = item.Enclosures[0].URL
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// detectEpisodeID scans title words for the first one starting with "Ep" and
// strips the trailing punctuation the show notes attach to it.
func detectEpisodeID(title string) string {
	for _, word := range strings.Fields(title) {
		if strings.HasPrefix(word, "Ep") {
			return strings.Trim(word, ":-_;.,")
		}
	}
	return ""
}

// LoadFeedIndex reads a previously materialized audio feed JSON snapshot.
func LoadFeedIndex(jsonPath string) ([]FeedEntry, error) {
	var entries []FeedEntry
	if err := loadJSON(jsonPath, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// NormalizeFeedIDs rewrites every entry id to canonical form, returning the
// number changed and original->normalized rows for display. Unparseable ids
// are reported but left untouched.
func NormalizeFeedIDs(entries []FeedEntry) (changed int, rows [][2]string) {
	for i := range entries {
		raw := entries[i].EpisodeID
		if raw == "" {
			continue
		}
		normalized := normalizeID(raw)
		rows = append(rows, [2]string{raw, normalized})
		if normalized != raw {
			entries[i].EpisodeID = normalized
			changed++
		}
	}
	return changed, rows
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "sources", "load", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return pipeline.Wrap(pipeline.ErrFatal, "sources", "load", fmt.Sprintf("invalid JSON in %s", path), err)
	}
	return nil
}
