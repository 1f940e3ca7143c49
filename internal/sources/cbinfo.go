package sources

import (
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"tertulia/internal/episode"
	"tertulia/internal/pipeline"
)

var (
	blockHeadingPattern = regexp.MustCompile(`^Ep\d{3,4}(?:_[AB])?:`)
	blockIDPattern      = regexp.MustCompile(`^(Ep\d{3,4}(?:_[AB])?):?`)
	caraPattern         = regexp.MustCompile(`^Cara ([AB]):?`)
	topicLinePattern    = regexp.MustCompile(`^-([^-].*?)(?:\((\d{1,2}:\d{2}(?::\d{2})?)\))?\s*$`)
	contertuliosPattern = regexp.MustCompile(`Contertulios: (.+?)(?:\.|$)`)
	imageCreditPattern  = regexp.MustCompile(`\s*Imagen.*`)
)

// ParseGuestListing parses the hand-maintained guest/topic text listing into
// structured entries. Blocks begin at "Ep###:" style headings; any preamble
// before the first heading forms a block of its own. Text is NFC-normalized
// so accented guest names compare consistently downstream.
func ParseGuestListing(path string) ([]GuestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFatal, "sources", "parse-guests", "read listing", err)
	}
	text := norm.NFC.String(strings.ReplaceAll(string(data), "\r\n", "\n"))

	var entries []GuestEntry
	for _, block := range splitBlocks(strings.Split(text, "\n")) {
		entries = append(entries, parseGuestBlock(block))
	}
	return entries, nil
}

// splitBlocks groups lines into per-entry blocks, starting a new block at
// every episode heading.
func splitBlocks(lines []string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range lines {
		if blockHeadingPattern.MatchString(strings.TrimSpace(line)) && len(current) > 0 {
			blocks = append(blocks, current)
			current = []string{line}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func parseGuestBlock(lines []string) GuestEntry {
	title := strings.TrimSpace(lines[0])
	entry := GuestEntry{
		Title:          title,
		RawDescription: strings.Join(lines, "\n"),
		EntryType:      classifyGuestEntry(title, lines),
		Topics:         []episode.Topic{},
		Contertulios:   []string{},
	}
	if m := blockIDPattern.FindStringSubmatch(title); m != nil {
		entry.EpisodeID = m[1]
	}

	timestamps := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if entry.Cara == "" {
			if m := caraPattern.FindStringSubmatch(trimmed); m != nil {
				entry.Cara = m[1]
			}
		}
		if topic, ok := parseTopicLine(trimmed); ok {
			entry.Topics = append(entry.Topics, topic)
			if topic.Timestamp != "" {
				timestamps++
			}
		}
		if len(entry.Contertulios) == 0 {
			if guests := parseContertulios(line); len(guests) > 0 {
				entry.Contertulios = guests
			}
		}
	}
	entry.HasMultipleTimestamps = timestamps > 1
	return entry
}

// parseTopicLine matches "-Title (mm:ss)", "-Title (hh:mm:ss)" or a bare
// "-Title"; a leading "--" is not a topic.
func parseTopicLine(line string) (episode.Topic, bool) {
	m := topicLinePattern.FindStringSubmatch(line)
	if m == nil {
		return episode.Topic{}, false
	}
	return episode.Topic{Title: strings.TrimSpace(m[1]), Timestamp: m[2]}, true
}

// parseContertulios extracts the guest names from a "Contertulios: ..." line,
// splitting on commas and stripping trailing image credits.
func parseContertulios(line string) []string {
	m := contertuliosPattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	var guests []string
	for _, name := range strings.Split(m[1], ",") {
		name = strings.TrimSpace(strings.Trim(strings.TrimSpace(name), "."))
		name = strings.TrimSpace(imageCreditPattern.ReplaceAllString(name, ""))
		if name != "" {
			guests = append(guests, name)
		}
	}
	return guests
}

func classifyGuestEntry(title string, lines []string) string {
	if blockHeadingPattern.MatchString(title) {
		return EntryEpisode
	}
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "extracto") || strings.Contains(lower, "extract") {
			return EntryExtract
		}
	}
	if strings.Contains(strings.ToLower(title), "especial") {
		return EntrySpecial
	}
	return EntryOther
}

// LoadGuestIndex reads a previously materialized guest listing JSON snapshot.
func LoadGuestIndex(jsonPath string) ([]GuestEntry, error) {
	var entries []GuestEntry
	if err := loadJSON(jsonPath, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// NormalizeGuestIDs rewrites entry ids to canonical form, returning the
// number changed and original->normalized rows for display.
func NormalizeGuestIDs(entries []GuestEntry) (changed int, rows [][2]string) {
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
