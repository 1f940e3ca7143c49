package episode

import (
	"sort"
	"strconv"
)

// Part classes in their fixed presentation order. Only marks a single-part
// episode.
const (
	PartA    = "A"
	PartB    = "B"
	PartSupl = "Supl"
	PartOnly = "Only"
)

// PartTypes lists the recognized part classes in sort order.
var PartTypes = []string{PartA, PartB, PartSupl, PartOnly}

// Episode classes.
const (
	ClassSingle = "Single"
	ClassDual   = "Dual"
)

// Topic is one agenda item of a part, optionally anchored to a timestamp in
// MM:SS or HH:MM:SS form.
type Topic struct {
	Title     string `json:"title"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Part is one aired segment of an episode.
type Part struct {
	EpisodeID      string   `json:"Episode_ID"`
	PartClass      string   `json:"Part_class"`
	Date           string   `json:"Date"`
	Duration       string   `json:"Duration"`
	RawDescription string   `json:"raw_description"`
	AudioURL       string   `json:"Audio_URL"`
	ExternalLink   string   `json:"Ivoox_link"`
	Topics         []Topic  `json:"Topics"`
	Contertulios   []string `json:"Contertulios"`
}

// Episode is the merged record, unique per canonical 3-digit episode number.
type Episode struct {
	Number               string   `json:"Episode number"`
	Class                string   `json:"Episode class"`
	Title                string   `json:"Title"`
	ImageURL             string   `json:"Image_url"`
	WebLink              string   `json:"web_link"`
	RefLinks             []string `json:"ref_links"`
	Parts                []Part   `json:"Parts"`
	PublicationDate      string   `json:"publication_date,omitempty"`
	TotalDurationSeconds int      `json:"total_duration_seconds,omitempty"`
}

// NumberValue returns the numeric form of the episode number, or -1 when it
// is not numeric.
func (e *Episode) NumberValue() int {
	n, err := strconv.Atoi(e.Number)
	if err != nil {
		return -1
	}
	return n
}

// PartRank maps a part class to its position in the fixed ordering.
// Unrecognized classes rank last.
func PartRank(class string) int {
	for i, known := range PartTypes {
		if class == known {
			return i
		}
	}
	return len(PartTypes)
}

// SortParts orders parts A, B, Supl, Only with unknown classes last, keeping
// the relative order of equal ranks.
func SortParts(parts []Part) {
	sort.SliceStable(parts, func(i, j int) bool {
		return PartRank(parts[i].PartClass) < PartRank(parts[j].PartClass)
	})
}

// SortEpisodes orders episodes by numeric episode number ascending.
// Non-numeric numbers sort first in their original relative order; they only
// occur when a source snapshot is hand-edited.
func SortEpisodes(episodes []Episode) {
	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].NumberValue() < episodes[j].NumberValue()
	})
}
