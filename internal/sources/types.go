package sources

import "tertulia/internal/episode"

// FeedEntry is one item of the audio feed snapshot.
type FeedEntry struct {
	EpisodeID   string `json:"episode_id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	AudioURL    string `json:"audio_url"`
	Link        string `json:"link"`
	ImageURL    string `json:"image_url"`
}

// GuestEntry is one block of the guest/topic listing snapshot.
type GuestEntry struct {
	EpisodeID             string          `json:"episode_id"`
	Title                 string          `json:"title"`
	Cara                  string          `json:"cara,omitempty"`
	Topics                []episode.Topic `json:"topics"`
	Contertulios          []string        `json:"contertulios"`
	RawDescription        string          `json:"raw_description"`
	EntryType             string          `json:"entry_type"`
	HasMultipleTimestamps bool            `json:"has_multiple_timestamps"`
}

// Guest entry types produced by the listing parser.
const (
	EntryEpisode = "episode"
	EntryExtract = "extract"
	EntrySpecial = "special"
	EntryOther   = "other"
)

// WebEntry is one scraped episode page of the web snapshot.
type WebEntry struct {
	EpID          string   `json:"ep_id"`
	EpTitle       string   `json:"ep_title"`
	EpWebLink     string   `json:"ep_web_link"`
	EpTextContent string   `json:"ep_text_content"`
	EpLinks       []string `json:"ep_links"`
}
