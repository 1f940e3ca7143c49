package merge

import (
	"fmt"
	"log/slog"

	"tertulia/internal/decision"
	"tertulia/internal/epid"
	"tertulia/internal/episode"
	"tertulia/internal/logging"
	"tertulia/internal/sources"
)

// Stats counts what one merge run produced.
type Stats struct {
	FeedEntries    int
	Skipped        int
	Episodes       int
	Parts          int
	TitleConflicts int
	ImageConflicts int
	PartsWithInfo  int
	EpisodesOnWeb  int
}

// group accumulates one episode while feed entries stream in.
type group struct {
	episode episode.Episode
	titles  []string // distinct non-empty, first-seen order
	images  []string
}

// Merge assembles the unified episode list from the three parsed sources.
// Feed entries without a parseable episode id are skipped with a warning.
// Title and image conflicts between the parts of one episode default to the
// first-seen value; the decision provider may pick another option.
func Merge(feed []sources.FeedEntry, guests []sources.GuestEntry, web map[string]sources.WebEntry, dec decision.Provider, log *slog.Logger) ([]episode.Episode, Stats) {
	stats := Stats{FeedEntries: len(feed)}

	guestIndex := make(map[string]sources.GuestEntry, len(guests))
	for _, entry := range guests {
		if entry.EpisodeID == "" {
			continue
		}
		id, _ := epid.Normalize(entry.EpisodeID)
		if _, ok := guestIndex[id]; !ok {
			guestIndex[id] = entry
		}
	}

	groups := make(map[string]*group)
	var order []string
	for _, entry := range feed {
		if entry.EpisodeID == "" {
			stats.Skipped++
			log.Warn("skipping feed entry without episode id", logging.String("title", entry.Title))
			continue
		}
		id, err := epid.Normalize(entry.EpisodeID)
		if err != nil {
			stats.Skipped++
			log.Warn("skipping feed entry with unparseable id",
				logging.String("episode_id", entry.EpisodeID),
				logging.String("title", entry.Title))
			continue
		}
		number, partClass, ok := epid.Split(id)
		if !ok {
			stats.Skipped++
			log.Warn("skipping feed entry with unparseable id", logging.String("episode_id", id))
			continue
		}

		g := groups[number]
		if g == nil {
			g = &group{episode: episode.Episode{
				Number:   number,
				Class:    episode.ClassSingle,
				RefLinks: []string{},
			}}
			if partClass != episode.PartOnly {
				g.episode.Class = episode.ClassDual
			}
			groups[number] = g
			order = append(order, number)
		} else if g.episode.Class == episode.ClassSingle && partClass != episode.PartOnly {
			g.episode.Class = episode.ClassDual
		}

		part := episode.Part{
			EpisodeID:      id,
			PartClass:      partClass,
			Date:           entry.Date,
			Duration:       entry.Duration,
			RawDescription: entry.Description,
			AudioURL:       entry.AudioURL,
			ExternalLink:   entry.Link,
			Topics:         []episode.Topic{},
			Contertulios:   []string{},
		}
		if info, ok := guestIndex[id]; ok {
			part.Topics = info.Topics
			part.Contertulios = info.Contertulios
			stats.PartsWithInfo++
		}
		g.episode.Parts = append(g.episode.Parts, part)
		stats.Parts++

		if entry.Title != "" && !containsString(g.titles, entry.Title) {
			g.titles = append(g.titles, entry.Title)
		}
		if entry.ImageURL != "" && !containsString(g.images, entry.ImageURL) {
			g.images = append(g.images, entry.ImageURL)
		}
	}

	episodes := make([]episode.Episode, 0, len(order))
	for _, number := range order {
		g := groups[number]
		g.episode.Title = resolveConflict(dec, "title", number, g.titles, &stats.TitleConflicts)
		g.episode.ImageURL = resolveConflict(dec, "image", number, g.images, &stats.ImageConflicts)

		if page, ok := web[epid.EpisodeKey(number)]; ok {
			g.episode.WebLink = page.EpWebLink
			if len(page.EpLinks) > 0 {
				g.episode.RefLinks = page.EpLinks
			}
			stats.EpisodesOnWeb++
		}

		episode.SortParts(g.episode.Parts)
		episodes = append(episodes, g.episode)
	}
	episode.SortEpisodes(episodes)
	stats.Episodes = len(episodes)
	return episodes, stats
}

// resolveConflict keeps the first-seen value unless several distinct values
// exist, in which case the decision provider picks one (defaulting to the
// first). An empty option list yields an empty value.
func resolveConflict(dec decision.Provider, field, number string, options []string, conflicts *int) string {
	switch len(options) {
	case 0:
		return ""
	case 1:
		return options[0]
	}
	*conflicts++
	idx := dec.Select(fmt.Sprintf("Episode %s has conflicting %ss, pick one", number, field), options, 0)
	if idx < 0 || idx >= len(options) {
		idx = 0
	}
	return options[idx]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
