package links

import (
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	"tertulia/internal/decision"
	"tertulia/internal/logging"
)

// Stats counts what one curation pass removed.
type Stats struct {
	AutoRemoved    int // distinct URLs removed for exceeding the threshold
	ConfirmRemoved int // distinct URLs at the threshold removed after confirmation
	DomainsCleared int // exclusion-list domains whose links were removed
	PatternCleared bool
	LinksRemoved   int // total link occurrences removed across episodes
}

// Options configures one curation pass.
type Options struct {
	// FrequencyThreshold is the episode count at which a repeated URL is
	// treated as boilerplate. Strictly above it removal is automatic; at
	// exactly the threshold removal asks for confirmation. Zero disables
	// the frequency policies.
	FrequencyThreshold int
	// Exclusions lists domains whose links are removed after confirmation.
	Exclusions []string
	// CheckDomain optionally flags every link whose host contains this
	// substring, removing them on confirmation.
	CheckDomain string
}

// Curate applies the removal policies in order (frequency, threshold
// confirmation, exclusion domains, ad-hoc substring) to the per-episode
// link lists. The input map is not modified; the returned map preserves
// each episode's link order minus removals.
func Curate(byEpisode map[string][]string, opts Options, dec decision.Provider, log *slog.Logger) (map[string][]string, Stats) {
	cleaned := make(map[string][]string, len(byEpisode))
	for ep, links := range byEpisode {
		cleaned[ep] = append([]string(nil), links...)
	}
	var stats Stats

	// Frequency policies count distinct episodes per exact URL. A zero
	// threshold disables them, for runs that only apply the ad-hoc
	// substring check.
	if opts.FrequencyThreshold > 0 {
		episodesByURL := make(map[string]map[string]struct{})
		for ep, links := range cleaned {
			for _, link := range links {
				if episodesByURL[link] == nil {
					episodesByURL[link] = make(map[string]struct{})
				}
				episodesByURL[link][ep] = struct{}{}
			}
		}
		urls := make([]string, 0, len(episodesByURL))
		for link := range episodesByURL {
			urls = append(urls, link)
		}
		sort.Strings(urls)

		for _, link := range urls {
			count := len(episodesByURL[link])
			switch {
			case count > opts.FrequencyThreshold:
				stats.AutoRemoved++
				stats.LinksRemoved += removeURL(cleaned, link)
				log.Info("removed boilerplate link",
					logging.String("url", link),
					logging.Int("episodes", count))
			case count == opts.FrequencyThreshold:
				prompt := fmt.Sprintf("Link %s appears in %d episodes, remove it?", link, count)
				if dec.Confirm(prompt, true) {
					stats.ConfirmRemoved++
					stats.LinksRemoved += removeURL(cleaned, link)
				}
			}
		}
	}

	for _, domain := range opts.Exclusions {
		domain = strings.ToLower(domain)
		unique, episodes := collectByHost(cleaned, func(host string) bool { return host == domain })
		if len(unique) == 0 {
			continue
		}
		prompt := fmt.Sprintf("Domain %s: %d unique links in %d episodes, remove all?", domain, len(unique), episodes)
		if dec.Confirm(prompt, true) {
			stats.DomainsCleared++
			stats.LinksRemoved += removeByHost(cleaned, func(host string) bool { return host == domain })
			log.Info("removed excluded domain", logging.String("domain", domain), logging.Int("links", len(unique)))
		}
	}

	if pattern := strings.ToLower(opts.CheckDomain); pattern != "" {
		match := func(host string) bool { return strings.Contains(host, pattern) }
		unique, episodes := collectByHost(cleaned, match)
		if len(unique) > 0 {
			prompt := fmt.Sprintf("Pattern %q matches %d links in %d episodes, remove them?", pattern, len(unique), episodes)
			if dec.Confirm(prompt, false) {
				stats.PatternCleared = true
				stats.LinksRemoved += removeByHost(cleaned, match)
			}
		} else {
			log.Info("no links match domain pattern", logging.String("pattern", pattern))
		}
	}

	return cleaned, stats
}

// Host extracts the lowercase host of a URL, empty when unparseable.
func Host(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

func removeURL(byEpisode map[string][]string, target string) int {
	return removeIf(byEpisode, func(link string) bool { return link == target })
}

func removeByHost(byEpisode map[string][]string, match func(string) bool) int {
	return removeIf(byEpisode, func(link string) bool { return match(Host(link)) })
}

func removeIf(byEpisode map[string][]string, drop func(string) bool) int {
	removed := 0
	for ep, links := range byEpisode {
		kept := links[:0]
		for _, link := range links {
			if drop(link) {
				removed++
				continue
			}
			kept = append(kept, link)
		}
		byEpisode[ep] = kept
	}
	return removed
}

func collectByHost(byEpisode map[string][]string, match func(string) bool) (unique []string, episodes int) {
	seen := make(map[string]struct{})
	for _, links := range byEpisode {
		hit := false
		for _, link := range links {
			if match(Host(link)) {
				hit = true
				if _, ok := seen[link]; !ok {
					seen[link] = struct{}{}
					unique = append(unique, link)
				}
			}
		}
		if hit {
			episodes++
		}
	}
	sort.Strings(unique)
	return unique, episodes
}
