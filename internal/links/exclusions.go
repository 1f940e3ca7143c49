package links

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"tertulia/internal/decision"
	"tertulia/internal/pipeline"
	"tertulia/internal/sources"
)

// LoadExclusions reads the exclusion-list JSON, a flat array of domain
// names. A missing file yields an empty list.
func LoadExclusions(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFatal, "links", "load-exclusions", path, err)
	}
	var domains []string
	if err := json.Unmarshal(data, &domains); err != nil {
		return nil, pipeline.Wrap(pipeline.ErrFatal, "links", "load-exclusions", path, err)
	}
	return domains, nil
}

// SaveExclusions writes the domain list as pretty-printed JSON.
func SaveExclusions(path string, domains []string) error {
	if domains == nil {
		domains = []string{}
	}
	return sources.WriteJSON(path, domains)
}

// DomainCount is one row of the domain census.
type DomainCount struct {
	Domain   string
	Links    int
	Excluded bool
}

// DomainCensus aggregates the distinct links of every domain across all
// episodes, sorted by link count descending (domain name as tie-break).
func DomainCensus(byEpisode map[string][]string, existing []string) []DomainCount {
	excluded := make(map[string]bool, len(existing))
	for _, domain := range existing {
		excluded[domain] = true
	}

	linksByDomain := make(map[string]map[string]struct{})
	for _, links := range byEpisode {
		for _, link := range links {
			host := Host(link)
			if host == "" {
				continue
			}
			if linksByDomain[host] == nil {
				linksByDomain[host] = make(map[string]struct{})
			}
			linksByDomain[host][link] = struct{}{}
		}
	}

	census := make([]DomainCount, 0, len(linksByDomain))
	for domain, links := range linksByDomain {
		census = append(census, DomainCount{Domain: domain, Links: len(links), Excluded: excluded[domain]})
	}
	sort.Slice(census, func(i, j int) bool {
		if census[i].Links != census[j].Links {
			return census[i].Links > census[j].Links
		}
		return census[i].Domain < census[j].Domain
	})
	return census
}

// BuildExclusions walks the census and asks, for every domain not already
// excluded, whether to add it (default no). The returned list is the sorted
// union of the existing exclusions and the newly accepted domains.
func BuildExclusions(census []DomainCount, existing []string, dec decision.Provider) []string {
	set := make(map[string]struct{}, len(existing))
	for _, domain := range existing {
		set[domain] = struct{}{}
	}
	for _, row := range census {
		if row.Excluded {
			continue
		}
		if dec.Confirm(fmt.Sprintf("Exclude domain %q with %d links?", row.Domain, row.Links), false) {
			set[row.Domain] = struct{}{}
		}
	}

	final := make([]string, 0, len(set))
	for domain := range set {
		final = append(final, domain)
	}
	sort.Strings(final)
	return final
}
