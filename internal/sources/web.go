package sources

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tertulia/internal/epid"
	"tertulia/internal/pipeline"
)

var (
	whitespaceRun    = regexp.MustCompile(`\s+`)
	plainLinkPattern = regexp.MustCompile(`https?://[^\s'"<>]+`)
)

// ParseEpisodePage extracts metadata from a stored episode HTML page. The
// episode id comes from the file name stem; title, canonical link and body
// text come from the page itself. Links are the hrefs of the content anchors
// followed by plaintext URLs found in the flattened text, deduplicated in
// first-seen order.
func ParseEpisodePage(htmlPath string) (WebEntry, error) {
	file, err := os.Open(htmlPath)
	if err != nil {
		return WebEntry{}, pipeline.Wrap(pipeline.ErrRecord, "sources", "parse-web", "open page", err)
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return WebEntry{}, pipeline.Wrap(pipeline.ErrRecord, "sources", "parse-web", "parse HTML", err)
	}

	entry := WebEntry{
		EpID:    strings.TrimSuffix(filepath.Base(htmlPath), filepath.Ext(htmlPath)),
		EpTitle: strings.TrimSpace(doc.Find("h1.entry-title").First().Text()),
		EpLinks: []string{},
	}
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		entry.EpWebLink = href
	}

	content := doc.Find("div.entry-content").First()
	if content.Length() == 0 {
		return entry, nil
	}
	entry.EpTextContent = strings.TrimSpace(whitespaceRun.ReplaceAllString(content.Text(), " "))

	seen := make(map[string]struct{})
	add := func(link string) {
		if _, ok := seen[link]; ok {
			return
		}
		seen[link] = struct{}{}
		entry.EpLinks = append(entry.EpLinks, link)
	}
	content.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			add(href)
		}
	})
	for _, link := range plainLinkPattern.FindAllString(entry.EpTextContent, -1) {
		add(link)
	}
	return entry, nil
}

// ParseEpisodeDir parses every .html file of a directory in name order,
// keyed by episode id. Pages that fail to parse are skipped; the caller
// receives them as a list of failed file names.
func ParseEpisodeDir(dir string) (map[string]WebEntry, []string, error) {
	names, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, nil, pipeline.Wrap(pipeline.ErrFatal, "sources", "parse-web", "scan directory", err)
	}
	sort.Strings(names)

	parsed := make(map[string]WebEntry, len(names))
	var failed []string
	for _, name := range names {
		entry, err := ParseEpisodePage(name)
		if err != nil {
			failed = append(failed, filepath.Base(name))
			continue
		}
		parsed[entry.EpID] = entry
	}
	return parsed, failed, nil
}

// LoadWebSnapshot reads a materialized web parse snapshot keyed exactly as
// it was written.
func LoadWebSnapshot(jsonPath string) (map[string]WebEntry, error) {
	var raw map[string]WebEntry
	if err := loadJSON(jsonPath, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// NormalizeWebIDs rewrites the snapshot keys and embedded ids to canonical
// form. Keys that collide after normalization keep the first entry.
func NormalizeWebIDs(entries map[string]WebEntry) (map[string]WebEntry, int, [][2]string) {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	normalized := make(map[string]WebEntry, len(entries))
	changed := 0
	rows := make([][2]string, 0, len(keys))
	for _, key := range keys {
		entry := entries[key]
		canonical := normalizeID(key)
		rows = append(rows, [2]string{key, canonical})
		if canonical != key {
			changed++
		}
		entry.EpID = canonical
		if _, ok := normalized[canonical]; !ok {
			normalized[canonical] = entry
		}
	}
	return normalized, changed, rows
}

// LoadWebIndex reads a materialized web parse snapshot and re-keys it by
// canonical episode id so joins against the master work regardless of how
// the page files were named.
func LoadWebIndex(jsonPath string) (map[string]WebEntry, error) {
	raw, err := LoadWebSnapshot(jsonPath)
	if err != nil {
		return nil, err
	}
	index := make(map[string]WebEntry, len(raw))
	for key, entry := range raw {
		if number, _, ok := epid.Split(normalizeID(key)); ok {
			key = epid.EpisodeKey(number)
		}
		index[key] = entry
	}
	return index, nil
}
