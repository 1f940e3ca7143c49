package config

const (
	defaultDataDir       = "~/.local/share/tertulia"
	defaultAudioFeedXML  = "rss/audiofeed.xml"
	defaultAudioFeedJSON = "parsed_json/audiofeed_index.json"
	defaultGuestInfoText = "cbinfo.md"
	defaultGuestInfoJSON = "parsed_json/cbinfo_index.json"
	defaultWebHTMLDir    = "raw_html/episodes"
	defaultWebParseJSON  = "parsed_json/web_parse.json"
	defaultMasterPath    = "master_episode_data.json"
	defaultRegistryPath  = "contertulios.json"
	defaultPromoLinks    = "promo_links.json"
	defaultExclusionList = "links_domain_exclusion_list.json"
	defaultScaffoldDir   = "episode_docs"
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"

	// DefaultFuzzyThreshold is the minimum similarity score for accepting a
	// fuzzy name match.
	DefaultFuzzyThreshold = 70.0
	// DefaultLinkFrequencyThreshold is the episode count above which a
	// repeated link counts as boilerplate.
	DefaultLinkFrequencyThreshold = 3
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		DataDir: defaultDataDir,
		Matching: Matching{
			FuzzyThreshold:         DefaultFuzzyThreshold,
			LinkFrequencyThreshold: DefaultLinkFrequencyThreshold,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
