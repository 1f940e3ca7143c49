package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Sources contains the locations of the three per-source snapshots.
type Sources struct {
	AudioFeedXML  string `toml:"audio_feed_xml"`
	AudioFeedJSON string `toml:"audio_feed_json"`
	GuestInfoText string `toml:"guest_info_text"`
	GuestInfoJSON string `toml:"guest_info_json"`
	WebHTMLDir    string `toml:"web_html_dir"`
	WebParseJSON  string `toml:"web_parse_json"`
}

// Master contains the consolidated collection and its side stores.
type Master struct {
	Path          string `toml:"path"`
	RegistryPath  string `toml:"registry_path"`
	PromoLinks    string `toml:"promo_links"`
	ExclusionList string `toml:"exclusion_list"`
	ScaffoldDir   string `toml:"scaffold_dir"`
}

// Matching contains the tunables of the inference engines.
type Matching struct {
	// FuzzyThreshold is the minimum 0-100 similarity score accepted when
	// resolving free-text names against the registry.
	FuzzyThreshold float64 `toml:"fuzzy_threshold"`
	// LinkFrequencyThreshold is the episode count above which a repeated
	// link is treated as boilerplate and removed without prompting.
	LinkFrequencyThreshold int `toml:"link_frequency_threshold"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the root configuration document.
type Config struct {
	DataDir  string   `toml:"data_dir"`
	Sources  Sources  `toml:"sources"`
	Master   Master   `toml:"master"`
	Matching Matching `toml:"matching"`
	Logging  Logging  `toml:"logging"`
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return expandPath("~/.config/tertulia/config.toml")
}

// Load reads the TOML file at path, applying defaults for unset fields. A
// missing file yields the defaults; any other read or parse failure is an
// error. All paths in the result are absolute.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(expandPath(path))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteSample writes the annotated sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	path = expandPath(path)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

func (c *Config) normalize() {
	c.DataDir = expandPath(c.DataDir)
	rel := func(p, fallback string) string {
		if strings.TrimSpace(p) == "" {
			p = fallback
		}
		p = expandPath(p)
		if !filepath.IsAbs(p) {
			p = filepath.Join(c.DataDir, p)
		}
		return p
	}
	c.Sources.AudioFeedXML = rel(c.Sources.AudioFeedXML, defaultAudioFeedXML)
	c.Sources.AudioFeedJSON = rel(c.Sources.AudioFeedJSON, defaultAudioFeedJSON)
	c.Sources.GuestInfoText = rel(c.Sources.GuestInfoText, defaultGuestInfoText)
	c.Sources.GuestInfoJSON = rel(c.Sources.GuestInfoJSON, defaultGuestInfoJSON)
	c.Sources.WebHTMLDir = rel(c.Sources.WebHTMLDir, defaultWebHTMLDir)
	c.Sources.WebParseJSON = rel(c.Sources.WebParseJSON, defaultWebParseJSON)
	c.Master.Path = rel(c.Master.Path, defaultMasterPath)
	c.Master.RegistryPath = rel(c.Master.RegistryPath, defaultRegistryPath)
	c.Master.PromoLinks = rel(c.Master.PromoLinks, defaultPromoLinks)
	c.Master.ExclusionList = rel(c.Master.ExclusionList, defaultExclusionList)
	c.Master.ScaffoldDir = rel(c.Master.ScaffoldDir, defaultScaffoldDir)
	if c.Matching.FuzzyThreshold == 0 {
		c.Matching.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if c.Matching.LinkFrequencyThreshold == 0 {
		c.Matching.LinkFrequencyThreshold = DefaultLinkFrequencyThreshold
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("config: data_dir must not be empty")
	}
	if c.Matching.FuzzyThreshold < 0 || c.Matching.FuzzyThreshold > 100 {
		return fmt.Errorf("config: fuzzy_threshold %v outside 0-100", c.Matching.FuzzyThreshold)
	}
	if c.Matching.LinkFrequencyThreshold < 1 {
		return fmt.Errorf("config: link_frequency_threshold %d must be >= 1", c.Matching.LinkFrequencyThreshold)
	}
	return nil
}

func expandPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
