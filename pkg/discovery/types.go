package discovery

import "time"

// discovery method values stored on a site record
const (
	MethodRSS      = "rss"
	MethodScraping = "scraping"
	MethodHybrid   = "hybrid"
)

// Entry is a single discovered article candidate. URL is absolute and
// normalized, Published is the zero time when the source had no usable
// timestamp. Entries live only for the duration of one Discover call.
type Entry struct {
	URL       string
	Title     string
	Summary   string
	Published time.Time
}

// ScrapeConfig describes how to pull article links out of a site's HTML.
// Stored as JSON on the site record and configurable per site in YAML.
type ScrapeConfig struct {
	ListSelector  string   `json:"list_selector" yaml:"list_selector" jsonschema:"description=CSS selector scoping the search (default: body)"`
	LinkSelector  string   `json:"link_selector" yaml:"link_selector" jsonschema:"description=CSS selector for link elements (default: a[href])"`
	AllowPatterns []string `json:"allow_patterns" yaml:"allow_patterns" jsonschema:"description=case-insensitive regexes a link must match (empty: all pass)"`
	DenyPatterns  []string `json:"deny_patterns" yaml:"deny_patterns" jsonschema:"description=case-insensitive regexes rejecting a link"`
}

// Site is the slice of a site record the discoverer needs. The store layer
// owns the full record; callers convert before invoking Discover.
type Site struct {
	ID           int64
	URL          string
	RSSURL       string
	Method       string
	ETag         string
	LastModified string
	Scrape       ScrapeConfig
}

// FeedURL returns the URL used for the rss branch: the explicit feed URL
// when configured, the site URL otherwise.
func (s Site) FeedURL() string {
	if s.RSSURL != "" {
		return s.RSSURL
	}
	return s.URL
}
