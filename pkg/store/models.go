package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/feedscout/feedscout/pkg/discovery"
)

// Site represents a configured discovery target and its check state
type Site struct {
	ID                 int64          `db:"id"`
	URL                string         `db:"url"`
	RSSURL             string         `db:"rss_url"`
	Title              string         `db:"title"`
	DiscoveryMethod    string         `db:"discovery_method"`
	ScrapeConfig       string         `db:"scrape_config"` // JSON, see discovery.ScrapeConfig
	ETag               string         `db:"etag"`
	LastModified       string         `db:"last_modified"`
	CheckIntervalHours int            `db:"check_interval_hours"`
	Enabled            bool           `db:"enabled"`
	LastCheckedAt      sql.NullTime   `db:"last_checked_at"`
	LastError          sql.NullString `db:"last_error"`
	LastErrorAt        sql.NullTime   `db:"last_error_at"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// Discovery converts the record to the slice the discovery core works with
func (s *Site) Discovery() (discovery.Site, error) {
	var sc discovery.ScrapeConfig
	if s.ScrapeConfig != "" {
		if err := json.Unmarshal([]byte(s.ScrapeConfig), &sc); err != nil {
			return discovery.Site{}, fmt.Errorf("parse scrape config for site %d: %w", s.ID, err)
		}
	}
	return discovery.Site{
		ID:           s.ID,
		URL:          s.URL,
		RSSURL:       s.RSSURL,
		Method:       s.DiscoveryMethod,
		ETag:         s.ETag,
		LastModified: s.LastModified,
		Scrape:       sc,
	}, nil
}

// Article represents a discovered article candidate
type Article struct {
	ID           int64        `db:"id"`
	SiteID       int64        `db:"site_id"`
	URL          string       `db:"url"`
	Title        string       `db:"title"`
	Summary      string       `db:"summary"`
	PublishedAt  sql.NullTime `db:"published_at"`
	DiscoveredAt time.Time    `db:"discovered_at"`
}
