package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// UpsertSiteConfig inserts a site or updates its configuration by URL.
// Check state (validators, timestamps, errors) is left alone so re-seeding
// from config never resets conditional-fetch state.
func (s *Store) UpsertSiteConfig(ctx context.Context, site *Site) error {
	query := `
		INSERT INTO sites (url, rss_url, title, discovery_method, scrape_config, check_interval_hours, enabled)
		VALUES (:url, :rss_url, :title, :discovery_method, :scrape_config, :check_interval_hours, :enabled)
		ON CONFLICT(url) DO UPDATE SET
			rss_url = excluded.rss_url,
			title = excluded.title,
			discovery_method = excluded.discovery_method,
			scrape_config = excluded.scrape_config,
			check_interval_hours = excluded.check_interval_hours,
			enabled = excluded.enabled,
			updated_at = CURRENT_TIMESTAMP
	`
	err := s.withRetry(ctx, func() error {
		_, err := s.conn.NamedExecContext(ctx, query, site)
		return err
	})
	if err != nil {
		return fmt.Errorf("upsert site: %w", err)
	}

	// the conflict path reports no insert id, read it back by url
	stored, err := s.GetSiteByURL(ctx, site.URL)
	if err != nil {
		return err
	}
	site.ID = stored.ID
	return nil
}

// GetSite retrieves a site by ID
func (s *Store) GetSite(ctx context.Context, id int64) (*Site, error) {
	var site Site
	query := `SELECT * FROM sites WHERE id = ?`
	if err := s.conn.GetContext(ctx, &site, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("site not found")
		}
		return nil, fmt.Errorf("get site: %w", err)
	}
	return &site, nil
}

// GetSiteByURL retrieves a site by URL
func (s *Store) GetSiteByURL(ctx context.Context, url string) (*Site, error) {
	var site Site
	query := `SELECT * FROM sites WHERE url = ?`
	if err := s.conn.GetContext(ctx, &site, query, url); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("site not found")
		}
		return nil, fmt.Errorf("get site by url: %w", err)
	}
	return &site, nil
}

// ListSites retrieves all sites
func (s *Store) ListSites(ctx context.Context) ([]Site, error) {
	var sites []Site
	query := `SELECT * FROM sites ORDER BY url`
	if err := s.conn.SelectContext(ctx, &sites, query); err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	return sites, nil
}

// SitesDueForCheck retrieves enabled sites whose check interval has elapsed,
// never-checked sites first
func (s *Store) SitesDueForCheck(ctx context.Context, limit int) ([]Site, error) {
	query := `
		SELECT * FROM sites
		WHERE enabled = 1
		  AND (last_checked_at IS NULL
		       OR datetime(last_checked_at, '+' || check_interval_hours || ' hours') <= datetime('now'))
		ORDER BY last_checked_at ASC
		LIMIT ?
	`
	var sites []Site
	if err := s.conn.SelectContext(ctx, &sites, query, limit); err != nil {
		return nil, fmt.Errorf("sites due for check: %w", err)
	}
	return sites, nil
}

// MarkChecked records a successful check. Validators are updated only when
// non-empty, so a 304 (or a response without cache headers) keeps the stored
// ones. A success clears any previous error state.
func (s *Store) MarkChecked(ctx context.Context, siteID int64, etag, lastModified string) error {
	query := `
		UPDATE sites
		SET last_checked_at = ?,
		    etag = CASE WHEN ? != '' THEN ? ELSE etag END,
		    last_modified = CASE WHEN ? != '' THEN ? ELSE last_modified END,
		    last_error = NULL,
		    last_error_at = NULL,
		    updated_at = ?
		WHERE id = ?
	`
	now := time.Now().UTC()
	err := s.withRetry(ctx, func() error {
		_, err := s.conn.ExecContext(ctx, query, now, etag, etag, lastModified, lastModified, now, siteID)
		return err
	})
	if err != nil {
		return fmt.Errorf("mark site checked: %w", err)
	}
	return nil
}

// MarkError records a failed check without touching validators or the
// last-checked timestamp
func (s *Store) MarkError(ctx context.Context, siteID int64, msg string) error {
	query := `
		UPDATE sites
		SET last_error = ?, last_error_at = ?, updated_at = ?
		WHERE id = ?
	`
	now := time.Now().UTC()
	err := s.withRetry(ctx, func() error {
		_, err := s.conn.ExecContext(ctx, query, msg, now, now, siteID)
		return err
	})
	if err != nil {
		return fmt.Errorf("mark site error: %w", err)
	}
	return nil
}
