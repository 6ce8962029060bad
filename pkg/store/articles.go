package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/feedscout/feedscout/pkg/discovery"
)

// UpsertArticles stores discovered entries for a site in one transaction.
// The (site_id, url) uniqueness constraint makes re-inserting a known URL a
// no-op, which keeps repeated discovery of unchanged content duplicate-free.
// Summaries come from third-party feeds and are sanitized before storage.
func (s *Store) UpsertArticles(ctx context.Context, siteID int64, entries []discovery.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO articles (site_id, url, title, summary, published_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(site_id, url) DO NOTHING
	`
	err := s.withRetry(ctx, func() error {
		return s.InTransaction(ctx, func(tx *sqlx.Tx) error {
			for _, e := range entries {
				published := sql.NullTime{Time: e.Published, Valid: !e.Published.IsZero()}
				summary := s.sanitizer.Sanitize(e.Summary)
				if _, err := tx.ExecContext(ctx, query, siteID, e.URL, e.Title, summary, published); err != nil {
					return fmt.Errorf("insert article %s: %w", e.URL, err)
				}
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("upsert articles for site %d: %w", siteID, err)
	}
	return nil
}

// ListArticles retrieves articles with pagination, newest first. A zero
// siteID returns articles across all sites.
func (s *Store) ListArticles(ctx context.Context, siteID int64, limit, offset int) ([]Article, error) {
	var articles []Article
	var err error

	if siteID > 0 {
		query := `
			SELECT * FROM articles
			WHERE site_id = ?
			ORDER BY discovered_at DESC, id DESC
			LIMIT ? OFFSET ?
		`
		err = s.conn.SelectContext(ctx, &articles, query, siteID, limit, offset)
	} else {
		query := `
			SELECT * FROM articles
			ORDER BY discovered_at DESC, id DESC
			LIMIT ? OFFSET ?
		`
		err = s.conn.SelectContext(ctx, &articles, query, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// CountArticles returns the number of stored articles for a site, or for
// all sites when siteID is zero
func (s *Store) CountArticles(ctx context.Context, siteID int64) (int, error) {
	var count int
	var err error
	if siteID > 0 {
		err = s.conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM articles WHERE site_id = ?`, siteID)
	} else {
		err = s.conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM articles`)
	}
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}
