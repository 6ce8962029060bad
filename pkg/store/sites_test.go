package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSite(t *testing.T, s *Store, url string) *Site {
	t.Helper()
	site := &Site{
		URL:                url,
		DiscoveryMethod:    "rss",
		ScrapeConfig:       "{}",
		CheckIntervalHours: 6,
		Enabled:            true,
	}
	require.NoError(t, s.UpsertSiteConfig(context.Background(), site))
	require.NotZero(t, site.ID)
	return site
}

func TestStore_UpsertSiteConfig(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	site := makeSite(t, s, "https://example.com")

	// simulate a successful check having stored validators
	require.NoError(t, s.MarkChecked(ctx, site.ID, `"v1"`, "Mon, 01 Apr 2024 10:00:00 GMT"))

	// re-seeding updates config but preserves check state
	updated := &Site{
		URL:                "https://example.com",
		RSSURL:             "https://example.com/feed.xml",
		Title:              "Example",
		DiscoveryMethod:    "hybrid",
		ScrapeConfig:       `{"list_selector":"main"}`,
		CheckIntervalHours: 12,
		Enabled:            true,
	}
	require.NoError(t, s.UpsertSiteConfig(ctx, updated))
	assert.Equal(t, site.ID, updated.ID, "same url keeps the same row")

	stored, err := s.GetSite(ctx, site.ID)
	require.NoError(t, err)
	assert.Equal(t, "hybrid", stored.DiscoveryMethod)
	assert.Equal(t, "https://example.com/feed.xml", stored.RSSURL)
	assert.Equal(t, 12, stored.CheckIntervalHours)
	assert.Equal(t, `"v1"`, stored.ETag, "etag survives re-seeding")
	assert.True(t, stored.LastCheckedAt.Valid)
}

func TestStore_MarkChecked(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	site := makeSite(t, s, "https://example.com")

	t.Run("records validators and clears error", func(t *testing.T) {
		require.NoError(t, s.MarkError(ctx, site.ID, "boom"))
		require.NoError(t, s.MarkChecked(ctx, site.ID, `"e1"`, "Tue, 02 Apr 2024 10:00:00 GMT"))

		stored, err := s.GetSite(ctx, site.ID)
		require.NoError(t, err)
		assert.Equal(t, `"e1"`, stored.ETag)
		assert.Equal(t, "Tue, 02 Apr 2024 10:00:00 GMT", stored.LastModified)
		assert.True(t, stored.LastCheckedAt.Valid)
		assert.False(t, stored.LastError.Valid, "error cleared on success")
		assert.False(t, stored.LastErrorAt.Valid)
	})

	t.Run("empty validators leave stored ones untouched", func(t *testing.T) {
		before, err := s.GetSite(ctx, site.ID)
		require.NoError(t, err)

		require.NoError(t, s.MarkChecked(ctx, site.ID, "", ""))

		after, err := s.GetSite(ctx, site.ID)
		require.NoError(t, err)
		assert.Equal(t, before.ETag, after.ETag)
		assert.Equal(t, before.LastModified, after.LastModified)
	})
}

func TestStore_MarkError(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	site := makeSite(t, s, "https://example.com")

	require.NoError(t, s.MarkError(ctx, site.ID, "unexpected status code: 500"))

	stored, err := s.GetSite(ctx, site.ID)
	require.NoError(t, err)
	require.True(t, stored.LastError.Valid)
	assert.Equal(t, "unexpected status code: 500", stored.LastError.String)
	assert.True(t, stored.LastErrorAt.Valid)
	assert.False(t, stored.LastCheckedAt.Valid, "error does not count as a check")
}

func TestStore_SitesDueForCheck(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	never := makeSite(t, s, "https://never-checked.example.com")
	fresh := makeSite(t, s, "https://fresh.example.com")
	stale := makeSite(t, s, "https://stale.example.com")
	disabled := makeSite(t, s, "https://disabled.example.com")

	// fresh checked now, stale checked two days ago, disabled turned off
	require.NoError(t, s.MarkChecked(ctx, fresh.ID, "", ""))
	_, err := s.conn.ExecContext(ctx,
		`UPDATE sites SET last_checked_at = datetime('now', '-2 days') WHERE id = ?`, stale.ID)
	require.NoError(t, err)
	_, err = s.conn.ExecContext(ctx, `UPDATE sites SET enabled = 0 WHERE id = ?`, disabled.ID)
	require.NoError(t, err)

	due, err := s.SitesDueForCheck(ctx, 10)
	require.NoError(t, err)

	ids := make([]int64, 0, len(due))
	for _, d := range due {
		ids = append(ids, d.ID)
	}
	assert.Contains(t, ids, never.ID)
	assert.Contains(t, ids, stale.ID)
	assert.NotContains(t, ids, fresh.ID)
	assert.NotContains(t, ids, disabled.ID)
}

func TestStore_GetSiteByURL(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	makeSite(t, s, "https://example.com")

	site, err := s.GetSiteByURL(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", site.URL)

	_, err = s.GetSiteByURL(ctx, "https://nope.example.com")
	require.Error(t, err)
}

func TestSite_Discovery(t *testing.T) {
	site := Site{
		ID:              4,
		URL:             "https://example.com",
		RSSURL:          "https://example.com/feed.xml",
		DiscoveryMethod: "scraping",
		ScrapeConfig:    `{"list_selector":"main","link_selector":"a.post","allow_patterns":["article"]}`,
		ETag:            `"v1"`,
	}

	ds, err := site.Discovery()
	require.NoError(t, err)
	assert.Equal(t, int64(4), ds.ID)
	assert.Equal(t, "scraping", ds.Method)
	assert.Equal(t, "main", ds.Scrape.ListSelector)
	assert.Equal(t, "a.post", ds.Scrape.LinkSelector)
	assert.Equal(t, []string{"article"}, ds.Scrape.AllowPatterns)
	assert.Equal(t, `"v1"`, ds.ETag)

	t.Run("broken scrape config", func(t *testing.T) {
		bad := Site{ID: 1, ScrapeConfig: "not json"}
		_, err := bad.Discovery()
		require.Error(t, err)
	})
}
