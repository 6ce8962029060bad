package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedscout/feedscout/pkg/store"
	"github.com/feedscout/feedscout/server/mocks"
)

func TestServer_New(t *testing.T) {
	srv := New(&mocks.DatabaseMock{}, ":8080", 30*time.Second, "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	err = listener.Close()
	require.NoError(t, err)

	database := &mocks.DatabaseMock{
		ListSitesFunc: func(ctx context.Context) ([]store.Site, error) {
			return []store.Site{}, nil
		},
		CountArticlesFunc: func(ctx context.Context, siteID int64) (int, error) {
			return 0, nil
		},
	}

	srv := New(database, fmt.Sprintf("127.0.0.1:%d", port), 30*time.Second, "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start server in background
	go func() {
		_ = srv.Run(ctx)
	}()

	// wait for server to start
	time.Sleep(100 * time.Millisecond)

	// make test request
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	// shutdown server
	cancel()
	time.Sleep(100 * time.Millisecond)
}

func TestServer_statusHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListSitesFunc: func(ctx context.Context) ([]store.Site, error) {
			return []store.Site{{ID: 1}, {ID: 2}}, nil
		},
		CountArticlesFunc: func(ctx context.Context, siteID int64) (int, error) {
			assert.Equal(t, int64(0), siteID, "status counts all articles")
			return 42, nil
		},
	}

	srv := New(database, ":8080", 30*time.Second, "1.2.3", false)

	req := httptest.NewRequest("GET", "/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.statusHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "1.2.3", resp["version"])
	assert.InDelta(t, 2, resp["sites"], 0.01)
	assert.InDelta(t, 42, resp["articles"], 0.01)
}

func TestServer_sitesHandler(t *testing.T) {
	checked := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	database := &mocks.DatabaseMock{
		ListSitesFunc: func(ctx context.Context) ([]store.Site, error) {
			return []store.Site{
				{
					ID:              1,
					URL:             "https://example.com",
					RSSURL:          "https://example.com/feed.xml",
					Title:           "Example",
					DiscoveryMethod: "rss",
					Enabled:         true,
					LastCheckedAt:   sql.NullTime{Time: checked, Valid: true},
				},
				{
					ID:              2,
					URL:             "https://broken.example.com",
					DiscoveryMethod: "scraping",
					Enabled:         true,
					LastError:       sql.NullString{String: "unexpected status code: 500", Valid: true},
					LastErrorAt:     sql.NullTime{Time: checked, Valid: true},
				},
			}, nil
		},
	}

	srv := New(database, ":8080", 30*time.Second, "test", false)

	req := httptest.NewRequest("GET", "/sites", http.NoBody)
	w := httptest.NewRecorder()
	srv.sitesHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []siteInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	assert.Equal(t, "https://example.com", resp[0].URL)
	assert.Equal(t, "rss", resp[0].Method)
	require.NotNil(t, resp[0].LastCheckedAt)
	assert.Equal(t, checked, resp[0].LastCheckedAt.UTC())
	assert.Empty(t, resp[0].LastError)

	assert.Equal(t, "unexpected status code: 500", resp[1].LastError)
	assert.Nil(t, resp[1].LastCheckedAt)
}

func TestServer_articlesHandler(t *testing.T) {
	published := time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC)
	database := &mocks.DatabaseMock{
		ListArticlesFunc: func(ctx context.Context, siteID int64, limit, offset int) ([]store.Article, error) {
			return []store.Article{
				{
					ID:           10,
					SiteID:       siteID,
					URL:          "https://example.com/article-1",
					Title:        "First",
					PublishedAt:  sql.NullTime{Time: published, Valid: true},
					DiscoveredAt: published.Add(time.Hour),
				},
				{
					ID:           11,
					SiteID:       siteID,
					URL:          "https://example.com/article-2",
					DiscoveredAt: published.Add(2 * time.Hour),
				},
			}, nil
		},
	}

	srv := New(database, ":8080", 30*time.Second, "test", false)

	t.Run("with params", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/articles?site_id=7&limit=10&offset=5", http.NoBody)
		w := httptest.NewRecorder()
		srv.articlesHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		calls := database.ListArticlesCalls()
		require.NotEmpty(t, calls)
		last := calls[len(calls)-1]
		assert.Equal(t, int64(7), last.SiteID)
		assert.Equal(t, 10, last.Limit)
		assert.Equal(t, 5, last.Offset)

		var resp []articleInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		require.NotNil(t, resp[0].PublishedAt)
		assert.Equal(t, published, resp[0].PublishedAt.UTC())
		assert.Nil(t, resp[1].PublishedAt, "articles without a date omit published_at")
	})

	t.Run("defaults and caps", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/articles?limit=9999", http.NoBody)
		w := httptest.NewRecorder()
		srv.articlesHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		calls := database.ListArticlesCalls()
		last := calls[len(calls)-1]
		assert.Equal(t, int64(0), last.SiteID)
		assert.Equal(t, 200, last.Limit, "limit capped")
		assert.Equal(t, 0, last.Offset)
	})
}

func TestServer_handlerErrors(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListSitesFunc: func(ctx context.Context) ([]store.Site, error) {
			return nil, assert.AnError
		},
		ListArticlesFunc: func(ctx context.Context, siteID int64, limit, offset int) ([]store.Article, error) {
			return nil, assert.AnError
		},
	}

	srv := New(database, ":8080", 30*time.Second, "test", false)

	for _, tc := range []struct {
		name    string
		path    string
		handler http.HandlerFunc
	}{
		{"status", "/status", srv.statusHandler},
		{"sites", "/sites", srv.sitesHandler},
		{"articles", "/articles", srv.articlesHandler},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, http.NoBody)
			w := httptest.NewRecorder()
			tc.handler(w, req)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
		})
	}
}
