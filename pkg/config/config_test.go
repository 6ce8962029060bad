package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedscout.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s

discovery:
  timeout: 5s
  max_workers: 3

sites:
  - url: https://example.com
    rss_url: https://example.com/feed.xml
    discovery_method: rss
  - url: https://scraped.example.com
    discovery_method: scraping
    check_interval_hours: 12
    scrape:
      list_selector: main
      link_selector: a.post
      allow_patterns: ["article"]
      deny_patterns: ["/tag/"]
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 5*time.Second, cfg.Discovery.Timeout)
		assert.Equal(t, 3, cfg.Discovery.MaxWorkers)

		require.Len(t, cfg.Sites, 2)
		assert.Equal(t, "https://example.com/feed.xml", cfg.Sites[0].RSSURL)
		assert.Equal(t, 6, cfg.Sites[0].CheckIntervalHours, "default applied")
		assert.Equal(t, 12, cfg.Sites[1].CheckIntervalHours)
		assert.Equal(t, "main", cfg.Sites[1].Scrape.ListSelector)
		assert.Equal(t, []string{"article"}, cfg.Sites[1].Scrape.AllowPatterns)
	})

	t.Run("defaults", func(t *testing.T) {
		path := writeConfig(t, `sites: []`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 10*time.Second, cfg.Discovery.Timeout)
		assert.Equal(t, 15*time.Minute, cfg.Discovery.SweepInterval)
		assert.Equal(t, 5, cfg.Discovery.MaxWorkers)
		assert.Equal(t, 50, cfg.Discovery.BatchSize)
		assert.NotEmpty(t, cfg.Discovery.UserAgent)
		assert.NotEmpty(t, cfg.Database.DSN)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("FEEDSCOUT_TEST_LISTEN", ":7070")
		path := writeConfig(t, `
server:
  listen: "${FEEDSCOUT_TEST_LISTEN}"
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Server.Listen)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/feedscout.yml")
		require.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [not a map")
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "site without url",
			content: "sites:\n  - discovery_method: rss\n",
			wantErr: "site url is required",
		},
		{
			name:    "bad discovery method",
			content: "sites:\n  - url: https://example.com\n    discovery_method: telepathy\n",
			wantErr: "unsupported discovery_method",
		},
		{
			name:    "short server timeout",
			content: "server:\n  timeout: 10ms\n",
			wantErr: "server.timeout",
		},
		{
			name:    "short discovery timeout",
			content: "discovery:\n  timeout: 100ms\n",
			wantErr: "discovery.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	assert.NotNil(t, schema)
}
