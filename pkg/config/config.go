package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/feedscout/feedscout/pkg/discovery"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP status server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Status server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedscout.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Discovery struct {
		Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per-request timeout for outbound fetches"`
		UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for discovery requests"`
		SweepInterval time.Duration `yaml:"sweep_interval" json:"sweep_interval" jsonschema:"default=15m,description=How often to look for sites due for a check"`
		MaxWorkers    int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent site checks"`
		BatchSize     int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=50,description=Maximum sites picked up per sweep"`
	} `yaml:"discovery" json:"discovery" jsonschema:"description=Discovery pipeline configuration"`

	Sites []Site `yaml:"sites" json:"sites" jsonschema:"description=Sites seeded into the store at startup"`
}

// Site is a seed entry for one discovery target. An empty discovery_method
// is auto-detected at seed time by probing the URL as a feed.
type Site struct {
	URL                string                 `yaml:"url" json:"url" jsonschema:"required,description=Site URL"`
	RSSURL             string                 `yaml:"rss_url" json:"rss_url" jsonschema:"description=Explicit feed URL when it differs from the site URL"`
	Title              string                 `yaml:"title" json:"title" jsonschema:"description=Display title (filled from the feed when probed)"`
	Method             string                 `yaml:"discovery_method" json:"discovery_method" jsonschema:"enum=rss,enum=scraping,enum=hybrid,description=Discovery strategy (empty: auto-detect)"`
	CheckIntervalHours int                    `yaml:"check_interval_hours" json:"check_interval_hours" jsonschema:"default=6,description=Hours between checks"`
	Disabled           bool                   `yaml:"disabled" json:"disabled" jsonschema:"description=Exclude the site from sweeps"`
	Scrape             discovery.ScrapeConfig `yaml:"scrape" json:"scrape" jsonschema:"description=Scraping selectors and link patterns"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedscout.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for discovery
	if cfg.Discovery.Timeout == 0 {
		cfg.Discovery.Timeout = discovery.DefaultTimeout
	}
	if cfg.Discovery.UserAgent == "" {
		cfg.Discovery.UserAgent = discovery.DefaultUserAgent
	}
	if cfg.Discovery.SweepInterval == 0 {
		cfg.Discovery.SweepInterval = 15 * time.Minute
	}
	if cfg.Discovery.MaxWorkers == 0 {
		cfg.Discovery.MaxWorkers = 5
	}
	if cfg.Discovery.BatchSize == 0 {
		cfg.Discovery.BatchSize = 50
	}

	// per-site defaults
	for i := range cfg.Sites {
		if cfg.Sites[i].CheckIntervalHours == 0 {
			cfg.Sites[i].CheckIntervalHours = 6
		}
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server.timeout must be at least 1 second")
	}
	if cfg.Discovery.Timeout < time.Second {
		return fmt.Errorf("discovery.timeout must be at least 1 second")
	}
	if cfg.Discovery.MaxWorkers < 1 {
		return fmt.Errorf("discovery.max_workers must be at least 1")
	}

	for _, site := range cfg.Sites {
		if site.URL == "" {
			return fmt.Errorf("site url is required")
		}
		switch site.Method {
		case "", discovery.MethodRSS, discovery.MethodScraping, discovery.MethodHybrid:
		default:
			return fmt.Errorf("site %s: unsupported discovery_method %q", site.URL, site.Method)
		}
		if site.CheckIntervalHours < 1 {
			return fmt.Errorf("site %s: check_interval_hours must be at least 1", site.URL)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
