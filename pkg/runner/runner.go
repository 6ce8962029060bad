package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedscout/feedscout/pkg/config"
	"github.com/feedscout/feedscout/pkg/discovery"
	"github.com/feedscout/feedscout/pkg/store"
)

//go:generate moq -out mocks/site_store.go -pkg mocks -skip-ensure -fmt goimports . SiteStore
//go:generate moq -out mocks/discoverer.go -pkg mocks -skip-ensure -fmt goimports . Discoverer
//go:generate moq -out mocks/prober.go -pkg mocks -skip-ensure -fmt goimports . Prober

// SiteStore interface for runner operations
type SiteStore interface {
	SitesDueForCheck(ctx context.Context, limit int) ([]store.Site, error)
	UpsertSiteConfig(ctx context.Context, site *store.Site) error
}

// Discoverer runs one discovery pass for a site
type Discoverer interface {
	Discover(ctx context.Context, site discovery.Site) (int, error)
}

// Prober checks whether a URL serves a parseable feed
type Prober interface {
	Probe(ctx context.Context, url string) (*discovery.FeedInfo, error)
}

// Runner drives periodic discovery sweeps: every sweep interval it picks up
// sites whose check interval has elapsed and runs them through the
// discoverer with bounded concurrency.
type Runner struct {
	store         SiteStore
	discoverer    Discoverer
	prober        Prober
	sweepInterval time.Duration
	maxWorkers    int
	batchSize     int
}

// Params holds runner configuration
type Params struct {
	SweepInterval time.Duration
	MaxWorkers    int
	BatchSize     int
}

// New creates a runner instance
func New(siteStore SiteStore, discoverer Discoverer, prober Prober, params Params) *Runner {
	if params.SweepInterval == 0 {
		params.SweepInterval = 15 * time.Minute
	}
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 5
	}
	if params.BatchSize == 0 {
		params.BatchSize = 50
	}

	return &Runner{
		store:         siteStore,
		discoverer:    discoverer,
		prober:        prober,
		sweepInterval: params.SweepInterval,
		maxWorkers:    params.MaxWorkers,
		batchSize:     params.BatchSize,
	}
}

// Run starts the sweep loop, one sweep immediately and then one per
// interval, until the context is canceled
func (r *Runner) Run(ctx context.Context) error {
	lgr.Printf("[INFO] runner started, sweep interval %v, %d workers, batch size %d",
		r.sweepInterval, r.maxWorkers, r.batchSize)

	ticker := time.NewTicker(r.sweepInterval)
	defer ticker.Stop()

	r.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			lgr.Printf("[INFO] runner stopped")
			return ctx.Err()
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

// sweep checks all sites due for a check. Per-site failures are recorded on
// the site record by the discoverer and logged here, never aborting the
// sweep.
func (r *Runner) sweep(ctx context.Context) {
	sites, err := r.store.SitesDueForCheck(ctx, r.batchSize)
	if err != nil {
		lgr.Printf("[ERROR] failed to get sites due for check: %v", err)
		return
	}
	if len(sites) == 0 {
		lgr.Printf("[DEBUG] no sites due for check")
		return
	}

	lgr.Printf("[INFO] checking %d sites", len(sites))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxWorkers)

	for _, s := range sites {
		g.Go(func() error {
			site, err := s.Discovery()
			if err != nil {
				lgr.Printf("[WARN] skipping site %s: %v", s.URL, err)
				return nil
			}

			count, err := r.discoverer.Discover(ctx, site)
			if err != nil {
				lgr.Printf("[WARN] discovery failed for %s: %v", s.URL, err)
				return nil
			}
			lgr.Printf("[DEBUG] discovered %d entries for %s", count, s.URL)
			return nil
		})
	}

	_ = g.Wait() // workers log their own failures
	lgr.Printf("[INFO] sweep completed")
}

// Seed writes configured sites into the store. Sites without an explicit
// discovery method are probed: a URL that parses as a feed gets rss,
// anything else gets scraping. Existing check state survives re-seeding.
func (r *Runner) Seed(ctx context.Context, sites []config.Site) error {
	for _, s := range sites {
		method := s.Method
		title := s.Title

		if method == "" {
			feedURL := s.RSSURL
			if feedURL == "" {
				feedURL = s.URL
			}
			if info, err := r.prober.Probe(ctx, feedURL); err == nil {
				method = discovery.MethodRSS
				if title == "" {
					title = info.Title
				}
				lgr.Printf("[INFO] %s probed as feed (%d items), using rss", feedURL, info.ItemCount)
			} else {
				method = discovery.MethodScraping
				lgr.Printf("[INFO] %s is not a feed, using scraping: %v", feedURL, err)
			}
		}

		scrapeJSON, err := json.Marshal(s.Scrape)
		if err != nil {
			return fmt.Errorf("marshal scrape config for %s: %w", s.URL, err)
		}

		site := &store.Site{
			URL:                s.URL,
			RSSURL:             s.RSSURL,
			Title:              title,
			DiscoveryMethod:    method,
			ScrapeConfig:       string(scrapeJSON),
			CheckIntervalHours: s.CheckIntervalHours,
			Enabled:            !s.Disabled,
		}
		if err := r.store.UpsertSiteConfig(ctx, site); err != nil {
			return fmt.Errorf("seed site %s: %w", s.URL, err)
		}
		lgr.Printf("[INFO] seeded site %s (id %d, method %s)", s.URL, site.ID, method)
	}
	return nil
}
