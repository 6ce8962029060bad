package discovery

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedInfo describes a live feed found by probing a URL
type FeedInfo struct {
	Title       string
	Description string
	ItemCount   int
}

// FeedProber checks whether a URL serves a parseable RSS/Atom feed. Used
// when seeding sites without an explicit discovery method: a URL that
// probes as a feed gets the rss method, anything else falls back to
// scraping.
type FeedProber struct {
	parser *gofeed.Parser
}

// NewFeedProber creates a prober with a bounded-timeout HTTP client
func NewFeedProber(timeout time.Duration, userAgent string) *FeedProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	p := gofeed.NewParser()
	p.UserAgent = userAgent
	p.Client = &http.Client{Timeout: timeout}
	return &FeedProber{parser: p}
}

// Probe fetches and parses the URL as a feed
func (p *FeedProber) Probe(ctx context.Context, url string) (*FeedInfo, error) {
	feed, err := p.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("probe feed %s: %w", url, err)
	}
	return &FeedInfo{
		Title:       feed.Title,
		Description: feed.Description,
		ItemCount:   len(feed.Items),
	}, nil
}
