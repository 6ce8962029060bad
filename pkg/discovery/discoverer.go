package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/site_state.go -pkg mocks -skip-ensure -fmt goimports . SiteState

// DefaultUserAgent identifies discovery requests to external sites
const DefaultUserAgent = "FeedScout/1.0 (+https://github.com/feedscout/feedscout)"

// DefaultTimeout bounds a single outbound request
const DefaultTimeout = 10 * time.Second

// feeds and listing pages larger than this are cut off
const maxBodySize = 10 * 1024 * 1024

// ErrUnknownMethod indicates a discovery_method value outside rss/scraping/hybrid
var ErrUnknownMethod = errors.New("unknown discovery method")

// HTTPError is returned for responses outside the 2xx range (304 excluded)
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Status)
}

// ArticleStore persists discovered candidates. Upserting the same
// (site, normalized url) pair twice must be a no-op.
type ArticleStore interface {
	UpsertArticles(ctx context.Context, siteID int64, entries []Entry) error
}

// SiteState records check outcomes on the site record. Empty etag or
// lastModified leaves the stored validator unchanged.
type SiteState interface {
	MarkChecked(ctx context.Context, siteID int64, etag, lastModified string) error
	MarkError(ctx context.Context, siteID int64, msg string) error
}

// Discoverer runs one discovery pass for a site: conditional fetch, feed
// parse or HTML scrape, persistence and site-state bookkeeping. A single
// instance is safe for concurrent use across different sites; concurrent
// calls for the same site are the caller's problem to serialize.
type Discoverer struct {
	client    *http.Client
	userAgent string
	parser    *Parser
	scraper   *Scraper
	articles  ArticleStore
	state     SiteState
}

// NewDiscoverer creates a discoverer with a bounded-timeout HTTP client
func NewDiscoverer(articles ArticleStore, state SiteState, timeout time.Duration, userAgent string) *Discoverer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Discoverer{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		parser:    NewParser(),
		scraper:   NewScraper(),
		articles:  articles,
		state:     state,
	}
}

// Discover runs the strategy configured on the site and returns the number
// of candidate entries found. An unknown method fails before any network
// activity or state mutation.
func (d *Discoverer) Discover(ctx context.Context, site Site) (int, error) {
	switch site.Method {
	case MethodRSS:
		return d.discoverFeed(ctx, site)
	case MethodScraping:
		return d.discoverScrape(ctx, site)
	case MethodHybrid:
		// rss first; on zero entries or any rss-branch failure the scraping
		// outcome replaces it, masking the rss error from the caller
		if n, err := d.discoverFeed(ctx, site); err == nil && n > 0 {
			return n, nil
		}
		return d.discoverScrape(ctx, site)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, site.Method)
	}
}

// discoverFeed fetches the feed URL with conditional headers and parses it
func (d *Discoverer) discoverFeed(ctx context.Context, site Site) (int, error) {
	feedURL := site.FeedURL()

	resp, err := d.get(ctx, feedURL, site.ETag, site.LastModified)
	if err != nil {
		d.markError(ctx, site, err.Error())
		return 0, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		lgr.Printf("[DEBUG] feed not modified: %s", feedURL)
		// validators stay as they are, only the check timestamp moves
		d.markChecked(ctx, site, "", "")
		return 0, nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		herr := &HTTPError{Status: resp.StatusCode}
		d.markError(ctx, site, herr.Error())
		return 0, herr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		d.markError(ctx, site, err.Error())
		return 0, fmt.Errorf("read feed %s: %w", feedURL, err)
	}

	entries := d.parser.Parse(body, feedURL)
	if err := d.articles.UpsertArticles(ctx, site.ID, entries); err != nil {
		return 0, fmt.Errorf("store %d entries for site %d: %w", len(entries), site.ID, err)
	}

	d.markChecked(ctx, site, resp.Header.Get("ETag"), resp.Header.Get("Last-Modified"))
	return len(entries), nil
}

// discoverScrape fetches the site page and scrapes it for article links.
// No conditional headers here, listing pages rarely honor revalidation.
func (d *Discoverer) discoverScrape(ctx context.Context, site Site) (int, error) {
	resp, err := d.get(ctx, site.URL, "", "")
	if err != nil {
		d.markError(ctx, site, err.Error())
		return 0, fmt.Errorf("fetch page %s: %w", site.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		herr := &HTTPError{Status: resp.StatusCode}
		d.markError(ctx, site, herr.Error())
		return 0, herr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		d.markError(ctx, site, err.Error())
		return 0, fmt.Errorf("read page %s: %w", site.URL, err)
	}

	entries, err := d.scraper.Scrape(body, site.URL, site.Scrape)
	if err != nil {
		return 0, fmt.Errorf("scrape %s: %w", site.URL, err)
	}

	if err := d.articles.UpsertArticles(ctx, site.ID, entries); err != nil {
		return 0, fmt.Errorf("store %d entries for site %d: %w", len(entries), site.ID, err)
	}

	d.markChecked(ctx, site, "", "")
	return len(entries), nil
}

// get performs a GET with the discovery user agent and optional cache
// validators, following redirects
func (d *Discoverer) get(ctx context.Context, rawURL, etag, lastModified string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", d.userAgent)
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	if lastModified != "" {
		req.Header.Set("If-Modified-Since", lastModified)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	return resp, nil
}

func (d *Discoverer) markChecked(ctx context.Context, site Site, etag, lastModified string) {
	if err := d.state.MarkChecked(ctx, site.ID, etag, lastModified); err != nil {
		lgr.Printf("[WARN] failed to mark site %d checked: %v", site.ID, err)
	}
}

func (d *Discoverer) markError(ctx context.Context, site Site, msg string) {
	if err := d.state.MarkError(ctx, site.ID, msg); err != nil {
		lgr.Printf("[WARN] failed to mark site %d error: %v", site.ID, err)
	}
}
