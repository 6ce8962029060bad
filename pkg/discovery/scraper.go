package discovery

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/feedscout/feedscout/pkg/urlnorm"
)

// selector defaults applied when a site has no scrape config
const (
	defaultListSelector = "body"
	defaultLinkSelector = "a[href]"
)

// Scraper extracts article links from arbitrary HTML using per-site CSS
// selectors. Unlike feed parsing there is no fallback strategy, so a
// document that cannot be processed is a hard error.
type Scraper struct{}

// NewScraper creates an HTML scraper
func NewScraper() *Scraper {
	return &Scraper{}
}

// Scrape finds links under cfg.ListSelector matching cfg.LinkSelector,
// normalizes them against baseURL, filters them through the allow/deny
// patterns and deduplicates by normalized URL keeping document order.
// Scraped entries carry no summary or timestamp.
func (s *Scraper) Scrape(data []byte, baseURL string, cfg ScrapeConfig) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	listSel := cfg.ListSelector
	if listSel == "" {
		listSel = defaultListSelector
	}
	linkSel := cfg.LinkSelector
	if linkSel == "" {
		linkSel = defaultLinkSelector
	}

	listMatcher, err := cascadia.Compile(listSel)
	if err != nil {
		return nil, fmt.Errorf("compile list selector %q: %w", listSel, err)
	}
	linkMatcher, err := cascadia.Compile(linkSel)
	if err != nil {
		return nil, fmt.Errorf("compile link selector %q: %w", linkSel, err)
	}

	seen := map[string]struct{}{}
	var entries []Entry

	doc.FindMatcher(listMatcher).Each(func(_ int, container *goquery.Selection) {
		container.FindMatcher(linkMatcher).Each(func(_ int, link *goquery.Selection) {
			href, ok := link.Attr("href")
			if !ok || href == "" {
				return
			}
			u, err := urlnorm.Normalize(href, baseURL)
			if err != nil {
				return
			}
			if !urlnorm.Match(u, cfg.AllowPatterns, cfg.DenyPatterns) {
				return
			}
			if _, dup := seen[u]; dup {
				return
			}
			seen[u] = struct{}{}
			entries = append(entries, Entry{
				URL:   u,
				Title: strings.Join(strings.Fields(link.Text()), " "),
			})
		})
	})

	return entries, nil
}
