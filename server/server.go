package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/feedscout/feedscout/pkg/store"
)

//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database

// Server is the operator-facing status API: which sites are configured,
// when they were last checked, what discovery found
type Server struct {
	db      Database
	listen  string
	timeout time.Duration
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	ListSites(ctx context.Context) ([]store.Site, error)
	ListArticles(ctx context.Context, siteID int64, limit, offset int) ([]store.Article, error)
	CountArticles(ctx context.Context, siteID int64) (int, error)
}

// New initializes a new server instance
func New(db Database, listen string, timeout time.Duration, version string, debug bool) *Server {
	s := &Server{
		db:      db,
		listen:  listen,
		timeout: timeout,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.listen,
		Handler:      s.router,
		ReadTimeout:  s.timeout,
		WriteTimeout: s.timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedscout", "feedscout", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /sites", s.sitesHandler)
		r.HandleFunc("GET /articles", s.articlesHandler)
	})
}

// siteInfo is the JSON shape of a site in API responses
type siteInfo struct {
	ID            int64      `json:"id"`
	URL           string     `json:"url"`
	RSSURL        string     `json:"rss_url,omitempty"`
	Title         string     `json:"title,omitempty"`
	Method        string     `json:"discovery_method"`
	Enabled       bool       `json:"enabled"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
	LastErrorAt   *time.Time `json:"last_error_at,omitempty"`
}

// articleInfo is the JSON shape of a discovered article in API responses
type articleInfo struct {
	ID           int64      `json:"id"`
	SiteID       int64      `json:"site_id"`
	URL          string     `json:"url"`
	Title        string     `json:"title,omitempty"`
	Summary      string     `json:"summary,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	DiscoveredAt time.Time  `json:"discovered_at"`
}

// statusHandler returns service status and totals
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	sites, err := s.db.ListSites(r.Context())
	if err != nil {
		http.Error(w, "failed to get sites", http.StatusInternalServerError)
		return
	}
	articles, err := s.db.CountArticles(r.Context(), 0)
	if err != nil {
		http.Error(w, "failed to count articles", http.StatusInternalServerError)
		return
	}

	rest.RenderJSON(w, map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"sites":    len(sites),
		"articles": articles,
	})
}

// sitesHandler lists configured sites with their check state
func (s *Server) sitesHandler(w http.ResponseWriter, r *http.Request) {
	sites, err := s.db.ListSites(r.Context())
	if err != nil {
		http.Error(w, "failed to get sites", http.StatusInternalServerError)
		return
	}

	infos := make([]siteInfo, 0, len(sites))
	for _, site := range sites {
		info := siteInfo{
			ID:      site.ID,
			URL:     site.URL,
			RSSURL:  site.RSSURL,
			Title:   site.Title,
			Method:  site.DiscoveryMethod,
			Enabled: site.Enabled,
		}
		if site.LastCheckedAt.Valid {
			t := site.LastCheckedAt.Time
			info.LastCheckedAt = &t
		}
		if site.LastError.Valid {
			info.LastError = site.LastError.String
		}
		if site.LastErrorAt.Valid {
			t := site.LastErrorAt.Time
			info.LastErrorAt = &t
		}
		infos = append(infos, info)
	}

	rest.RenderJSON(w, infos)
}

// articlesHandler lists discovered articles, optionally for one site
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	siteID, _ := strconv.ParseInt(r.URL.Query().Get("site_id"), 10, 64)

	limit := 50
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > 200 {
		limit = 200
	}
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}

	articles, err := s.db.ListArticles(r.Context(), siteID, limit, offset)
	if err != nil {
		http.Error(w, "failed to get articles", http.StatusInternalServerError)
		return
	}

	infos := make([]articleInfo, 0, len(articles))
	for _, a := range articles {
		info := articleInfo{
			ID:           a.ID,
			SiteID:       a.SiteID,
			URL:          a.URL,
			Title:        a.Title,
			Summary:      a.Summary,
			DiscoveredAt: a.DiscoveredAt,
		}
		if a.PublishedAt.Valid {
			t := a.PublishedAt.Time
			info.PublishedAt = &t
		}
		infos = append(infos, info)
	}

	rest.RenderJSON(w, infos)
}
