// Package server runs the local dev server: it serves the rendered page
// from memory, re-renders when the data source changes, and pushes reload
// events to connected browsers.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/akaram/folio/internal/config"
	"github.com/akaram/folio/internal/site"
)

// Server is the folio dev server.
type Server struct {
	cfg        *config.Config
	gen        *site.Generator
	log        *log.Entry
	page       atomic.Value // []byte
	hub        *reloadHub
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server around the given generator.
func New(cfg *config.Config, gen *site.Generator) *Server {
	s := &Server{
		cfg: cfg,
		gen: gen,
		log: log.WithField("component", "server"),
		hub: newReloadHub(),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handlePage)
	r.Get("/index.html", s.handlePage)
	r.Get("/style.css", blobHandler("text/css; charset=utf-8", site.StyleCSS))
	r.Get("/script.js", blobHandler("application/javascript; charset=utf-8", site.ScriptJS))
	r.Get("/data.json", s.handleData)
	r.Get("/ws", s.hub.handleWS)

	return r
}

// handlePage serves the most recent in-memory render.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page, _ := s.page.Load().([]byte)
	if page == nil {
		http.Error(w, "page not rendered yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleData serves a file-based data source so the deployed layout can be
// exercised locally. Remote sources are not proxied.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	src := s.cfg.DataSource
	if src == "" || isRemote(src) {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	http.ServeFile(w, r, src)
}

func blobHandler(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Rerender renders the page again and notifies connected browsers.
func (s *Server) Rerender(ctx context.Context) error {
	page, err := s.gen.RenderPage(ctx)
	if err != nil {
		return err
	}
	s.page.Store(page)
	s.hub.broadcast("reload")
	return nil
}

// Start renders the initial page, begins watching the data source, and
// listens on the configured port until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	page, err := s.gen.RenderPage(ctx)
	if err != nil {
		return fmt.Errorf("initial render: %w", err)
	}
	s.page.Store(page)

	go s.watch(ctx)

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.WithField("addr", addr).Info("dev server listening")
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
