// Package server exposes the previewer over HTTP: GET / renders the
// document named by the path query parameter, GET /watch streams live-reload
// notifications for it.
package server

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/uptrace/bunrouter"

	"github.com/elijah-potter/tatum/internal/markdown"
	"github.com/elijah-potter/tatum/internal/page"
)

// Server renders documents on demand. It holds no per-request state; all
// requests may proceed in parallel.
type Server struct {
	renderer   *markdown.Renderer
	liveReload bool
}

func New(renderer *markdown.Renderer, liveReload bool) *Server {
	return &Server{renderer: renderer, liveReload: liveReload}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	router := bunrouter.New(
		bunrouter.Use(loggingMiddleware),
	).Compat()

	router.GET("/", s.handleIndex)
	router.GET("/watch", s.handleWatch)

	return router
}

func loggingMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		start := time.Now()
		err := next(w, req)
		slog.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"query", req.URL.RawQuery,
			"elapsed", time.Since(start))
		return err
	}
}

// handleIndex renders the document named by ?path= and serves the assembled
// page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	docPath := r.URL.Query().Get("path")
	if docPath == "" {
		http.Error(w, "missing path query parameter", http.StatusBadRequest)
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		slog.Error("working directory unavailable", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	result, err := s.renderer.RenderFile(docPath, cwd)
	if err != nil {
		slog.Warn("render failed", "path", docPath, "err", err)
		if errors.Is(err, fs.ErrNotExist) {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}
		http.Error(w, "unable to render document", http.StatusInternalServerError)
		return
	}

	html, err := page.Render(result.Title, result.Body, s.liveReload)
	if err != nil {
		slog.Error("page assembly failed", "path", docPath, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		slog.Warn("write response", "err", err)
	}
}
