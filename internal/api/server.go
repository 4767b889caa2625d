// Package api exposes the corpus model over a read-only JSON query API for
// the surrounding system (feed builders, site assemblers). The served
// model is swapped wholesale when a rebuild completes; requests never see
// a partially built corpus.
package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pressroom-io/pressroom/internal/corpus"
)

// ModelHolder hands out the current corpus model and accepts replacements
// atomically.
type ModelHolder struct {
	mu    sync.RWMutex
	model *corpus.Model
}

func NewModelHolder(initial *corpus.Model) *ModelHolder {
	return &ModelHolder{model: initial}
}

// Current returns the model being served.
func (h *ModelHolder) Current() *corpus.Model {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.model
}

// Swap replaces the served model.
func (h *ModelHolder) Swap(m *corpus.Model) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.model = m
}

// Server is the HTTP query server.
type Server struct {
	router chi.Router
	holder *ModelHolder
	log    *slog.Logger
	apiKey string
}

// NewServer creates and configures the server. apiKey may be empty, in
// which case the /api routes are open.
func NewServer(holder *ModelHolder, log *slog.Logger, apiKey string) *Server {
	s := &Server{holder: holder, log: log, apiKey: apiKey}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(AuthMiddleware(s.apiKey))
		}

		r.Get("/api/documents", s.handleListDocuments)
		r.Get("/api/documents/{slug}", s.handleDocument)
		r.Get("/api/documents/{slug}/related", s.handleRelated)
		r.Get("/api/tags", s.handleListTags)
		r.Get("/api/tags/{tag}", s.handleTag)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
