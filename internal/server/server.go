// Package server exposes the staircase pipeline and design library over
// HTTP. It wires a chi router with request logging, panic recovery, and
// JSON error responses that carry the same error codes the CLI reports.
//
// The server is transport only: all computation goes through
// pipeline.Runner and all persistence through library.Store, so the
// HTTP layer and the CLI share caching behavior and error semantics.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/staircast/staircast/pkg/library"
	"github.com/staircast/staircast/pkg/pipeline"
)

const (
	shutdownTimeout = 10 * time.Second

	// Spec documents are tiny; anything larger is a client error.
	maxBodyBytes = 1 << 20
)

// Config carries the server's dependencies and listen address.
type Config struct {
	Addr   string
	Runner *pipeline.Runner
	Store  library.Store
	Logger *log.Logger
}

// Server serves the staircase HTTP API.
type Server struct {
	runner *pipeline.Runner
	store  library.Store
	logger *log.Logger
	http   *http.Server
}

// New creates a server from cfg. A nil logger falls back to the default
// logger; a nil runner gets a cacheless one. Store may be nil, in which
// case the design routes report the library as unavailable.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	runner := cfg.Runner
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}

	s := &Server{
		runner: runner,
		store:  cfg.Store,
		logger: logger,
	}
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(s.recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/compute", s.handleCompute)
		r.Post("/render", s.handleRender)

		r.Route("/designs", func(r chi.Router) {
			r.Get("/", s.handleListDesigns)
			r.Post("/", s.handleCreateDesign)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetDesign)
				r.Put("/", s.handleUpdateDesign)
				r.Delete("/", s.handleDeleteDesign)
				r.Get("/preview.svg", s.handlePreview)
			})
		})
	})

	return r
}

// Start listens until ctx is canceled, then drains in-flight requests
// before returning. A listen failure is returned immediately.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("server shutting down")
	return s.http.Shutdown(shutdownCtx)
}
