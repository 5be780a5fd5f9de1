// Package server exposes the solve runner over HTTP.
//
// Routes:
//
//	POST /v1/solve       solve a definition with one strategy
//	POST /v1/compare     solve a definition with every strategy
//	GET  /v1/runs        list recorded runs, newest first
//	GET  /v1/runs/{id}   fetch one recorded run
//	GET  /healthz        liveness probe
//	GET  /metrics        Prometheus metrics
//
// Errors are returned as JSON {"code": ..., "message": ...} with a status
// derived from the error code.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wayfinder/pkg/buildinfo"
	"github.com/matzehuels/wayfinder/pkg/history"
	"github.com/matzehuels/wayfinder/pkg/observability/promhooks"
	"github.com/matzehuels/wayfinder/pkg/solve"
)

// Defaults applied by New to zero Config fields.
const (
	DefaultAddr          = ":8080"
	DefaultSolveTimeout  = 30 * time.Second
	DefaultMaxIterations = 5_000_000

	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

// Config configures the server.
type Config struct {
	Addr string

	// SolveTimeout caps the wall-clock time of every search. Requests may
	// ask for less, never more.
	SolveTimeout time.Duration

	// MaxIterations caps dequeues per search episode, like SolveTimeout.
	MaxIterations int

	// Metrics serves GET /metrics. Nil uses the default Prometheus gatherer.
	Metrics http.Handler

	Logger *log.Logger
}

// Server is the HTTP API.
type Server struct {
	runner *solve.Runner
	store  history.Store
	cfg    Config
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by runner. store records every solve; nil
// uses an in-memory store.
func New(runner *solve.Runner, store history.Store, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.SolveTimeout <= 0 {
		cfg.SolveTimeout = DefaultSolveTimeout
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.Metrics == nil {
		cfg.Metrics = promhooks.Handler(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if store == nil {
		store = history.NewMemoryStore()
	}

	s := &Server{
		runner: runner,
		store:  store,
		cfg:    cfg,
		logger: cfg.Logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(observeRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/healthz", s.HandleHealth)
	r.Method(http.MethodGet, "/metrics", s.cfg.Metrics)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			// Compare runs several searches, each bounded by SolveTimeout.
			r.Use(middleware.Timeout(2 * s.cfg.SolveTimeout))
			r.Post("/solve", s.HandleSolve)
			r.Post("/compare", s.HandleCompare)
		})
		r.Get("/runs", s.HandleListRuns)
		r.Get("/runs/{id}", s.HandleGetRun)
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.cfg.Addr }

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
