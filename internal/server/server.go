// SPDX-License-Identifier: MIT

// Package server exposes the analysis manager over HTTP.
//
//	POST   /v1/analyses       submit a network (body: reaction text)
//	GET    /v1/analyses       list jobs
//	GET    /v1/analyses/{id}  fetch a job with its report
//	DELETE /v1/analyses/{id}  cancel a job
//	GET    /healthz           liveness plus dependency checks
//	GET    /metrics           Prometheus exposition, when enabled
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crntk/analysis"
	"github.com/katalvlaran/crntk/internal/logging"
)

// DefaultMaxBodyBytes bounds a submitted document unless WithMaxBodyBytes
// says otherwise.
const DefaultMaxBodyBytes = 1 << 20

// Check reports the health of one dependency.
type Check func(ctx context.Context) error

// Server routes HTTP requests to a Manager.
type Server struct {
	mgr     *analysis.Manager
	log     logging.Logger
	metrics http.Handler
	checks  map[string]Check
	maxBody int64
	mux     *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithCheck adds a named dependency check to /healthz.
func WithCheck(name string, c Check) Option {
	return func(s *Server) { s.checks[name] = c }
}

// WithMaxBodyBytes bounds the size of a submitted document.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// New returns a Server for mgr.
func New(mgr *analysis.Manager, opts ...Option) *Server {
	s := &Server{
		mgr:     mgr,
		log:     logging.NewNop(),
		checks:  make(map[string]Check),
		maxBody: DefaultMaxBodyBytes,
		mux:     http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named("http")
	s.routes()

	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /v1/analyses", s.submit)
	s.mux.HandleFunc("GET /v1/analyses", s.list)
	s.mux.HandleFunc("GET /v1/analyses/{id}", s.get)
	s.mux.HandleFunc("DELETE /v1/analyses/{id}", s.cancel)
	s.mux.HandleFunc("GET /healthz", s.health)
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics)
	}
}

// Handler returns the routed handler wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return requestLogging(s.log, s.mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully within timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, timeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}

	return s.Serve(ctx, ln, timeout)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, timeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", logging.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		s.log.Info("shutting down", logging.Duration("timeout", timeout))
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
