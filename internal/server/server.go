// Package server implements the stackbox HTTP layout service.
//
// Routes:
//
//	GET  /healthz      liveness and build version
//	POST /v1/check     minimum size of the TOML document in the body
//	POST /v1/layout    arranged frames as JSON (?width=&height=&hidden=)
//	POST /v1/render    rendered artifact (?format=svg|json|dot|tree&width=&height=&palette=&title=)
//
// Responses carry X-Cache: hit or miss. Errors are JSON objects with the
// error code and a user-facing message.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stackbox/pkg/pipeline"
)

const (
	defaultMaxBody = 1 << 20
	defaultTimeout = 30 * time.Second
)

// Option configures a [Server].
type Option func(*Server)

// WithMaxBody limits the size of request documents.
func WithMaxBody(n int64) Option { return func(s *Server) { s.maxBody = n } }

// WithTimeout limits the duration of a request.
func WithTimeout(d time.Duration) Option { return func(s *Server) { s.timeout = d } }

// Server serves layouts from a pipeline runner.
type Server struct {
	runner  *pipeline.Runner
	log     *log.Logger
	maxBody int64
	timeout time.Duration
}

// New creates a server. The runner's cache is shared by all requests.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		runner:  runner,
		log:     logger,
		maxBody: defaultMaxBody,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/toml", "text/plain", "application/octet-stream"))
		r.Post("/check", s.handleCheck)
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
