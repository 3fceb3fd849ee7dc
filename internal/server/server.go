// Package server implements the embed HTTP API: JSON, HTML, and SVG
// tweet endpoints behind shared request-ID, logging, security, and
// rate-limit middleware.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/embedkit/tweetcard/internal/config"
	"github.com/embedkit/tweetcard/pkg/twitter"
)

// Server wires the tweet retriever to the HTTP routes.
type Server struct {
	cfg     config.Config
	logger  *charmlog.Logger
	tweets  twitter.Fetcher
	limiter *rateLimiter
}

// New creates a Server. The fetcher is normally a
// twitter.CachedService, but any Fetcher works.
func New(cfg config.Config, logger *charmlog.Logger, tweets twitter.Fetcher) *Server {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Server{
		cfg:     cfg,
		logger:  logger,
		tweets:  tweets,
		limiter: newRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimitWindow()),
	}
}

// Router builds the route tree. The render routes share the rate
// limiter and the public cache-control policy; health and the index do
// not count against the limit.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(securityHeaders)
	r.Use(corsHeaders)

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)

	r.Group(func(r chi.Router) {
		r.Use(s.limiter.middleware)
		r.Use(s.cacheControl)
		r.Get("/api/tweet", s.handleTweetJSON)
		r.Get("/tweet", s.handleTweetHTML)
		r.Get("/tweet-svg", s.handleTweetSVG)
	})

	r.NotFound(s.handleNotFound)
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully with a 10 second drain window.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
