// Package server runs an HTTP handler until its context ends, then drains
// in-flight requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// DefaultAddr is the loopback address used without WithAddr.
const DefaultAddr = "127.0.0.1:8080"

// Server wraps an [http.Server] with context-driven graceful shutdown.
type Server struct {
	srv      *http.Server
	drainFor time.Duration
	logger   *slog.Logger
}

func New(handler http.Handler, opts ...Option) *Server {
	c := config{
		addr:     DefaultAddr,
		timeouts: defaultTimeouts,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return &Server{
		srv: &http.Server{
			Addr:         c.addr,
			Handler:      handler,
			ReadTimeout:  c.timeouts.Read,
			WriteTimeout: c.timeouts.Write,
			IdleTimeout:  c.timeouts.Idle,
			ErrorLog:     slog.NewLogLogger(c.logger.Handler(), slog.LevelWarn),
		},
		drainFor: c.timeouts.Shutdown,
		logger:   c.logger,
	}
}

// Run listens on the configured address and serves until ctx ends.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx ends. A clean shutdown
// returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		serveErr <- s.srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)

	case <-ctx.Done():
	}

	s.logger.Info("draining", "cause", context.Cause(ctx), "timeout", s.drainFor.String())

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drainFor)
	defer cancel()

	if err := s.srv.Shutdown(drainCtx); err != nil {
		s.srv.Close()
		return fmt.Errorf("drain: %w", err)
	}

	s.logger.Info("stopped")

	return nil
}
