package server

import (
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*config)

type config struct {
	addr     string
	timeouts Timeouts
	logger   *slog.Logger
}

// Timeouts bounds each phase of a connection's life. Zero fields keep
// their defaults.
type Timeouts struct {
	Read     time.Duration
	Write    time.Duration
	Idle     time.Duration
	Shutdown time.Duration
}

var defaultTimeouts = Timeouts{
	Read:     5 * time.Second,
	Write:    10 * time.Second,
	Idle:     120 * time.Second,
	Shutdown: 20 * time.Second,
}

// WithAddr sets the listen address. An empty addr keeps the default.
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// WithTimeouts overrides the non-zero fields of t.
func WithTimeouts(t Timeouts) Option {
	return func(c *config) {
		if t.Read > 0 {
			c.timeouts.Read = t.Read
		}
		if t.Write > 0 {
			c.timeouts.Write = t.Write
		}
		if t.Idle > 0 {
			c.timeouts.Idle = t.Idle
		}
		if t.Shutdown > 0 {
			c.timeouts.Shutdown = t.Shutdown
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.logger = log
		}
	}
}
