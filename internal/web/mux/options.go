package mux

import (
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel/trace"
)

// Option configures an App.
type Option func(*options)

type options struct {
	mw     []Middleware
	logger *slog.Logger
	tracer trace.Tracer
}

// WithMiddleware sets the App's chain, outermost first. Errors must
// come before Panics so recovered panics are rendered.
func WithMiddleware(mw ...Middleware) Option {
	chain := slices.Clone(mw)

	return func(o *options) {
		o.mw = chain
	}
}

// WithTracer starts a span per request with tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		if tracer != nil {
			o.tracer = tracer
		}
	}
}

// WithLogger sets where unhandled handler errors are logged.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}
