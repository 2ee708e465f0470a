// Package mux routes requests to error-returning handlers wrapped in
// middleware, and gives each request an id and a span.
package mux

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Handler handles a request. A returned error has not been written to
// the client.
type Handler func(ctx context.Context, w http.ResponseWriter, r *http.Request) error

// Middleware wraps a Handler.
type Middleware func(next Handler) Handler

// App is an http.Handler over a ServeMux.
type App struct {
	mux    *http.ServeMux
	chain  []Middleware
	logger *slog.Logger
	tracer trace.Tracer
}

// New builds an App. Spans go to a no-op tracer and unhandled errors to
// slog.Default unless configured otherwise.
func New(opts ...Option) *App {
	o := options{
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &App{
		mux:    http.NewServeMux(),
		chain:  o.mw,
		logger: o.logger,
		tracer: o.tracer,
	}
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

// Use appends middleware to the App's chain. Routes registered earlier
// keep the chain they were registered with.
func (a *App) Use(mw ...Middleware) {
	a.chain = append(a.chain, mw...)
}

// Post registers fn for POST requests matching pattern.
func (a *App) Post(pattern string, fn Handler, mw ...Middleware) {
	a.Handle(http.MethodPost, pattern, fn, mw...)
}

// Handle registers fn for method and pattern. The App's chain runs
// first, then mw, then fn.
func (a *App) Handle(method, pattern string, fn Handler, mw ...Middleware) {
	h := wrap(a.chain, wrap(mw, fn))

	a.mux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.startSpan(w, r)
		defer span.End()

		v := Values{
			RequestID: requestID(span),
			Start:     time.Now().UTC(),
		}
		ctx = withValues(ctx, &v)

		if err := h(ctx, w, r.WithContext(ctx)); err != nil {
			a.logger.Error("unhandled error", "method", method, "path", r.URL.Path, "request_id", v.RequestID, "error", err)
		}
	})
}

// startSpan continues any trace propagated by the caller and echoes the
// span context in the response headers.
func (a *App) startSpan(w http.ResponseWriter, r *http.Request) (context.Context, trace.Span) {
	prop := otel.GetTextMapPropagator()

	ctx := prop.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := a.tracer.Start(ctx, r.Method+" "+r.URL.Path, trace.WithSpanKind(trace.SpanKindServer))
	span.SetAttributes(attribute.String("http.route", r.Pattern))

	prop.Inject(ctx, propagation.HeaderCarrier(w.Header()))

	return ctx, span
}

// requestID reuses the trace id when a real tracer is installed.
func requestID(span trace.Span) string {
	if id := span.SpanContext().TraceID(); id.IsValid() {
		return id.String()
	}
	return uuid.NewString()
}

func wrap(mw []Middleware, h Handler) Handler {
	for _, m := range slices.Backward(mw) {
		if m != nil {
			h = m(h)
		}
	}
	return h
}
