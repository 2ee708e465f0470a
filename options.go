package plaid

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/plaid/transport"
)

// Option configures the transport of a [Client] built with [New].
type Option = transport.Option

// WithHTTPClient replaces the [http.Client] used for every call.
func WithHTTPClient(hc *http.Client) Option { return transport.WithHTTPClient(hc) }

// WithTransport sets a custom [http.RoundTripper] as the base transport.
func WithTransport(rt http.RoundTripper) Option { return transport.WithTransport(rt) }

// WithTimeout bounds every call, including reading the response body.
func WithTimeout(d time.Duration) Option { return transport.WithTimeout(d) }

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option { return transport.WithUserAgent(ua) }

// WithAPIVersion pins the API version sent in the Plaid-Version header.
func WithAPIVersion(version string) Option { return transport.WithAPIVersion(version) }

// WithThrottle paces calls client-side with a token bucket.
func WithThrottle(rps, burst int) Option { return transport.WithThrottle(rps, burst) }

// WithLogger injects a custom [slog.Logger].
func WithLogger(logger *slog.Logger) Option { return transport.WithLogger(logger) }

// WithTracer records a span around every call.
func WithTracer(tracer trace.Tracer) Option { return transport.WithTracer(tracer) }
