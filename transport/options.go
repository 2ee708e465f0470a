package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/plaid/transport/throttle"
)

// Option is a functional option for configuring an [Invoker] via [New].
type Option func(*options) error
type options struct {
	client     *http.Client
	rt         http.RoundTripper
	timeout    *time.Duration
	userAgent  string
	apiVersion string
	throttle   *throttle.Config
	logger     *slog.Logger
	tracer     trace.Tracer
}

// WithHTTPClient replaces the [http.Client] used by the [Invoker].
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("http client must not be nil")
		}
		o.client = hc
		return nil
	}
}

// WithTransport sets a custom [http.RoundTripper] as the base transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		o.rt = rt
		return nil
	}
}

// WithTimeout sets the overall request timeout on the underlying [http.Client].
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		o.timeout = &d
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent with every call.
func WithUserAgent(header string) Option {
	return func(o *options) error {
		if header == "" {
			return errors.New("user agent must not be empty")
		}
		o.userAgent = header
		return nil
	}
}

// WithAPIVersion pins the API version through the Plaid-Version header.
func WithAPIVersion(version string) Option {
	return func(o *options) error {
		o.apiVersion = version
		return nil
	}
}

// WithThrottle enables token-bucket rate limiting with the given requests per second and burst capacity.
func WithThrottle(rps, burst int) Option {
	return func(o *options) error {
		cfg := throttle.Config{RPS: rps, Burst: burst}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("throttle: %w", err)
		}
		o.throttle = &cfg
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Invoker].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithTracer records a span around every call.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

// headers is an http.RoundTripper that stamps the persistent headers
// onto every outgoing request.
type headers struct {
	userAgent  string
	apiVersion string
	base       http.RoundTripper
}

func (h headers) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", h.userAgent)
	if h.apiVersion != "" {
		cpy.Header.Set("Plaid-Version", h.apiVersion)
	}
	return h.base.RoundTrip(cpy)
}
