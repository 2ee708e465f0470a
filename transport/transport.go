package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/plaid/transport/throttle"
)

// DefaultUserAgent is sent unless overridden with [WithUserAgent].
const DefaultUserAgent = "plaid-go"

// Invoker wraps an *http.Client configured for the API: JSON bodies,
// persistent headers and optional throttling.
type Invoker struct {
	c      *http.Client
	logger *slog.Logger
	tracer trace.Tracer
}

// New builds an Invoker. Without options it uses a fresh *http.Client
// over [http.DefaultTransport] and the default slog logger.
func New(optFns ...Option) (*Invoker, error) {
	inv := &Invoker{
		c:      &http.Client{},
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer(""),
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying transport option: %w", err)
		}
	}

	// The caller's client is copied so its Timeout and Transport stay untouched.
	if opts.client != nil {
		cpy := *opts.client
		inv.c = &cpy
	}

	if opts.logger != nil {
		inv.logger = opts.logger
	}

	if opts.tracer != nil {
		inv.tracer = opts.tracer
	}

	if opts.timeout != nil {
		inv.c.Timeout = *opts.timeout
	}

	var rt http.RoundTripper
	switch {
	case opts.rt != nil:
		rt = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		rt = opts.client.Transport
	default:
		rt = http.DefaultTransport
	}

	ua := opts.userAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	rt = headers{userAgent: ua, apiVersion: opts.apiVersion, base: rt}

	if opts.throttle != nil {
		throttled, err := throttle.NewRoundTripper(*opts.throttle, rt, func() *slog.Logger { return inv.logger })
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		rt = throttled
	}
	inv.c.Transport = rt

	return inv, nil
}

// Call POSTs payload as JSON to endpoint and returns the body of a 2xx
// response. Other responses are returned as *APIError, a payload or
// endpoint that cannot be encoded wraps ErrEncode, and anything that
// prevents a response from arriving wraps ErrTransport.
func (inv *Invoker) Call(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	ctx, span := inv.tracer.Start(ctx, "plaid.call", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	req, err := newRequest(ctx, endpoint, payload)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("plaid.endpoint", strings.TrimPrefix(req.URL.Path, "/")))
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	body, err := inv.exec(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	inv.logger.Debug("plaid call completed", "endpoint", req.URL.Path, "took", time.Since(start).String())

	return body, nil
}

// exec runs the request and reads the body after validating the status code.
func (inv *Invoker) exec(req *http.Request) ([]byte, error) {
	resp, err := inv.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	defer func() {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			inv.logger.Error("failed to discard unused body", "error", err)
		}
		if err := resp.Body.Close(); err != nil {
			inv.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		apiErr := newAPIError(resp.StatusCode, b)
		inv.logger.Debug("plaid call failed", "endpoint", req.URL.Path, "status", resp.StatusCode, "error_code", apiErr.ErrorCode, "request_id", apiErr.RequestID)

		return nil, apiErr
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}

	return b, nil
}

// newRequest instantiates a JSON POST request for endpoint.
func newRequest(ctx context.Context, endpoint string, payload any) (*http.Request, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing endpoint url: %w", ErrEncode, err)
	}

	if payload == nil {
		payload = struct{}{}
	}

	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), &body)
	if err != nil {
		return nil, fmt.Errorf("%w: instantiating request: %w", ErrEncode, err)
	}

	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
