// Package plaidtest provides an in-process fake of the Plaid API for tests,
// examples and local development.
//
// The fake answers every endpoint the client knows with canned fixtures,
// checks credentials and required fields the way the API does, and records
// each call so tests can assert on the exact payload a client sent.
package plaidtest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/plaid/internal/web/errs"
	"github.com/adamwoolhether/plaid/internal/web/middleware"
	"github.com/adamwoolhether/plaid/internal/web/mux"
)

// Credentials accepted by a Fake unless overridden with WithCredentials.
const (
	ClientID  = "test_client_id"
	Secret    = "test_secret"
	PublicKey = "test_public_key"
)

// Call is one request received by a Fake.
type Call struct {
	Path    string
	Payload map[string]any
	Body    []byte
}

// Decode unmarshals the raw request body into v.
func (c Call) Decode(v any) error {
	return json.Unmarshal(c.Body, v)
}

type override struct {
	status int
	body   []byte
}

// Fake is an http.Handler serving the API. It is safe for concurrent use.
type Fake struct {
	app       *mux.App
	clientID  string
	secret    string
	publicKey string

	mu        sync.Mutex
	calls     []Call
	overrides map[string]override
}

// Option configures a Fake.
type Option func(*fakeOptions)

type fakeOptions struct {
	clientID  string
	secret    string
	publicKey string
	logger    *slog.Logger
	tracer    trace.Tracer
	origins   []string
}

// WithCredentials changes the credentials the Fake accepts.
func WithCredentials(clientID, secret, publicKey string) Option {
	return func(o *fakeOptions) {
		o.clientID = clientID
		o.secret = secret
		o.publicKey = publicKey
	}
}

// WithLogger sets the logger for request logs. Requests are not logged
// by default.
func WithLogger(log *slog.Logger) Option {
	return func(o *fakeOptions) {
		o.logger = log
	}
}

// WithTracer records a span per request.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *fakeOptions) {
		o.tracer = tracer
	}
}

// WithCORS lets browsers on the given origins call the Fake. Entries may
// use wildcards such as "http://localhost:*".
func WithCORS(origins ...string) Option {
	return func(o *fakeOptions) {
		o.origins = origins
	}
}

// New builds a Fake with every route registered.
func New(opts ...Option) *Fake {
	o := fakeOptions{
		clientID:  ClientID,
		secret:    Secret,
		publicKey: PublicKey,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	mw := []mux.Middleware{middleware.Logger(o.logger), middleware.Errors(o.logger)}
	if len(o.origins) > 0 {
		mw = append(mw, middleware.CORS(o.origins))
	}
	mw = append(mw, middleware.Panics())

	muxOpts := []mux.Option{
		mux.WithLogger(o.logger),
		mux.WithMiddleware(mw...),
	}
	if o.tracer != nil {
		muxOpts = append(muxOpts, mux.WithTracer(o.tracer))
	}

	f := Fake{
		app:       mux.New(muxOpts...),
		clientID:  o.clientID,
		secret:    o.secret,
		publicKey: o.publicKey,
		overrides: make(map[string]override),
	}
	f.routes()

	return &f
}

// ServeHTTP implements http.Handler.
func (f *Fake) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.app.ServeHTTP(w, r)
}

// Calls returns every call received so far, oldest first.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// LastCall returns the most recent call, if any.
func (f *Fake) LastCall() (Call, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.calls) == 0 {
		return Call{}, false
	}
	return f.calls[len(f.calls)-1], true
}

// Reset forgets recorded calls and overrides.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = nil
	clear(f.overrides)
}

// SetResponse makes path answer with status and body until Reset. A
// []byte or string body is sent verbatim, anything else as JSON.
func (f *Fake) SetResponse(path string, status int, body any) error {
	var b []byte
	switch v := body.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		var err error
		if b, err = json.Marshal(v); err != nil {
			return fmt.Errorf("encoding response for %s: %w", path, err)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.overrides[strings.TrimPrefix(path, "/")] = override{status: status, body: b}
	return nil
}

// FailWith makes path answer with an API error envelope until Reset.
func (f *Fake) FailWith(path string, status int, errorType, errorCode, message string) {
	env := errs.Error{
		ErrorType:    errorType,
		ErrorCode:    errorCode,
		ErrorMessage: message,
		RequestID:    "fake-" + strings.ToLower(errorCode),
	}

	// errs.Error always marshals.
	_ = f.SetResponse(path, status, env)
}

func (f *Fake) record(path string, payload map[string]any, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Path: path, Payload: payload, Body: body})
}

func (f *Fake) override(path string) (override, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ov, ok := f.overrides[path]
	return ov, ok
}
