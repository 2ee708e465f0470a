package transport_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/plaid/transport"
	"github.com/adamwoolhether/plaid/transport/throttle"
)

type payload struct {
	ClientID    string `json:"client_id"`
	AccessToken string `json:"access_token"`
}

func TestInvoker_Call(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /echo", func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			http.Error(w, "bad content type "+ct, http.StatusUnsupportedMediaType)
			return
		}
		var p payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	})
	mux.HandleFunc("POST /empty", func(w http.ResponseWriter, r *http.Request) {
		var m map[string]any
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil || len(m) != 0 {
			http.Error(w, "exp empty object", http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"request_id":"r1"}`))
	})
	mux.HandleFunc("POST /plaid-error", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_type":"INVALID_INPUT","error_code":"INVALID_ACCESS_TOKEN","error_message":"provided access token is in an invalid format","display_message":null,"request_id":"abc123"}`))
	})
	mux.HandleFunc("POST /plain-error", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	inv, err := transport.New()
	if err != nil {
		t.Fatalf("building invoker: %v", err)
	}

	testCases := map[string]struct {
		path     string
		payload  any
		expBody  string
		expErr   error
		checkErr func(t *testing.T, err error)
	}{
		"echo": {
			path:    "/echo",
			payload: payload{ClientID: "id", AccessToken: "access-sandbox-1"},
			expBody: `{"client_id":"id","access_token":"access-sandbox-1"}`,
		},
		"nilPayloadSendsEmptyObject": {
			path:    "/empty",
			payload: nil,
			expBody: `{"request_id":"r1"}`,
		},
		"apiErrorEnvelope": {
			path:   "/plaid-error",
			expErr: transport.ErrUnexpectedStatusCode,
			checkErr: func(t *testing.T, err error) {
				t.Helper()
				var apiErr *transport.APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("exp *APIError, got %T", err)
				}
				exp := transport.APIError{
					StatusCode:   http.StatusBadRequest,
					ErrorType:    "INVALID_INPUT",
					ErrorCode:    "INVALID_ACCESS_TOKEN",
					ErrorMessage: "provided access token is in an invalid format",
					RequestID:    "abc123",
				}
				got := *apiErr
				got.Body, got.Err = "", nil
				if diff := cmp.Diff(exp, got); diff != "" {
					t.Errorf("api error mismatch (-exp +got):\n%s", diff)
				}
			},
		},
		"nonEnvelopeError": {
			path:   "/plain-error",
			expErr: transport.ErrUnexpectedStatusCode,
			checkErr: func(t *testing.T, err error) {
				t.Helper()
				var apiErr *transport.APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("exp *APIError, got %T", err)
				}
				if apiErr.StatusCode != http.StatusBadGateway {
					t.Errorf("exp status %d, got %d", http.StatusBadGateway, apiErr.StatusCode)
				}
				if apiErr.ErrorCode != "" {
					t.Errorf("exp empty error code, got %q", apiErr.ErrorCode)
				}
				if !strings.Contains(apiErr.Body, "upstream exploded") {
					t.Errorf("exp raw body kept, got %q", apiErr.Body)
				}
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			body, err := inv.Call(t.Context(), ts.URL+tc.path, tc.payload)
			if tc.expErr != nil {
				if !errors.Is(err, tc.expErr) {
					t.Fatalf("exp err %v, got: %v", tc.expErr, err)
				}
				if body != nil {
					t.Errorf("exp nil body alongside error, got %q", body)
				}
				if tc.checkErr != nil {
					tc.checkErr(t, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("exp nil err, got: %v", err)
			}
			if got := strings.TrimSpace(string(body)); got != tc.expBody {
				t.Errorf("exp body %s, got %s", tc.expBody, got)
			}
		})
	}
}

func TestInvoker_Call_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	inv, err := transport.New()
	if err != nil {
		t.Fatal(err)
	}

	_, err = inv.Call(t.Context(), url+"/item/get", nil)
	if !errors.Is(err, transport.ErrTransport) {
		t.Fatalf("exp ErrTransport, got: %v", err)
	}
	if errors.Is(err, transport.ErrUnexpectedStatusCode) {
		t.Error("transport failure must not look like an API error")
	}
}

func TestInvoker_Call_ErrorBodyCapped(t *testing.T) {
	big := strings.Repeat("x", 64<<10)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(big))
	}))
	defer ts.Close()

	inv, err := transport.New()
	if err != nil {
		t.Fatal(err)
	}

	_, err = inv.Call(t.Context(), ts.URL, nil)
	var apiErr *transport.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("exp *APIError, got: %v", err)
	}
	if len(apiErr.Body) != 4<<10 {
		t.Errorf("exp body capped at %d bytes, got %d", 4<<10, len(apiErr.Body))
	}
}

func TestInvoker_Headers(t *testing.T) {
	testCases := map[string]struct {
		opts          []transport.Option
		expUA         string
		expAPIVersion string
	}{
		"defaults": {
			expUA: transport.DefaultUserAgent,
		},
		"customUserAgent": {
			opts:  []transport.Option{transport.WithUserAgent("budget-app/2.1")},
			expUA: "budget-app/2.1",
		},
		"apiVersion": {
			opts:          []transport.Option{transport.WithAPIVersion("2020-09-14")},
			expUA:         transport.DefaultUserAgent,
			expAPIVersion: "2020-09-14",
		},
		"throttledKeepsHeaders": {
			opts:  []transport.Option{transport.WithThrottle(100, 10), transport.WithUserAgent("throttled/1.0")},
			expUA: "throttled/1.0",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("User-Agent"); got != tc.expUA {
					t.Errorf("exp User-Agent %q, got %q", tc.expUA, got)
				}
				if got := r.Header.Get("Plaid-Version"); got != tc.expAPIVersion {
					t.Errorf("exp Plaid-Version %q, got %q", tc.expAPIVersion, got)
				}
				w.Write([]byte(`{}`))
			}))
			defer ts.Close()

			inv, err := transport.New(tc.opts...)
			if err != nil {
				t.Fatalf("building invoker: %v", err)
			}

			if _, err := inv.Call(t.Context(), ts.URL, nil); err != nil {
				t.Errorf("exp nil err, got: %v", err)
			}
		})
	}
}

func TestInvoker_WithTransport(t *testing.T) {
	var called bool
	custom := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return http.DefaultTransport.RoundTrip(r)
	})

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	inv, err := transport.New(transport.WithTransport(custom))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := inv.Call(t.Context(), ts.URL, nil); err != nil {
		t.Fatalf("exp nil err, got: %v", err)
	}
	if !called {
		t.Error("custom transport was not called")
	}
}

func TestInvoker_WithHTTPClient_LeavesCallerClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	base := &http.Transport{}
	hc := &http.Client{Transport: base}

	for range 2 {
		inv, err := transport.New(transport.WithHTTPClient(hc), transport.WithTimeout(time.Second), transport.WithUserAgent("plaid-test"))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := inv.Call(t.Context(), ts.URL, nil); err != nil {
			t.Fatal(err)
		}
	}

	if hc.Timeout != 0 {
		t.Errorf("caller Timeout = %s, want 0", hc.Timeout)
	}
	if hc.Transport != base {
		t.Errorf("caller Transport replaced with %T", hc.Transport)
	}
}

func TestInvoker_Call_Success2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"created":true}`))
	}))
	defer ts.Close()

	inv, err := transport.New()
	if err != nil {
		t.Fatal(err)
	}

	body, err := inv.Call(t.Context(), ts.URL, nil)
	if err != nil {
		t.Fatalf("exp 201 accepted, got: %v", err)
	}
	if string(body) != `{"created":true}` {
		t.Errorf("body = %s", body)
	}
}

func TestInvoker_Call_EncodeFailure(t *testing.T) {
	var hits int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer ts.Close()

	inv, err := transport.New()
	if err != nil {
		t.Fatal(err)
	}

	testCases := map[string]struct {
		endpoint string
		payload  any
	}{
		"unsupportedValue": {endpoint: ts.URL, payload: map[string]float64{"value": math.NaN()}},
		"badEndpoint":      {endpoint: "http://[::1", payload: nil},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := inv.Call(t.Context(), tc.endpoint, tc.payload)
			if !errors.Is(err, transport.ErrEncode) {
				t.Fatalf("exp ErrEncode, got: %v", err)
			}
			if errors.Is(err, transport.ErrTransport) {
				t.Error("encode failure must not look like a transport failure")
			}
		})
	}

	if hits != 0 {
		t.Errorf("exp no requests sent, got %d", hits)
	}
}

func TestInvoker_WithTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()

	inv, err := transport.New(transport.WithTimeout(50 * time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	_, err = inv.Call(t.Context(), ts.URL, nil)
	if !errors.Is(err, transport.ErrTransport) {
		t.Fatalf("exp ErrTransport on timeout, got: %v", err)
	}
}

func TestInvoker_Logger(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	inv, err := transport.New(transport.WithLogger(log))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := inv.Call(t.Context(), ts.URL+"/categories/get", nil); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "endpoint=/categories/get") {
		t.Errorf("exp completed call logged, got: %s", buf.String())
	}
}

func TestNew_OptionValidation(t *testing.T) {
	testCases := map[string]struct {
		opt    transport.Option
		expErr error
	}{
		"nilHTTPClient":   {opt: transport.WithHTTPClient(nil)},
		"nilTransport":    {opt: transport.WithTransport(nil)},
		"negativeTimeout": {opt: transport.WithTimeout(-1)},
		"emptyUserAgent":  {opt: transport.WithUserAgent("")},
		"nilLogger":       {opt: transport.WithLogger(nil)},
		"nilTracer":       {opt: transport.WithTracer(nil)},
		"zeroThrottle":    {opt: transport.WithThrottle(0, 1), expErr: throttle.ErrMustNotBeZero},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := transport.New(tc.opt)
			if err == nil {
				t.Fatal("exp error, got nil")
			}
			if tc.expErr != nil && !errors.Is(err, tc.expErr) {
				t.Errorf("exp err %v, got: %v", tc.expErr, err)
			}
		})
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
