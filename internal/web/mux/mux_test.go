package mux_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/adamwoolhether/plaid/internal/web/mux"
)

func TestApp_Post(t *testing.T) {
	app := mux.New()
	app.Post("/item/get", func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		w.Write([]byte(mux.RequestID(ctx)))
		return nil
	})

	srv := httptest.NewServer(app)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/item/get", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("POST /item/get: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if id, err := uuid.Parse(string(body)); err != nil || id == uuid.Nil {
		t.Fatalf("exp random uuid request id without a tracer, got %q", body)
	}

	get, err := http.Get(srv.URL + "/item/get")
	if err != nil {
		t.Fatal(err)
	}
	get.Body.Close()
	if get.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", get.StatusCode, http.StatusMethodNotAllowed)
	}
}

func TestWithMiddleware_Order(t *testing.T) {
	var order []string
	record := func(name string) mux.Middleware {
		return func(next mux.Handler) mux.Handler {
			return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
				order = append(order, name)
				return next(ctx, w, r)
			}
		}
	}

	app := mux.New(mux.WithMiddleware(record("first"), record("second")))
	app.Use(record("used"))
	app.Handle(http.MethodGet, "/health", func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		order = append(order, "handler")
		return nil
	}, record("route"))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	exp := "first,second,used,route,handler"
	if got := strings.Join(order, ","); got != exp {
		t.Fatalf("order = %s, want %s", got, exp)
	}
}

func TestApp_HandlerErrorLogged(t *testing.T) {
	var buf bytes.Buffer
	app := mux.New(mux.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	app.Post("/boom", func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		return io.ErrUnexpectedEOF
	})

	app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/boom", nil))

	if !strings.Contains(buf.String(), io.ErrUnexpectedEOF.Error()) {
		t.Fatalf("exp handler error logged, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "request_id=") {
		t.Fatalf("exp request id in log, got %q", buf.String())
	}
}

func TestValuesFrom_OutsideRequest(t *testing.T) {
	ctx := context.Background()
	if id := mux.RequestID(ctx); id != uuid.Nil.String() {
		t.Fatalf("RequestID = %q, want nil uuid", id)
	}

	mux.SetStatus(ctx, http.StatusOK)
	if mux.ValuesFrom(ctx).Status != 0 {
		t.Fatal("detached values must not be shared")
	}
}
