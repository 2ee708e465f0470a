package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/adamwoolhether/plaid/internal/web/mux"
)

// Logger logs the start and completion of every request.
func Logger(log *slog.Logger) mux.Middleware {
	m := func(handler mux.Handler) mux.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			v := mux.ValuesFrom(ctx)
			reqLog := log.With("method", r.Method, "path", r.URL.Path, "request_id", v.RequestID)

			reqLog.Debug("request started")

			err := handler(ctx, w, r)

			reqLog.Info("request completed", "statusCode", v.Status, "since", time.Since(v.Start).String())

			return err
		}

		return h
	}

	return m
}
