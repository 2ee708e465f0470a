package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/adamwoolhether/plaid/internal/web/errs"
	"github.com/adamwoolhether/plaid/internal/web/mux"
)

// Panics turns a panicking handler into an internal error so the Errors
// middleware can answer with an API_ERROR envelope.
func Panics() mux.Middleware {
	return func(handler mux.Handler) mux.Handler {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = errs.NewInternal(fmt.Errorf("panic in %s: %v\n%s", r.URL.Path, rec, debug.Stack()))
				}
			}()

			return handler(ctx, w, r)
		}
	}
}
