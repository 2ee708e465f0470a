package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path"

	"github.com/adamwoolhether/plaid/internal/web"
	"github.com/adamwoolhether/plaid/internal/web/errs"
	"github.com/adamwoolhether/plaid/internal/web/mux"
)

// Errors renders errors coming out of the call chain as API error
// envelopes.
func Errors(log *slog.Logger) mux.Middleware {
	m := func(handler mux.Handler) mux.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			err := handler(ctx, w, r)
			if err == nil {
				return nil
			}

			reqLog := log.With("request_id", mux.RequestID(ctx))

			if fieldErr, ok := errors.AsType[errs.FieldErrors](err); ok {
				reqLog.Info("invalid request", "path", r.URL.Path, "fields", fieldErr.Error())
				return web.RespondError(ctx, w, fieldErr.Envelope())
			}

			appErr, ok := errors.AsType[*errs.Error](err)
			if !ok { // anything unrecognised is hidden behind a generic envelope.
				appErr = errs.NewInternal(err)
			}

			reqLog.Error(err.Error(), "error_code", appErr.ErrorCode, "source_err_file", path.Base(appErr.FileName), "source_err_func", path.Base(appErr.FuncName))

			if appErr.InnerErr {
				appErr.ErrorMessage = "an unexpected error occurred"
			}

			return web.RespondError(ctx, w, appErr)
		}

		return h
	}

	return m
}
