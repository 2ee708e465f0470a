package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/adamwoolhether/plaid/internal/web/errs"
	"github.com/adamwoolhether/plaid/internal/web/mux"
)

// RespondJSON to an HTTP request, setting the status code and body if any.
func RespondJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) error {
	mux.SetStatus(ctx, statusCode)

	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err = w.Write(jsonData); err != nil {
		return err
	}

	return nil
}

// RespondRaw writes body unchanged with the given status code.
func RespondRaw(ctx context.Context, w http.ResponseWriter, statusCode int, body []byte) error {
	mux.SetStatus(ctx, statusCode)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_, err := w.Write(body)
	return err
}

// RespondError writes the envelope of err, stamping the request id when
// it is unset.
func RespondError(ctx context.Context, w http.ResponseWriter, err *errs.Error) error {
	if err.RequestID == "" {
		err.RequestID = mux.RequestID(ctx)
	}
	return RespondJSON(ctx, w, err.Code, err)
}
