package mux

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type valuesKey struct{}

// Values is the per-request state shared by the router, middleware and
// handlers.
type Values struct {
	RequestID string
	Start     time.Time
	Status    int
}

func withValues(ctx context.Context, v *Values) context.Context {
	return context.WithValue(ctx, valuesKey{}, v)
}

// ValuesFrom returns the request's values. Outside a request it returns
// detached values whose request id is the nil uuid.
func ValuesFrom(ctx context.Context) *Values {
	if v, ok := ctx.Value(valuesKey{}).(*Values); ok {
		return v
	}

	return &Values{RequestID: uuid.Nil.String(), Start: time.Now()}
}

// SetStatus records the status code written for the request.
func SetStatus(ctx context.Context, status int) {
	ValuesFrom(ctx).Status = status
}

// RequestID is the id echoed back in every response document.
func RequestID(ctx context.Context) string {
	return ValuesFrom(ctx).RequestID
}
