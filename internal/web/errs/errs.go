// Package errs defines the error document served by the fake API and the
// field errors produced by request validation.
package errs

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// Error types used in the envelope.
const (
	TypeInvalidRequest = "INVALID_REQUEST"
	TypeInvalidInput   = "INVALID_INPUT"
	TypeAPI            = "API_ERROR"
	TypeItem           = "ITEM_ERROR"
)

// Error is an API error envelope together with the HTTP status it is
// served with.
type Error struct {
	Code           int     `json:"-"`
	ErrorType      string  `json:"error_type"`
	ErrorCode      string  `json:"error_code"`
	ErrorMessage   string  `json:"error_message"`
	DisplayMessage *string `json:"display_message"`
	RequestID      string  `json:"request_id"`
	FuncName       string  `json:"-"`
	FileName       string  `json:"-"`
	InnerErr       bool    `json:"-"`
}

// New constructs an envelope error served with the given status code.
func New(code int, errorType, errorCode string, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:         code,
		ErrorType:    errorType,
		ErrorCode:    errorCode,
		ErrorMessage: err.Error(),
		FuncName:     runtime.FuncForPC(pc).Name(),
		FileName:     fmt.Sprintf("%s:%d", filename, line),
	}
}

// NewInternal creates an error whose message is not intended to be seen
// by callers.
func NewInternal(err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:         http.StatusInternalServerError,
		ErrorType:    TypeAPI,
		ErrorCode:    "INTERNAL_SERVER_ERROR",
		ErrorMessage: err.Error(),
		FuncName:     runtime.FuncForPC(pc).Name(),
		FileName:     fmt.Sprintf("%s:%d", filename, line),
		InnerErr:     true,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.ErrorMessage
}

// IsInternal returns true if the error is internal.
func (e *Error) IsInternal() bool {
	return e.InnerErr
}

// WithDisplayMessage sets a message safe to show to end users.
func (e *Error) WithDisplayMessage(msg string) *Error {
	e.DisplayMessage = &msg
	return e
}

// /////////////////////////////////////////////////////////////////////////////////////////////

// FieldError is used to indicate an error with a specific request field.
type FieldError struct {
	Field string `json:"field"`
	Err   string `json:"error"`
	Tag   string `json:"-"`
}

// FieldErrors represents a collection of field errors.
type FieldErrors []FieldError

// NewFieldsError creates a fields error.
func NewFieldsError(field string, err error) error {
	return FieldErrors{
		{
			Field: field,
			Err:   err.Error(),
		},
	}
}

// Missing reports fields that are absent from a request.
func Missing(fields ...string) error {
	fe := make(FieldErrors, len(fields))
	for i, f := range fields {
		fe[i] = FieldError{Field: f, Err: "This field is required", Tag: "required"}
	}
	return fe
}

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, f := range fe {
		parts[i] = f.Field + ": " + f.Err
	}
	return strings.Join(parts, "; ")
}

// Fields returns the fields that failed validation
func (fe FieldErrors) Fields() map[string]string {
	m := make(map[string]string)
	for _, fld := range fe {
		m[fld.Field] = fld.Err
	}
	return m
}

// OnlyMissing reports whether every field error is a missing field.
func (fe FieldErrors) OnlyMissing() bool {
	for _, f := range fe {
		if f.Tag != "required" {
			return false
		}
	}
	return len(fe) > 0
}

// Envelope renders field errors the way the API reports them.
func (fe FieldErrors) Envelope() *Error {
	names := make([]string, len(fe))
	for i, f := range fe {
		names[i] = f.Field
	}

	if fe.OnlyMissing() {
		return &Error{
			Code:         http.StatusBadRequest,
			ErrorType:    TypeInvalidRequest,
			ErrorCode:    "MISSING_FIELDS",
			ErrorMessage: "the following required fields are missing: " + strings.Join(names, ", "),
		}
	}

	return &Error{
		Code:         http.StatusBadRequest,
		ErrorType:    TypeInvalidRequest,
		ErrorCode:    "INVALID_FIELD",
		ErrorMessage: fe.Error(),
	}
}

// IsFieldErrors checks if an error of type FieldErrors exists.
func IsFieldErrors(err error) bool {
	_, ok := errors.AsType[FieldErrors](err)
	return ok
}

// GetFieldErrors returns the FieldErrors in err's chain, if any.
func GetFieldErrors(err error) FieldErrors {
	fe, _ := errors.AsType[FieldErrors](err)
	return fe
}
