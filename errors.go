package plaid

import (
	"errors"
	"fmt"

	"github.com/adamwoolhether/plaid/transport"
)

// ————————————————————————————————————————————————————————————————————
// Type aliases – re-export failures produced by [transport].
// ————————————————————————————————————————————————————————————————————

// APIError is returned when the API answers with a non-2xx status.
type APIError = transport.APIError

var (
	// ErrTransport is wrapped by failures that happen before any response arrives.
	ErrTransport = transport.ErrTransport

	// ErrEncode is wrapped when a request cannot be built, such as a
	// payload holding NaN. Nothing is sent.
	ErrEncode = transport.ErrEncode

	// ErrUnexpectedStatusCode is wrapped by every [APIError].
	ErrUnexpectedStatusCode = transport.ErrUnexpectedStatusCode
)

// ————————————————————————————————————————————————————————————————————
// Local failures
// ————————————————————————————————————————————————————————————————————

var (
	// ErrMissingInfo is wrapped by every [MissingInfoError].
	ErrMissingInfo = errors.New("missing info")

	// ErrInvalidConfiguration is returned while building Credentials or a Client.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDecode is wrapped by every [DecodeError].
	ErrDecode = errors.New("decoding response")
)

// MissingInfoError reports a required argument that was empty. It is
// returned before any request is built.
type MissingInfoError struct {
	Field string
}

func (e *MissingInfoError) Error() string {
	return "missing " + e.Field
}

func (e *MissingInfoError) Unwrap() error {
	return ErrMissingInfo
}

// DecodeError reports a 200 response whose body did not decode into the
// operation's response type.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v from %s: %v", ErrDecode, e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// ————————————————————————————————————————————————————————————————————
// Status view
// ————————————————————————————————————————————————————————————————————

// Kind classifies a failed call.
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingInfo
	KindInvalidConfiguration
	KindTransport
	KindAPI
	KindDecode
	KindEncode
)

func (k Kind) String() string {
	switch k {
	case KindMissingInfo:
		return "missing_info"
	case KindInvalidConfiguration:
		return "invalid_configuration"
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// Status is the kind and message of a failed call.
type Status struct {
	Kind    Kind
	Message string
}

// StatusOf classifies err. A nil err yields the zero Status.
func StatusOf(err error) Status {
	if err == nil {
		return Status{}
	}

	if apiErr, ok := errors.AsType[*APIError](err); ok {
		msg := apiErr.ErrorMessage
		if msg == "" {
			msg = apiErr.Error()
		}
		return Status{Kind: KindAPI, Message: msg}
	}

	var kind Kind
	switch {
	case errors.Is(err, ErrMissingInfo):
		kind = KindMissingInfo
	case errors.Is(err, ErrInvalidConfiguration):
		kind = KindInvalidConfiguration
	case errors.Is(err, ErrTransport):
		kind = KindTransport
	case errors.Is(err, ErrDecode):
		kind = KindDecode
	case errors.Is(err, ErrEncode):
		kind = KindEncode
	}

	return Status{Kind: kind, Message: err.Error()}
}
