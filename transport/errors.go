package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// maxErrBodySize caps the amount of response body read when
// building an error for a non-200 response.
const maxErrBodySize = 4 << 10 // 4KB

var (
	// ErrTransport is wrapped by every failure that happens before a
	// response status is available: dialing, TLS, timeouts, cancellation.
	ErrTransport = errors.New("transport failure")
	// ErrEncode is wrapped when a request cannot be built: the payload
	// does not marshal or the endpoint is not a valid URL. Nothing is sent.
	ErrEncode = errors.New("encoding request")
	// ErrUnexpectedStatusCode is the sentinel error wrapped by [APIError].
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

// APIError is returned when the API responds with a non-2xx status.
// The envelope fields are populated when the body carries the API's
// error document; Body always holds the (capped) raw response.
type APIError struct {
	StatusCode     int
	ErrorType      string
	ErrorCode      string
	ErrorMessage   string
	DisplayMessage string
	RequestID      string
	Body           string
	Err            error
}

func (e *APIError) Error() string {
	if e.ErrorCode == "" {
		return fmt.Sprintf("%v: %d, body: %s", e.Err, e.StatusCode, e.Body)
	}

	return fmt.Sprintf("%v: %d, %s/%s: %s (request %s)", e.Err, e.StatusCode, e.ErrorType, e.ErrorCode, e.ErrorMessage, e.RequestID)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// envelope is the API's error document.
type envelope struct {
	ErrorType      string  `json:"error_type"`
	ErrorCode      string  `json:"error_code"`
	ErrorMessage   string  `json:"error_message"`
	DisplayMessage *string `json:"display_message"`
	RequestID      string  `json:"request_id"`
}

// newAPIError builds an APIError, filling the envelope fields when body
// decodes as the API's error document.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := APIError{
		StatusCode: statusCode,
		Body:       string(body),
		Err:        ErrUnexpectedStatusCode,
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &apiErr
	}

	apiErr.ErrorType = env.ErrorType
	apiErr.ErrorCode = env.ErrorCode
	apiErr.ErrorMessage = env.ErrorMessage
	apiErr.RequestID = env.RequestID
	if env.DisplayMessage != nil {
		apiErr.DisplayMessage = *env.DisplayMessage
	}

	return &apiErr
}
