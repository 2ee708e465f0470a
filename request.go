package plaid

import (
	"context"
	"encoding/json"
)

// request is one call's endpoint URL and payload, built per call.
type request struct {
	url     string
	payload any
}

// newRequest joins path onto the base URL.
func (c *Client) newRequest(path string, payload any) request {
	return request{
		url:     c.creds.baseURL + path,
		payload: payload,
	}
}

// call executes r and decodes a successful body into T. Transport and API
// failures are returned unchanged.
func call[T any](ctx context.Context, c *Client, r request) (*T, error) {
	body, err := c.invoker.Call(ctx, r.url, r.payload)
	if err != nil {
		return nil, err
	}

	var resp T
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Endpoint: r.url, Err: err}
	}

	return &resp, nil
}

// required returns a MissingInfoError naming the first empty value.
// Pairs are (field, value).
func required(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return &MissingInfoError{Field: pairs[i]}
		}
	}

	return nil
}
