// Package plaid is a typed client for the Plaid REST API.
//
// Every endpoint maps to one method on [Client]. A method validates its
// required arguments, builds the JSON payload with the client's
// [Credentials], POSTs it, and decodes the response:
//
//	creds, err := plaid.NewCredentials(plaid.Sandbox, clientID, publicKey, secret)
//	client, err := plaid.New(creds, plaid.WithTimeout(30*time.Second))
//	accounts, err := client.GetAccounts(ctx, accessToken)
//
// Exactly one of the returned response and error is non-nil. Failures are
// one of [*MissingInfoError] (no request was sent), [*APIError],
// a wrapped [ErrTransport], or [*DecodeError]; [StatusOf] classifies them.
//
// Most methods come in a simple form and a WithOptions form; the simple
// form only fills in defaults.
package plaid

import (
	"fmt"

	"github.com/adamwoolhether/plaid/transport"
)

// Client calls the API with one set of Credentials. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	creds   Credentials
	invoker *transport.Invoker
}

// New builds a Client. No I/O is performed.
func New(creds Credentials, opts ...Option) (*Client, error) {
	if creds.baseURL == "" {
		return nil, fmt.Errorf("%w: credentials have no base url", ErrInvalidConfiguration)
	}

	inv, err := transport.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	c := Client{
		creds:   creds,
		invoker: inv,
	}

	return &c, nil
}

// Credentials returns the credentials the client was built with.
func (c *Client) Credentials() Credentials {
	return c.creds
}
