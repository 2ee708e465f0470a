package plaidtest

import (
	"net/http/httptest"
	"testing"

	"github.com/adamwoolhether/plaid"
)

// Server is a Fake listening on a local httptest server.
type Server struct {
	*Fake
	srv *httptest.Server
}

// NewServer starts a Fake on a loopback port. The server is closed when
// the test ends.
func NewServer(tb testing.TB, opts ...Option) *Server {
	tb.Helper()

	f := New(opts...)
	srv := httptest.NewServer(f)
	tb.Cleanup(srv.Close)

	return &Server{Fake: f, srv: srv}
}

// URL is the base URL of the server, with a trailing slash.
func (s *Server) URL() string {
	return s.srv.URL + "/"
}

// Credentials returns credentials the server accepts, bound to its URL.
func (s *Server) Credentials() plaid.Credentials {
	creds, err := plaid.NewCredentialsForURL(s.URL(), s.clientID, s.publicKey, s.secret)
	if err != nil {
		// httptest URLs are always absolute http.
		panic(err)
	}
	return creds
}

// Client builds a plaid.Client pointed at the server.
func (s *Server) Client(tb testing.TB, opts ...plaid.Option) *plaid.Client {
	tb.Helper()

	c, err := plaid.New(s.Credentials(), opts...)
	if err != nil {
		tb.Fatalf("building client: %v", err)
	}
	return c
}
