package plaid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/adamwoolhether/plaid"
)

func TestEnvironment_URL(t *testing.T) {
	testCases := map[string]struct {
		env    plaid.Environment
		expURL string
		expErr error
	}{
		"sandbox":     {env: plaid.Sandbox, expURL: "https://sandbox.plaid.com/"},
		"development": {env: plaid.Development, expURL: "https://development.plaid.com/"},
		"production":  {env: plaid.Production, expURL: "https://production.plaid.com/"},
		"zero":        {env: 0, expErr: plaid.ErrInvalidConfiguration},
		"outOfRange":  {env: 42, expErr: plaid.ErrInvalidConfiguration},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.env.URL()
			if !errors.Is(err, tc.expErr) {
				t.Fatalf("exp err %v, got %v", tc.expErr, err)
			}
			if got != tc.expURL {
				t.Errorf("URL() = %q, want %q", got, tc.expURL)
			}
			if err == nil && !strings.HasSuffix(got, "/") {
				t.Errorf("exp trailing slash on %q", got)
			}
		})
	}
}

func TestParseEnvironment(t *testing.T) {
	testCases := map[string]struct {
		name   string
		exp    plaid.Environment
		expErr bool
	}{
		"lower":   {name: "sandbox", exp: plaid.Sandbox},
		"mixed":   {name: "Development", exp: plaid.Development},
		"padded":  {name: " PRODUCTION ", exp: plaid.Production},
		"unknown": {name: "staging", expErr: true},
		"empty":   {name: "", expErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := plaid.ParseEnvironment(tc.name)
			if tc.expErr {
				if !errors.Is(err, plaid.ErrInvalidConfiguration) {
					t.Fatalf("exp ErrInvalidConfiguration, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.exp {
				t.Errorf("got %v, want %v", got, tc.exp)
			}
			if got.String() != strings.ToLower(strings.TrimSpace(tc.name)) {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}
