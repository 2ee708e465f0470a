package plaid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/adamwoolhether/plaid"
)

func TestNewCredentials(t *testing.T) {
	creds, err := plaid.NewCredentials(plaid.Sandbox, "client", "pub", "shh")
	if err != nil {
		t.Fatal(err)
	}

	if creds.BaseURL() != "https://sandbox.plaid.com/" {
		t.Errorf("BaseURL() = %q", creds.BaseURL())
	}
	if creds.ClientID() != "client" || creds.PublicKey() != "pub" {
		t.Errorf("unexpected accessors: %s / %s", creds.ClientID(), creds.PublicKey())
	}
	if strings.Contains(creds.String(), "shh") {
		t.Errorf("String() leaks the secret: %s", creds)
	}

	if _, err := plaid.NewCredentials(0, "client", "pub", "shh"); !errors.Is(err, plaid.ErrInvalidConfiguration) {
		t.Errorf("exp ErrInvalidConfiguration for unknown environment, got %v", err)
	}
}

func TestNewCredentialsForURL(t *testing.T) {
	testCases := map[string]struct {
		url    string
		expURL string
		expErr bool
	}{
		"addsSlash":  {url: "http://127.0.0.1:8080", expURL: "http://127.0.0.1:8080/"},
		"keepsSlash": {url: "https://proxy.internal/plaid/", expURL: "https://proxy.internal/plaid/"},
		"relative":   {url: "/plaid", expErr: true},
		"scheme":     {url: "ftp://sandbox.plaid.com", expErr: true},
		"garbage":    {url: "http://[::1", expErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			creds, err := plaid.NewCredentialsForURL(tc.url, "client", "pub", "shh")
			if tc.expErr {
				if !errors.Is(err, plaid.ErrInvalidConfiguration) {
					t.Fatalf("exp ErrInvalidConfiguration, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if creds.BaseURL() != tc.expURL {
				t.Errorf("BaseURL() = %q, want %q", creds.BaseURL(), tc.expURL)
			}
		})
	}
}

func TestNew_InvalidConfiguration(t *testing.T) {
	if _, err := plaid.New(plaid.Credentials{}); !errors.Is(err, plaid.ErrInvalidConfiguration) {
		t.Errorf("exp ErrInvalidConfiguration for zero credentials, got %v", err)
	}

	creds, _ := plaid.NewCredentials(plaid.Sandbox, "client", "pub", "shh")
	if _, err := plaid.New(creds, plaid.WithTimeout(-1)); !errors.Is(err, plaid.ErrInvalidConfiguration) {
		t.Errorf("exp ErrInvalidConfiguration for bad option, got %v", err)
	}
}
