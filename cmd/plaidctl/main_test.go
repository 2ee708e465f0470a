package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/plaid"
	"github.com/adamwoolhether/plaid/plaidtest"
)

// execute runs plaidctl against srv with the fake's credentials in the
// environment.
func execute(t *testing.T, ctx context.Context, srv *plaidtest.Server, args ...string) (string, error) {
	t.Helper()

	t.Chdir(t.TempDir())
	t.Setenv("PLAID_CLIENT_ID", plaidtest.ClientID)
	t.Setenv("PLAID_SECRET", plaidtest.Secret)
	t.Setenv("PLAID_PUBLIC_KEY", plaidtest.PublicKey)
	t.Setenv("PLAID_BASE_URL", "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if srv != nil {
		args = append([]string{"--base-url", srv.URL()}, args...)
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), err
}

func TestCommands(t *testing.T) {
	testCases := map[string]struct {
		args    []string
		expPath string
		expKey  string
	}{
		"categories":         {args: []string{"categories"}, expPath: "categories/get", expKey: "categories"},
		"institutionsList":   {args: []string{"institutions", "list", "--count", "2"}, expPath: "institutions/get", expKey: "institutions"},
		"institutionsGet":    {args: []string{"institutions", "get", plaidtest.InstitutionID}, expPath: "institutions/get_by_id", expKey: "institution"},
		"institutionsSearch": {args: []string{"institutions", "search", "bank"}, expPath: "institutions/search", expKey: "institutions"},
		"itemGet":            {args: []string{"item", "get", plaidtest.AccessToken}, expPath: "item/get", expKey: "item"},
		"itemRemove":         {args: []string{"item", "remove", plaidtest.AccessToken}, expPath: "item/remove", expKey: "removed"},
		"itemExchange":       {args: []string{"item", "exchange", plaidtest.PublicToken}, expPath: "item/public_token/exchange", expKey: "access_token"},
		"accounts":           {args: []string{"accounts", plaidtest.AccessToken}, expPath: "accounts/get", expKey: "accounts"},
		"balances":           {args: []string{"balances", plaidtest.AccessToken}, expPath: "accounts/balance/get", expKey: "accounts"},
		"transactions": {
			args:    []string{"transactions", plaidtest.AccessToken, "--start", "2020-01-01", "--end", "2020-01-31"},
			expPath: "transactions/get",
			expKey:  "transactions",
		},
		"sandboxPublicToken": {
			args:    []string{"sandbox", "public-token", plaidtest.InstitutionID},
			expPath: "sandbox/public_token/create",
			expKey:  "public_token",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			srv := plaidtest.NewServer(t)

			out, err := execute(t, t.Context(), srv, tc.args...)
			if err != nil {
				t.Fatal(err)
			}

			call, ok := srv.LastCall()
			if !ok {
				t.Fatal("no call recorded")
			}
			if call.Path != tc.expPath {
				t.Errorf("path = %q, want %q", call.Path, tc.expPath)
			}

			var body map[string]any
			if err := json.Unmarshal([]byte(out), &body); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out)
			}
			if _, ok := body[tc.expKey]; !ok {
				t.Errorf("output has no %q key:\n%s", tc.expKey, out)
			}
		})
	}
}

func TestCommands_Flags(t *testing.T) {
	srv := plaidtest.NewServer(t)

	_, err := execute(t, t.Context(), srv,
		"transactions", plaidtest.AccessToken,
		"--start", "2020-01-01", "--end", "2020-01-31",
		"--count", "2", "--offset", "1", "--account-ids", "acc-checking,acc-savings",
	)
	if err != nil {
		t.Fatal(err)
	}

	call, _ := srv.LastCall()
	exp := map[string]any{
		"account_ids": []any{"acc-checking", "acc-savings"},
		"count":       float64(2),
		"offset":      float64(1),
	}
	if diff := cmp.Diff(exp, call.Payload["options"]); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestCommands_Errors(t *testing.T) {
	t.Run("missingStartDate", func(t *testing.T) {
		srv := plaidtest.NewServer(t)

		_, err := execute(t, t.Context(), srv, "transactions", plaidtest.AccessToken, "--end", "2020-01-31")
		if _, ok := errors.AsType[*plaid.MissingInfoError](err); !ok {
			t.Fatalf("exp MissingInfoError, got %v", err)
		}
		if n := len(srv.Calls()); n != 0 {
			t.Errorf("exp no calls, got %d", n)
		}
	})

	t.Run("apiError", func(t *testing.T) {
		srv := plaidtest.NewServer(t)
		srv.FailWith("item/get", http.StatusBadRequest, "ITEM_ERROR", "ITEM_LOGIN_REQUIRED", "the login details of this item have changed")

		_, err := execute(t, t.Context(), srv, "item", "get", plaidtest.AccessToken)
		if st := plaid.StatusOf(err); st.Kind != plaid.KindAPI {
			t.Fatalf("exp API failure, got %v", st)
		}
	})

	t.Run("badLogLevel", func(t *testing.T) {
		if _, err := execute(t, t.Context(), nil, "--log-level", "loud", "categories"); err == nil {
			t.Fatal("exp error for unknown log level")
		}
	})

	t.Run("missingEnvFile", func(t *testing.T) {
		missing := filepath.Join(os.TempDir(), "plaidctl-does-not-exist.env")
		if _, err := execute(t, t.Context(), nil, "--env-file", missing, "categories"); err == nil {
			t.Fatal("exp error for missing env file")
		}
	})

	t.Run("args", func(t *testing.T) {
		if _, err := execute(t, t.Context(), nil, "accounts"); err == nil {
			t.Fatal("exp error for missing access token argument")
		}
	})
}

func TestFakeServer_Shutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := execute(t, ctx, nil, "fake-server", "--addr", "127.0.0.1:0"); err != nil {
		t.Fatalf("exp clean shutdown, got %v", err)
	}
}
