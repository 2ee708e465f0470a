package plaid

import (
	"strings"
	"testing"
)

func TestNewRequest_EnvironmentPrefix(t *testing.T) {
	paths := []string{"accounts/get", "transactions/get", "processor/apex/processor_token/create", "categories/get"}

	for _, env := range []Environment{Sandbox, Development, Production} {
		creds, err := NewCredentials(env, "client", "pub", "secret")
		if err != nil {
			t.Fatal(err)
		}
		c, err := New(creds)
		if err != nil {
			t.Fatal(err)
		}

		base, _ := env.URL()
		for _, p := range paths {
			r := c.newRequest(p, nil)
			if !strings.HasPrefix(r.url, base) || r.url != base+p {
				t.Errorf("%s: url = %q, want %q", env, r.url, base+p)
			}
		}
	}
}

func TestRequired(t *testing.T) {
	testCases := map[string]struct {
		pairs    []string
		expField string
	}{
		"allSet":      {pairs: []string{"access token", "a", "start date", "b"}},
		"first":       {pairs: []string{"access token", "", "start date", ""}, expField: "access token"},
		"second":      {pairs: []string{"access token", "a", "start date", ""}, expField: "start date"},
		"noArguments": {},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := required(tc.pairs...)
			if tc.expField == "" {
				if err != nil {
					t.Fatalf("exp nil, got %v", err)
				}
				return
			}

			mi, ok := err.(*MissingInfoError)
			if !ok {
				t.Fatalf("exp *MissingInfoError, got %T", err)
			}
			if mi.Field != tc.expField {
				t.Errorf("Field = %q, want %q", mi.Field, tc.expField)
			}
		})
	}
}
