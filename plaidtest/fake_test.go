package plaidtest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/plaid/plaidtest"
)

func post(t *testing.T, h http.Handler, path, body string) (int, map[string]any) {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, r)

	var doc map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("response is not JSON: %q", w.Body.String())
	}
	return w.Code, doc
}

func TestFake_Errors(t *testing.T) {
	testCases := map[string]struct {
		path      string
		body      string
		expStatus int
		expCode   string
	}{
		"badSecret": {
			path:      "/item/get",
			body:      `{"client_id":"test_client_id","secret":"nope","access_token":"access-sandbox-fake"}`,
			expStatus: http.StatusBadRequest,
			expCode:   "INVALID_API_KEYS",
		},
		"badPublicKey": {
			path:      "/institutions/search",
			body:      `{"public_key":"nope","query":"bank"}`,
			expStatus: http.StatusBadRequest,
			expCode:   "INVALID_API_KEYS",
		},
		"missingAccessToken": {
			path:      "/accounts/get",
			body:      `{"client_id":"test_client_id","secret":"test_secret"}`,
			expStatus: http.StatusBadRequest,
			expCode:   "MISSING_FIELDS",
		},
		"malformedAccessToken": {
			path:      "/accounts/get",
			body:      `{"client_id":"test_client_id","secret":"test_secret","access_token":"garbage"}`,
			expStatus: http.StatusBadRequest,
			expCode:   "INVALID_ACCESS_TOKEN",
		},
		"badDate": {
			path:      "/transactions/get",
			body:      `{"client_id":"test_client_id","secret":"test_secret","access_token":"access-sandbox-fake","start_date":"01/01/2020","end_date":"2020-01-31"}`,
			expStatus: http.StatusBadRequest,
			expCode:   "INVALID_FIELD",
		},
		"unknownInstitution": {
			path:      "/institutions/get_by_id",
			body:      `{"public_key":"test_public_key","institution_id":"ins_0"}`,
			expStatus: http.StatusBadRequest,
			expCode:   "INVALID_INSTITUTION",
		},
		"unknownProduct": {
			path:      "/sandbox/public_token/create",
			body:      `{"public_key":"test_public_key","institution_id":"ins_109508","initial_products":["mortgages"]}`,
			expStatus: http.StatusBadRequest,
			expCode:   "INVALID_PRODUCT",
		},
		"badCurrency": {
			path:      "/payment_initiation/payment/create",
			body:      `{"client_id":"test_client_id","secret":"test_secret","recipient_id":"r","reference":"ref","amount":{"currency":"XXXX","value":1}}`,
			expStatus: http.StatusBadRequest,
			expCode:   "INVALID_FIELD",
		},
		"notJSON": {
			path:      "/categories/get",
			body:      `{`,
			expStatus: http.StatusBadRequest,
			expCode:   "INVALID_BODY",
		},
		"unknownEndpoint": {
			path:      "/no/such/endpoint",
			body:      `{}`,
			expStatus: http.StatusNotFound,
			expCode:   "NOT_FOUND",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			status, doc := post(t, plaidtest.New(), tc.path, tc.body)

			if status != tc.expStatus {
				t.Fatalf("status = %d, want %d: %v", status, tc.expStatus, doc)
			}
			if doc["error_code"] != tc.expCode {
				t.Errorf("error_code = %v, want %s", doc["error_code"], tc.expCode)
			}
			if id, _ := doc["request_id"].(string); id == "" {
				t.Error("exp request_id in envelope")
			}
		})
	}
}

func TestFake_RecordsCalls(t *testing.T) {
	f := plaidtest.New()

	if _, ok := f.LastCall(); ok {
		t.Fatal("exp no calls on a new fake")
	}

	post(t, f, "/categories/get", `{}`)
	post(t, f, "/item/get", `{"client_id":"test_client_id","secret":"test_secret","access_token":"access-sandbox-fake"}`)

	calls := f.Calls()
	if len(calls) != 2 {
		t.Fatalf("exp 2 calls, got %d", len(calls))
	}

	last, _ := f.LastCall()
	exp := map[string]any{
		"client_id":    "test_client_id",
		"secret":       "test_secret",
		"access_token": "access-sandbox-fake",
	}
	if diff := cmp.Diff(exp, last.Payload); diff != "" {
		t.Errorf("payload mismatch (-exp +got):\n%s", diff)
	}

	var typed struct {
		AccessToken string `json:"access_token"`
	}
	if err := last.Decode(&typed); err != nil || typed.AccessToken != plaidtest.AccessToken {
		t.Errorf("Decode = %+v, %v", typed, err)
	}

	f.Reset()
	if len(f.Calls()) != 0 {
		t.Fatal("exp calls cleared by Reset")
	}
}

func TestFake_Overrides(t *testing.T) {
	f := plaidtest.New()

	f.FailWith("item/get", http.StatusBadRequest, "ITEM_ERROR", "ITEM_LOGIN_REQUIRED", "the login details of this item have changed")
	status, doc := post(t, f, "/item/get", `{}`)
	if status != http.StatusBadRequest || doc["error_code"] != "ITEM_LOGIN_REQUIRED" {
		t.Fatalf("exp forced failure, got %d %v", status, doc)
	}

	if err := f.SetResponse("/categories/get", http.StatusOK, map[string]any{"categories": []any{}, "request_id": "fixed"}); err != nil {
		t.Fatal(err)
	}
	status, doc = post(t, f, "/categories/get", `{}`)
	if status != http.StatusOK || doc["request_id"] != "fixed" {
		t.Fatalf("exp overridden response, got %d %v", status, doc)
	}

	f.Reset()
	status, doc = post(t, f, "/categories/get", `{}`)
	if status != http.StatusOK || doc["request_id"] == "fixed" {
		t.Fatalf("exp fixture after Reset, got %d %v", status, doc)
	}
}

func TestFake_TransactionsPaging(t *testing.T) {
	testCases := map[string]struct {
		options  string
		expIDs   []string
		expTotal float64
	}{
		"defaultCount": {
			options:  `{}`,
			expIDs:   []string{"tx-1", "tx-2", "tx-3", "tx-4"},
			expTotal: 4,
		},
		"secondPage": {
			options:  `{"count":2,"offset":2}`,
			expIDs:   []string{"tx-3", "tx-4"},
			expTotal: 4,
		},
		"accountFilter": {
			options:  `{"account_ids":["acc-credit"],"count":100,"offset":0}`,
			expIDs:   []string{"tx-3"},
			expTotal: 1,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			body := `{"client_id":"test_client_id","secret":"test_secret","access_token":"access-sandbox-fake","start_date":"2020-01-01","end_date":"2020-01-31","options":` + tc.options + `}`
			status, doc := post(t, plaidtest.New(), "/transactions/get", body)
			if status != http.StatusOK {
				t.Fatalf("status = %d: %v", status, doc)
			}

			var ids []string
			for _, tx := range doc["transactions"].([]any) {
				ids = append(ids, tx.(map[string]any)["transaction_id"].(string))
			}
			if diff := cmp.Diff(tc.expIDs, ids); diff != "" {
				t.Errorf("transactions mismatch (-exp +got):\n%s", diff)
			}
			if doc["total_transactions"] != tc.expTotal {
				t.Errorf("total = %v, want %v", doc["total_transactions"], tc.expTotal)
			}
		})
	}
}

func TestFake_CORS(t *testing.T) {
	preflight := func(h http.Handler) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodOptions, "/accounts/get", nil)
		r.Header.Set("Origin", "http://localhost:3000")
		h.ServeHTTP(w, r)
		return w
	}

	w := preflight(plaidtest.New(plaidtest.WithCORS("http://localhost:*")))
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	w = preflight(plaidtest.New())
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("preflight without CORS: status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
