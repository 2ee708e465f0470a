package plaidtest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/adamwoolhether/plaid/internal/web"
	"github.com/adamwoolhether/plaid/internal/web/errs"
	"github.com/adamwoolhether/plaid/internal/web/mux"
)

const maxBodySize = 1 << 20

type authStyle int

const (
	authNone authStyle = iota
	authClient
	authPublicKey
)

// route describes one endpoint. respond returns the success document;
// request_id is filled in by the handler.
type route struct {
	path     string
	auth     authStyle
	required []string
	respond  func(payload map[string]any) (map[string]any, error)
}

func (f *Fake) routes() {
	table := []route{
		{path: "accounts/balance/get", auth: authClient, required: []string{"access_token"}, respond: accountsResponse},
		{path: "accounts/get", auth: authClient, required: []string{"access_token"}, respond: accountsResponse},
		{path: "asset_report/get", auth: authClient, required: []string{"asset_report_token"}, respond: assetReportResponse},
		{path: "asset_report/audit_copy/create", auth: authClient, required: []string{"asset_report_token", "auditor_id"}, respond: auditCopyResponse},
		{path: "asset_report/remove", auth: authClient, required: []string{"asset_report_token"}, respond: removedResponse},
		{path: "auth/get", auth: authClient, required: []string{"access_token"}, respond: authResponse},
		{path: "categories/get", auth: authNone, respond: categoriesResponse},
		{path: "identity/get", auth: authClient, required: []string{"access_token"}, respond: identityResponse},
		{path: "income/get", auth: authClient, required: []string{"access_token"}, respond: incomeResponse},
		{path: "institutions/get_by_id", auth: authPublicKey, required: []string{"institution_id"}, respond: institutionByIDResponse},
		{path: "institutions/get", auth: authClient, required: []string{"count"}, respond: institutionsResponse},
		{path: "institutions/search", auth: authPublicKey, required: []string{"query"}, respond: searchInstitutionsResponse},
		{path: "investments/holdings/get", auth: authClient, required: []string{"access_token"}, respond: holdingsResponse},
		{path: "investments/transactions/get", auth: authClient, required: []string{"access_token", "start_date", "end_date"}, respond: investmentTransactionsResponse},
		{path: "item/get", auth: authClient, required: []string{"access_token"}, respond: itemResponse},
		{path: "item/remove", auth: authClient, required: []string{"access_token"}, respond: removedResponse},
		{path: "item/webhook/update", auth: authClient, required: []string{"access_token", "webhook"}, respond: webhookUpdateResponse},
		{path: "item/access_token/invalidate", auth: authClient, required: []string{"access_token"}, respond: invalidateResponse},
		{path: "item/access_token/update_version", auth: authClient, required: []string{"access_token_v1"}, respond: updateVersionResponse},
		{path: "item/public_token/create", auth: authClient, required: []string{"access_token"}, respond: createPublicTokenResponse},
		{path: "item/public_token/exchange", auth: authClient, required: []string{"public_token"}, respond: exchangeResponse},
		{path: "liabilities/get", auth: authClient, required: []string{"access_token"}, respond: liabilitiesResponse},
		{path: "payment_initiation/recipient/create", auth: authClient, required: []string{"name", "iban"}, respond: createRecipientResponse},
		{path: "payment_initiation/recipient/get", auth: authClient, required: []string{"recipient_id"}, respond: recipientResponse},
		{path: "payment_initiation/recipient/list", auth: authClient, respond: recipientListResponse},
		{path: "payment_initiation/payment/create", auth: authClient, required: []string{"recipient_id", "reference", "amount"}, respond: createPaymentResponse},
		{path: "payment_initiation/payment/token/create", auth: authClient, required: []string{"payment_id"}, respond: paymentTokenResponse},
		{path: "payment_initiation/payment/get", auth: authClient, required: []string{"payment_id"}, respond: paymentResponse},
		{path: "payment_initiation/payment/list", auth: authClient, respond: paymentListResponse},
		{path: "processor/apex/processor_token/create", auth: authClient, required: []string{"access_token", "account_id"}, respond: processorTokenResponse("apex")},
		{path: "processor/dwolla/processor_token/create", auth: authClient, required: []string{"access_token", "account_id"}, respond: processorTokenResponse("dwolla")},
		{path: "processor/ocrolus/processor_token/create", auth: authClient, required: []string{"access_token", "account_id"}, respond: processorTokenResponse("ocrolus")},
		{path: "processor/stripe/bank_account_token/create", auth: authClient, required: []string{"access_token", "account_id"}, respond: stripeTokenResponse},
		{path: "sandbox/public_token/create", auth: authPublicKey, required: []string{"institution_id", "initial_products"}, respond: sandboxPublicTokenResponse},
		{path: "sandbox/item/reset_login", auth: authClient, required: []string{"access_token"}, respond: resetLoginResponse},
		{path: "transactions/get", auth: authClient, required: []string{"access_token", "start_date", "end_date"}, respond: transactionsResponse},
	}

	for _, rt := range table {
		f.app.Post("/"+rt.path, f.handle(rt))
	}
	f.app.Post("/{path...}", f.notFound)
	f.app.Handle(http.MethodOptions, "/{path...}", f.preflight)
}

// preflight is reached only when no CORS middleware answered the request.
func (f *Fake) preflight(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return errs.New(http.StatusMethodNotAllowed, errs.TypeInvalidRequest, "METHOD_NOT_ALLOWED", errors.New("only POST is supported"))
}

func (f *Fake) handle(rt route) mux.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			return errs.New(http.StatusBadRequest, errs.TypeInvalidRequest, "INVALID_BODY", err)
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var payload map[string]any
		if err := web.Decode(r, &payload); err != nil {
			return errs.New(http.StatusBadRequest, errs.TypeInvalidRequest, "INVALID_BODY", fmt.Errorf("body could not be parsed as JSON: %w", err))
		}
		if payload == nil {
			payload = map[string]any{}
		}

		f.record(rt.path, payload, body)

		if ov, ok := f.override(rt.path); ok {
			return web.RespondRaw(ctx, w, ov.status, ov.body)
		}

		if err := f.authenticate(rt.auth, payload); err != nil {
			return err
		}

		if err := web.Required(payload, rt.required...); err != nil {
			return err
		}

		if err := checkTokens(payload); err != nil {
			return err
		}

		resp, err := rt.respond(payload)
		if err != nil {
			return err
		}
		resp["request_id"] = mux.RequestID(ctx)

		return web.RespondJSON(ctx, w, http.StatusOK, resp)
	}
}

func (f *Fake) notFound(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	f.record(strings.TrimPrefix(r.URL.Path, "/"), nil, nil)

	return errs.New(http.StatusNotFound, errs.TypeInvalidRequest, "NOT_FOUND", fmt.Errorf("unknown endpoint %s", r.URL.Path))
}

func (f *Fake) authenticate(style authStyle, payload map[string]any) error {
	switch style {
	case authClient:
		if err := web.Required(payload, "client_id", "secret"); err != nil {
			return err
		}
		if payload["client_id"] != f.clientID || payload["secret"] != f.secret {
			return errs.New(http.StatusBadRequest, errs.TypeInvalidInput, "INVALID_API_KEYS", errors.New("invalid client_id or secret provided"))
		}

	case authPublicKey:
		if err := web.Required(payload, "public_key"); err != nil {
			return err
		}
		if payload["public_key"] != f.publicKey {
			return errs.New(http.StatusBadRequest, errs.TypeInvalidInput, "INVALID_API_KEYS", errors.New("invalid public_key provided"))
		}
	}

	return nil
}

// checkTokens rejects tokens that do not carry the expected prefix.
func checkTokens(payload map[string]any) error {
	prefixes := []struct {
		key, prefix, code string
	}{
		{"access_token", "access-", "INVALID_ACCESS_TOKEN"},
		{"asset_report_token", "assets-", "INVALID_ASSET_REPORT_TOKEN"},
		{"public_token", "public-", "INVALID_PUBLIC_TOKEN"},
	}

	for _, p := range prefixes {
		v, ok := payload[p.key].(string)
		if !ok || strings.HasPrefix(v, p.prefix) {
			continue
		}
		msg := fmt.Sprintf("provided %s is in an invalid format", strings.ReplaceAll(p.key, "_", " "))
		return errs.New(http.StatusBadRequest, errs.TypeInvalidInput, p.code, errors.New(msg))
	}

	return nil
}
