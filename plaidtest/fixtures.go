package plaidtest

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/adamwoolhether/plaid/internal/web"
	"github.com/adamwoolhether/plaid/internal/web/errs"
)

// Identifiers returned by the fixtures.
const (
	ItemID           = "item-sandbox-fake"
	AccessToken      = "access-sandbox-fake"
	PublicToken      = "public-sandbox-fake"
	AssetReportToken = "assets-sandbox-fake"
	RecipientID      = "recipient-id-sandbox-fake"
	PaymentID        = "payment-id-sandbox-fake"
	InstitutionID    = "ins_109508"
)

// Account ids in the fixtures.
const (
	CheckingAccountID   = "acc-checking"
	SavingsAccountID    = "acc-savings"
	CreditAccountID     = "acc-credit"
	InvestmentAccountID = "acc-investment"
	StudentAccountID    = "acc-student"
)

const defaultTransactionCount = 100

var products = []string{"assets", "auth", "balance", "identity", "income", "investments", "liabilities", "payment_initiation", "transactions"}

// ///////////////////////////////////////////////////////////////// accounts and items

func account(id, mask, name, typ, subtype string, available, current any) map[string]any {
	return map[string]any{
		"account_id":    id,
		"mask":          mask,
		"name":          name,
		"official_name": "Plaid " + name,
		"type":          typ,
		"subtype":       subtype,
		"balances": map[string]any{
			"available":                available,
			"current":                  current,
			"limit":                    nil,
			"iso_currency_code":        "USD",
			"unofficial_currency_code": nil,
		},
	}
}

func accounts() []map[string]any {
	return []map[string]any{
		account(CheckingAccountID, "0000", "Checking", "depository", "checking", 100.0, 110.0),
		account(SavingsAccountID, "1111", "Saving", "depository", "savings", 200.0, 210.0),
		account(CreditAccountID, "3333", "Credit Card", "credit", "credit card", nil, 410.0),
		account(InvestmentAccountID, "5555", "IRA", "investment", "ira", nil, 320.76),
		account(StudentAccountID, "7777", "Student Loan", "loan", "student", nil, 65262.0),
	}
}

// filterAccounts keeps the accounts named in options.account_ids, or all
// of them when no ids are given.
func filterAccounts(all []map[string]any, payload map[string]any) []map[string]any {
	ids := accountIDs(payload)
	if len(ids) == 0 {
		return all
	}

	return slices.DeleteFunc(all, func(a map[string]any) bool {
		return !slices.Contains(ids, a["account_id"].(string))
	})
}

func accountIDs(payload map[string]any) []string {
	opts, _ := payload["options"].(map[string]any)
	raw, _ := opts["account_ids"].([]any)

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids
}

func item() map[string]any {
	return map[string]any{
		"item_id":                 ItemID,
		"institution_id":          InstitutionID,
		"webhook":                 "https://www.genericwebhookurl.com/webhook",
		"error":                   nil,
		"available_products":      []string{"assets", "balance", "identity", "investments"},
		"billed_products":         []string{"auth", "transactions"},
		"consent_expiration_time": nil,
	}
}

func accountsResponse(payload map[string]any) (map[string]any, error) {
	return map[string]any{
		"accounts": filterAccounts(accounts(), payload),
		"item":     item(),
	}, nil
}

func itemResponse(map[string]any) (map[string]any, error) {
	return map[string]any{
		"item": item(),
		"status": map[string]any{
			"transactions": map[string]any{
				"last_successful_update": "2020-01-29T18:17:36Z",
				"last_failed_update":     nil,
			},
			"investments":  nil,
			"last_webhook": map[string]any{"sent_at": "2020-01-29T18:17:40Z", "code_sent": "DEFAULT_UPDATE"},
		},
	}, nil
}

func removedResponse(map[string]any) (map[string]any, error) {
	return map[string]any{"removed": true}, nil
}

func webhookUpdateResponse(payload map[string]any) (map[string]any, error) {
	it := item()
	it["webhook"] = payload["webhook"]

	return map[string]any{"item": it}, nil
}

func invalidateResponse(map[string]any) (map[string]any, error) {
	return map[string]any{"new_access_token": AccessToken + "-rotated"}, nil
}

func updateVersionResponse(map[string]any) (map[string]any, error) {
	return map[string]any{"access_token": AccessToken, "item_id": ItemID}, nil
}

func createPublicTokenResponse(map[string]any) (map[string]any, error) {
	return map[string]any{"public_token": PublicToken, "expiration": "2020-01-30T18:17:36Z"}, nil
}

func exchangeResponse(map[string]any) (map[string]any, error) {
	return map[string]any{"access_token": AccessToken, "item_id": ItemID}, nil
}

func resetLoginResponse(map[string]any) (map[string]any, error) {
	return map[string]any{"reset_login": true}, nil
}

// ///////////////////////////////////////////////////////////////// products

func authResponse(payload map[string]any) (map[string]any, error) {
	return map[string]any{
		"accounts": filterAccounts(accounts()[:2], payload),
		"item":     item(),
		"numbers": map[string]any{
			"ach": []map[string]any{
				{"account_id": CheckingAccountID, "account": "1111222233330000", "routing": "011401533", "wire_routing": "021000021"},
				{"account_id": SavingsAccountID, "account": "1111222233331111", "routing": "011401533", "wire_routing": "021000021"},
			},
			"eft":           []any{},
			"international": []any{},
			"bacs":          []any{},
		},
	}, nil
}

func identityResponse(map[string]any) (map[string]any, error) {
	owner := map[string]any{
		"names": []string{"Alberta Bobbeth Charleson"},
		"phone_numbers": []map[string]any{
			{"data": "1112223333", "primary": false, "type": "home"},
		},
		"emails": []map[string]any{
			{"data": "accountholder0@example.com", "primary": true, "type": "primary"},
		},
		"addresses": []map[string]any{
			{
				"data": map[string]any{
					"street":      "2992 Cameron Road",
					"city":        "Malakoff",
					"region":      "NY",
					"postal_code": "14236",
					"country":     "US",
				},
				"primary": true,
			},
		},
	}

	accts := accounts()[:2]
	for _, a := range accts {
		a["owners"] = []map[string]any{owner}
	}

	return map[string]any{"accounts": accts, "item": item()}, nil
}

func incomeResponse(map[string]any) (map[string]any, error) {
	return map[string]any{
		"item": item(),
		"income": map[string]any{
			"income_streams": []map[string]any{
				{"confidence": 1.0, "days": 518, "monthly_income": 1601.0, "name": "PLAID"},
			},
			"last_year_income":                         16010.0,
			"last_year_income_before_tax":              19212.0,
			"projected_yearly_income":                  19212.0,
			"projected_yearly_income_before_tax":       23054.0,
			"max_number_of_overlapping_income_streams": 1,
			"number_of_income_streams":                 1,
		},
	}, nil
}

func categoriesResponse(map[string]any) (map[string]any, error) {
	return map[string]any{
		"categories": []map[string]any{
			{"category_id": "10000000", "group": "special", "hierarchy": []string{"Bank Fees"}},
			{"category_id": "10001000", "group": "special", "hierarchy": []string{"Bank Fees", "Overdraft"}},
			{"category_id": "13005000", "group": "place", "hierarchy": []string{"Food and Drink", "Restaurants"}},
			{"category_id": "22001000", "group": "place", "hierarchy": []string{"Travel", "Airlines and Aviation Services"}},
		},
	}, nil
}

func liabilitiesResponse(map[string]any) (map[string]any, error) {
	return map[string]any{
		"accounts": []map[string]any{accounts()[2], accounts()[4]},
		"item":     item(),
		"liabilities": map[string]any{
			"credit": []map[string]any{
				{
					"account_id": CreditAccountID,
					"aprs": []map[string]any{
						{"apr_percentage": 15.24, "apr_type": "balance_transfer_apr", "balance_subject_to_apr": 1562.32, "interest_charge_amount": 130.22},
					},
					"is_overdue":                false,
					"last_payment_amount":       168.25,
					"last_payment_date":         "2019-05-22",
					"last_statement_balance":    1708.77,
					"last_statement_issue_date": "2019-05-28",
					"minimum_payment_amount":    20.0,
					"next_payment_due_date":     "2020-05-28",
				},
			},
			"student": []map[string]any{
				{
					"account_id":                   StudentAccountID,
					"account_number":               "4277075694",
					"expected_payoff_date":         "2032-07-28",
					"guarantor":                    "DEPT OF ED",
					"interest_rate_percentage":     5.25,
					"is_overdue":                   false,
					"last_payment_amount":          138.05,
					"last_payment_date":            "2019-04-22",
					"loan_name":                    "Consolidation",
					"minimum_payment_amount":       25.0,
					"next_payment_due_date":        "2019-05-28",
					"origination_date":             "2002-07-12",
					"origination_principal_amount": 25000.0,
					"outstanding_interest_amount":  6227.36,
				},
			},
		},
	}, nil
}

func assetReportResponse(map[string]any) (map[string]any, error) {
	return map[string]any{
		"report": map[string]any{
			"asset_report_id":  "bf3a0490-344c-4620-a219-2693162e4b1d",
			"client_report_id": "123abc",
			"date_generated":   "2020-01-29T18:17:36Z",
			"days_requested":   30,
			"items": []map[string]any{
				{
					"item_id":           ItemID,
					"institution_id":    InstitutionID,
					"institution_name":  "First Platypus Bank",
					"date_last_updated": "2020-01-29T18:17:36Z",
					"accounts":          accounts()[:2],
				},
			},
		},
		"warnings": []any{},
	}, nil
}

func auditCopyResponse(map[string]any) (map[string]any, error) {
	return map[string]any{"audit_copy_token": "a-sandbox-fake-audit-copy"}, nil
}

// ///////////////////////////////////////////////////////////////// investments

func securities() []map[string]any {
	return []map[string]any{
		{
			"security_id":        "sec-achme",
			"cusip":              "00448Q201",
			"isin":               "US00448Q2018",
			"name":               "Achaogen Inc",
			"ticker_symbol":      "AKAO",
			"is_cash_equivalent": false,
			"type":               "equity",
			"close_price":        0.011,
			"close_price_as_of":  nil,
			"iso_currency_code":  "USD",
		},
		{
			"security_id":        "sec-usd",
			"name":               "U S Dollar",
			"ticker_symbol":      "USD",
			"is_cash_equivalent": true,
			"type":               "cash",
			"close_price":        1.0,
			"iso_currency_code":  "USD",
		},
	}
}

func holdingsResponse(map[string]any) (map[string]any, error) {
	return map[string]any{
		"accounts":   []map[string]any{accounts()[3]},
		"item":       item(),
		"securities": securities(),
		"holdings": []map[string]any{
			{
				"account_id":              InvestmentAccountID,
				"security_id":             "sec-achme",
				"institution_price":       0.011,
				"institution_price_as_of": nil,
				"institution_value":       110.0,
				"cost_basis":              1.0,
				"quantity":                10000.0,
				"iso_currency_code":       "USD",
			},
			{
				"account_id":        InvestmentAccountID,
				"security_id":       "sec-usd",
				"institution_price": 1.0,
				"institution_value": 210.76,
				"cost_basis":        nil,
				"quantity":          210.76,
				"iso_currency_code": "USD",
			},
		},
	}, nil
}

type dateRangeRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Options   struct {
		AccountIDs []string `json:"account_ids"`
		Count      int      `json:"count" validate:"min=0,max=500"`
		Offset     int      `json:"offset" validate:"min=0"`
	} `json:"options"`
}

func decodeDateRange(payload map[string]any) (dateRangeRequest, error) {
	req, err := web.Remarshal[dateRangeRequest](payload)
	if err != nil {
		return req, err
	}
	if req.EndDate < req.StartDate {
		return req, errs.FieldErrors{{Field: "end_date", Err: "must not be before start_date", Tag: "gtefield"}}
	}
	if req.Options.Count == 0 {
		req.Options.Count = defaultTransactionCount
	}

	return req, nil
}

func investmentTransactionsResponse(payload map[string]any) (map[string]any, error) {
	req, err := decodeDateRange(payload)
	if err != nil {
		return nil, err
	}

	all := []map[string]any{
		{"investment_transaction_id": "inv-tx-1", "account_id": InvestmentAccountID, "security_id": "sec-achme", "date": "2020-01-03", "name": "BUY Achaogen Inc", "quantity": 10000.0, "amount": 110.0, "price": 0.011, "fees": nil, "type": "buy", "subtype": "buy", "iso_currency_code": "USD"},
		{"investment_transaction_id": "inv-tx-2", "account_id": InvestmentAccountID, "security_id": "sec-usd", "date": "2020-01-15", "name": "INVBANKTRAN DEPOSIT", "quantity": 0.0, "amount": -200.0, "price": 0.0, "fees": 0.0, "type": "cash", "subtype": "deposit", "iso_currency_code": "USD"},
	}

	filtered := inRange(all, req)
	return map[string]any{
		"item":                          item(),
		"accounts":                      []map[string]any{accounts()[3]},
		"securities":                    securities(),
		"investment_transactions":       page(filtered, req.Options.Offset, req.Options.Count),
		"total_investment_transactions": len(filtered),
	}, nil
}

// ///////////////////////////////////////////////////////////////// transactions

func transaction(id, accountID, date, name string, amount float64, category ...string) map[string]any {
	return map[string]any{
		"transaction_id":    id,
		"account_id":        accountID,
		"amount":            amount,
		"iso_currency_code": "USD",
		"category":          category,
		"date":              date,
		"name":              name,
		"payment_channel":   "in store",
		"pending":           false,
		"transaction_type":  "place",
		"location": map[string]any{
			"city":    "San Francisco",
			"region":  "CA",
			"country": "US",
			"lat":     nil,
			"lon":     nil,
		},
	}
}

func transactions() []map[string]any {
	return []map[string]any{
		transaction("tx-1", CheckingAccountID, "2020-01-02", "United Airlines", 500, "Travel", "Airlines and Aviation Services"),
		transaction("tx-2", CheckingAccountID, "2020-01-10", "McDonald's", 12, "Food and Drink", "Restaurants"),
		transaction("tx-3", CreditAccountID, "2020-01-18", "Starbucks", 4.33, "Food and Drink", "Restaurants"),
		transaction("tx-4", SavingsAccountID, "2020-01-25", "INTRST PYMNT", -4.22, "Transfer", "Credit"),
		transaction("tx-5", CheckingAccountID, "2020-02-03", "Uber", 5.4, "Travel", "Taxi"),
	}
}

func transactionsResponse(payload map[string]any) (map[string]any, error) {
	req, err := decodeDateRange(payload)
	if err != nil {
		return nil, err
	}

	filtered := inRange(transactions(), req)
	return map[string]any{
		"accounts":           filterAccounts(accounts(), payload),
		"item":               item(),
		"transactions":       page(filtered, req.Options.Offset, req.Options.Count),
		"total_transactions": len(filtered),
	}, nil
}

func inRange(all []map[string]any, req dateRangeRequest) []map[string]any {
	out := make([]map[string]any, 0, len(all))
	for _, tx := range all {
		date := tx["date"].(string)
		if date < req.StartDate || date > req.EndDate {
			continue
		}
		if len(req.Options.AccountIDs) > 0 && !slices.Contains(req.Options.AccountIDs, tx["account_id"].(string)) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func page[T any](all []T, offset, count int) []T {
	if offset >= len(all) {
		return []T{}
	}
	end := min(offset+count, len(all))
	return all[offset:end]
}

// ///////////////////////////////////////////////////////////////// institutions

func institution(id, name string, oauth bool, prods ...string) map[string]any {
	return map[string]any{
		"institution_id": id,
		"name":           name,
		"products":       prods,
		"country_codes":  []string{"US"},
		"oauth":          oauth,
	}
}

func institutions() []map[string]any {
	return []map[string]any{
		institution("ins_109508", "First Platypus Bank", false, products...),
		institution("ins_109509", "First Gingham Credit Union", false, "auth", "balance", "identity", "transactions"),
		institution("ins_109510", "Tattersall Federal Credit Union", false, "auth", "balance", "transactions"),
		institution("ins_109511", "Tartan Bank", false, "assets", "balance", "income", "transactions"),
		institution("ins_109512", "Houndstooth Bank", true, "auth", "balance", "identity", "liabilities", "transactions"),
	}
}

func findInstitution(id any) (map[string]any, error) {
	for _, ins := range institutions() {
		if ins["institution_id"] == id {
			return ins, nil
		}
	}

	return nil, errs.New(http.StatusBadRequest, errs.TypeInvalidInput, "INVALID_INSTITUTION", fmt.Errorf("invalid institution_id provided: %v", id))
}

func institutionByIDResponse(payload map[string]any) (map[string]any, error) {
	ins, err := findInstitution(payload["institution_id"])
	if err != nil {
		return nil, err
	}

	if opts, _ := payload["options"].(map[string]any); opts["include_status"] == true {
		healthy := map[string]any{"status": "HEALTHY", "last_status_change": "2020-01-20T21:09:47Z"}
		ins["status"] = map[string]any{"item_logins": healthy, "transactions_updates": healthy}
	}
	if opts, _ := payload["options"].(map[string]any); opts["include_optional_metadata"] == true {
		ins["url"] = "https://www.plaid.com"
		ins["primary_color"] = "#1f1f1f"
	}

	return map[string]any{"institution": ins}, nil
}

type pageRequest struct {
	Count  int `json:"count" validate:"min=1,max=500"`
	Offset int `json:"offset" validate:"min=0"`
}

func institutionsResponse(payload map[string]any) (map[string]any, error) {
	req, err := web.Remarshal[pageRequest](payload)
	if err != nil {
		return nil, err
	}

	all := institutions()
	return map[string]any{
		"institutions": page(all, req.Offset, req.Count),
		"total":        len(all),
	}, nil
}

func searchInstitutionsResponse(payload map[string]any) (map[string]any, error) {
	q, _ := payload["query"].(string)
	query := strings.ToLower(q)

	var want []string
	raw, _ := payload["products"].([]any)
	for _, p := range raw {
		if s, ok := p.(string); ok {
			want = append(want, s)
		}
	}

	out := []map[string]any{}
	for _, ins := range institutions() {
		if !strings.Contains(strings.ToLower(ins["name"].(string)), query) {
			continue
		}
		have := ins["products"].([]string)
		if slices.ContainsFunc(want, func(p string) bool { return !slices.Contains(have, p) }) {
			continue
		}
		out = append(out, ins)
	}

	return map[string]any{"institutions": out}, nil
}

// ///////////////////////////////////////////////////////////////// sandbox and processors

func sandboxPublicTokenResponse(payload map[string]any) (map[string]any, error) {
	if _, err := findInstitution(payload["institution_id"]); err != nil {
		return nil, err
	}

	raw, _ := payload["initial_products"].([]any)
	var unknown []string
	for _, p := range raw {
		s, _ := p.(string)
		if !slices.Contains(products, s) {
			unknown = append(unknown, fmt.Sprint(p))
		}
	}
	if len(unknown) > 0 {
		return nil, errs.New(http.StatusBadRequest, errs.TypeInvalidInput, "INVALID_PRODUCT", fmt.Errorf("invalid product names: %s", strings.Join(unknown, ", ")))
	}

	return map[string]any{"public_token": PublicToken}, nil
}

func processorTokenResponse(processor string) func(map[string]any) (map[string]any, error) {
	return func(payload map[string]any) (map[string]any, error) {
		return map[string]any{
			"processor_token": fmt.Sprintf("processor-sandbox-%s-%s", processor, payload["account_id"]),
		}, nil
	}
}

func stripeTokenResponse(payload map[string]any) (map[string]any, error) {
	return map[string]any{"stripe_bank_account_token": fmt.Sprintf("btok_%s", payload["account_id"])}, nil
}

// ///////////////////////////////////////////////////////////////// payment initiation

func recipient() map[string]any {
	return map[string]any{
		"recipient_id": RecipientID,
		"name":         "Wonder Wallet",
		"iban":         "GB29NWBK60161331926819",
		"address": map[string]any{
			"street":      []string{"96 Guild Street", "9th Floor"},
			"city":        "London",
			"postal_code": "SE14 8JW",
			"country":     "GB",
		},
	}
}

func createRecipientResponse(map[string]any) (map[string]any, error) {
	return map[string]any{"recipient_id": RecipientID}, nil
}

func recipientResponse(payload map[string]any) (map[string]any, error) {
	if payload["recipient_id"] != RecipientID {
		return nil, errs.New(http.StatusBadRequest, errs.TypeInvalidInput, "RECIPIENT_NOT_FOUND", errors.New("recipient_id does not exist"))
	}

	return recipient(), nil
}

func recipientListResponse(map[string]any) (map[string]any, error) {
	return map[string]any{"recipients": []map[string]any{recipient()}}, nil
}

type createPaymentRequest struct {
	Amount struct {
		Currency string  `json:"currency" validate:"required,iso4217"`
		Value    float64 `json:"value" validate:"gt=0"`
	} `json:"amount"`
}

func createPaymentResponse(payload map[string]any) (map[string]any, error) {
	if _, err := web.Remarshal[createPaymentRequest](payload); err != nil {
		return nil, err
	}

	return map[string]any{"payment_id": PaymentID, "status": "PAYMENT_STATUS_INPUT_NEEDED"}, nil
}

func paymentTokenResponse(map[string]any) (map[string]any, error) {
	return map[string]any{
		"payment_token":                 "payment-token-sandbox-fake",
		"payment_token_expiration_time": "2020-01-01T00:20:00Z",
	}, nil
}

func payments() []map[string]any {
	payment := func(id, status, reference string, value float64) map[string]any {
		return map[string]any{
			"payment_id":         id,
			"reference":          reference,
			"amount":             map[string]any{"currency": "GBP", "value": value},
			"status":             status,
			"last_status_update": "2020-01-01T00:00:00Z",
			"recipient_id":       RecipientID,
		}
	}

	return []map[string]any{
		payment(PaymentID, "PAYMENT_STATUS_INPUT_NEEDED", "invoice 1", 100),
		payment("payment-id-sandbox-2", "PAYMENT_STATUS_EXECUTED", "invoice 2", 12.5),
		payment("payment-id-sandbox-3", "PAYMENT_STATUS_EXECUTED", "invoice 3", 7),
	}
}

func paymentResponse(payload map[string]any) (map[string]any, error) {
	for _, p := range payments() {
		if p["payment_id"] == payload["payment_id"] {
			return p, nil
		}
	}

	return nil, errs.New(http.StatusBadRequest, errs.TypeInvalidInput, "PAYMENT_NOT_FOUND", errors.New("payment_id does not exist"))
}

type listPaymentsRequest struct {
	Count  int    `json:"count" validate:"omitempty,min=1,max=200"`
	Cursor string `json:"cursor"`
}

// paymentListResponse pages by payment id: the cursor names the first
// payment of the page.
func paymentListResponse(payload map[string]any) (map[string]any, error) {
	req, err := web.Remarshal[listPaymentsRequest](payload)
	if err != nil {
		return nil, err
	}
	if req.Count == 0 {
		req.Count = 10
	}

	all := payments()
	start := 0
	if req.Cursor != "" {
		start = slices.IndexFunc(all, func(p map[string]any) bool { return p["payment_id"] == req.Cursor })
		if start < 0 {
			return nil, errs.FieldErrors{{Field: "cursor", Err: "unknown cursor", Tag: "cursor"}}
		}
	}

	pg := page(all, start, req.Count)
	next := ""
	if end := start + len(pg); end < len(all) {
		next = all[end]["payment_id"].(string)
	}

	return map[string]any{"payments": pg, "next_cursor": next}, nil
}
