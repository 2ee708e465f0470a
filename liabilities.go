package plaid

import "context"

// GetLiabilitiesOptions filters the accounts whose liabilities are returned.
type GetLiabilitiesOptions struct {
	AccountIDs []string
}

type GetLiabilitiesResponse struct {
	Accounts    []Account   `json:"accounts"`
	Item        Item        `json:"item"`
	Liabilities Liabilities `json:"liabilities"`
	RequestID   string      `json:"request_id"`
}

type Liabilities struct {
	Credit  []CreditLiability  `json:"credit"`
	Student []StudentLiability `json:"student"`
}

type CreditLiability struct {
	AccountID              string  `json:"account_id"`
	APRs                   []APR   `json:"aprs"`
	IsOverdue              *bool   `json:"is_overdue"`
	LastPaymentAmount      float64 `json:"last_payment_amount"`
	LastPaymentDate        string  `json:"last_payment_date"`
	LastStatementBalance   float64 `json:"last_statement_balance"`
	LastStatementIssueDate string  `json:"last_statement_issue_date"`
	MinimumPaymentAmount   float64 `json:"minimum_payment_amount"`
	NextPaymentDueDate     string  `json:"next_payment_due_date"`
}

type APR struct {
	APRPercentage        float64  `json:"apr_percentage"`
	APRType              string   `json:"apr_type"`
	BalanceSubjectToAPR  *float64 `json:"balance_subject_to_apr"`
	InterestChargeAmount *float64 `json:"interest_charge_amount"`
}

type StudentLiability struct {
	AccountID                  string  `json:"account_id"`
	AccountNumber              string  `json:"account_number"`
	ExpectedPayoffDate         string  `json:"expected_payoff_date"`
	Guarantor                  string  `json:"guarantor"`
	InterestRatePercentage     float64 `json:"interest_rate_percentage"`
	IsOverdue                  *bool   `json:"is_overdue"`
	LastPaymentAmount          float64 `json:"last_payment_amount"`
	LastPaymentDate            string  `json:"last_payment_date"`
	LoanName                   string  `json:"loan_name"`
	MinimumPaymentAmount       float64 `json:"minimum_payment_amount"`
	NextPaymentDueDate         string  `json:"next_payment_due_date"`
	OriginationDate            string  `json:"origination_date"`
	OriginationPrincipalAmount float64 `json:"origination_principal_amount"`
	OutstandingInterestAmount  float64 `json:"outstanding_interest_amount"`
}

// GetLiabilities fetches liabilities for every account of the Item.
func (c *Client) GetLiabilities(ctx context.Context, accessToken string) (*GetLiabilitiesResponse, error) {
	return c.GetLiabilitiesWithOptions(ctx, accessToken, GetLiabilitiesOptions{})
}

// GetLiabilitiesWithOptions fetches liabilities for the selected accounts.
func (c *Client) GetLiabilitiesWithOptions(ctx context.Context, accessToken string, opts GetLiabilitiesOptions) (*GetLiabilitiesResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	payload := accountsRequest{
		clientAuth:  c.creds.clientAuth(),
		AccessToken: accessToken,
		Options:     newAccountFilter(opts.AccountIDs),
	}

	return call[GetLiabilitiesResponse](ctx, c, c.newRequest("liabilities/get", payload))
}
