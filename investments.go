package plaid

import "context"

// GetHoldingsOptions filters the accounts whose holdings are returned.
type GetHoldingsOptions struct {
	AccountIDs []string
}

// Holding is a position in a Security held in an investment Account.
type Holding struct {
	AccountID              string   `json:"account_id"`
	SecurityID             string   `json:"security_id"`
	InstitutionPrice       float64  `json:"institution_price"`
	InstitutionPriceAsOf   string   `json:"institution_price_as_of"`
	InstitutionValue       float64  `json:"institution_value"`
	CostBasis              *float64 `json:"cost_basis"`
	Quantity               float64  `json:"quantity"`
	ISOCurrencyCode        string   `json:"iso_currency_code"`
	UnofficialCurrencyCode string   `json:"unofficial_currency_code"`
}

type GetHoldingsResponse struct {
	Accounts   []Account  `json:"accounts"`
	Holdings   []Holding  `json:"holdings"`
	Securities []Security `json:"securities"`
	Item       Item       `json:"item"`
	RequestID  string     `json:"request_id"`
}

// GetInvestmentTransactionsOptions selects the date range and page of
// investment transactions.
type GetInvestmentTransactionsOptions struct {
	StartDate  string
	EndDate    string
	AccountIDs []string
	Count      int
	Offset     int
}

type InvestmentTransaction struct {
	InvestmentTransactionID string   `json:"investment_transaction_id"`
	AccountID               string   `json:"account_id"`
	SecurityID              string   `json:"security_id"`
	Date                    string   `json:"date"`
	Name                    string   `json:"name"`
	Quantity                float64  `json:"quantity"`
	Amount                  float64  `json:"amount"`
	Price                   float64  `json:"price"`
	Fees                    *float64 `json:"fees"`
	Type                    string   `json:"type"`
	Subtype                 string   `json:"subtype"`
	ISOCurrencyCode         string   `json:"iso_currency_code"`
	UnofficialCurrencyCode  string   `json:"unofficial_currency_code"`
}

type GetInvestmentTransactionsResponse struct {
	Item                        Item                    `json:"item"`
	Accounts                    []Account               `json:"accounts"`
	Securities                  []Security              `json:"securities"`
	InvestmentTransactions      []InvestmentTransaction `json:"investment_transactions"`
	TotalInvestmentTransactions int                     `json:"total_investment_transactions"`
	RequestID                   string                  `json:"request_id"`
}

type investmentTransactionsRequest struct {
	clientAuth
	AccessToken string                       `json:"access_token"`
	StartDate   string                       `json:"start_date"`
	EndDate     string                       `json:"end_date"`
	Options     investmentTransactionsPaging `json:"options"`
}

type investmentTransactionsPaging struct {
	AccountIDs []string `json:"account_ids,omitempty"`
	Count      int      `json:"count"`
	Offset     int      `json:"offset"`
}

// GetHoldings fetches holdings for every investment account of the Item.
func (c *Client) GetHoldings(ctx context.Context, accessToken string) (*GetHoldingsResponse, error) {
	return c.GetHoldingsWithOptions(ctx, accessToken, GetHoldingsOptions{})
}

// GetHoldingsWithOptions fetches holdings for the selected accounts.
func (c *Client) GetHoldingsWithOptions(ctx context.Context, accessToken string, opts GetHoldingsOptions) (*GetHoldingsResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	payload := accountsRequest{
		clientAuth:  c.creds.clientAuth(),
		AccessToken: accessToken,
		Options:     newAccountFilter(opts.AccountIDs),
	}

	return call[GetHoldingsResponse](ctx, c, c.newRequest("investments/holdings/get", payload))
}

// GetInvestmentTransactions sends the request with empty start and end
// dates. The API requires a date range and answers with a MISSING_FIELDS
// [APIError]; use GetInvestmentTransactionsWithOptions to fetch data.
func (c *Client) GetInvestmentTransactions(ctx context.Context, accessToken string) (*GetInvestmentTransactionsResponse, error) {
	return c.GetInvestmentTransactionsWithOptions(ctx, accessToken, GetInvestmentTransactionsOptions{})
}

// GetInvestmentTransactionsWithOptions fetches one page of investment
// transactions within the given date range.
func (c *Client) GetInvestmentTransactionsWithOptions(ctx context.Context, accessToken string, opts GetInvestmentTransactionsOptions) (*GetInvestmentTransactionsResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	payload := investmentTransactionsRequest{
		clientAuth:  c.creds.clientAuth(),
		AccessToken: accessToken,
		StartDate:   opts.StartDate,
		EndDate:     opts.EndDate,
		Options: investmentTransactionsPaging{
			AccountIDs: opts.AccountIDs,
			Count:      opts.Count,
			Offset:     opts.Offset,
		},
	}

	return call[GetInvestmentTransactionsResponse](ctx, c, c.newRequest("investments/transactions/get", payload))
}
