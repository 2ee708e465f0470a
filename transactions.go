package plaid

import "context"

const (
	defaultTransactionCount  = 100
	defaultTransactionOffset = 0
)

// GetTransactionsOptions selects the date range and page of transactions.
// Dates are YYYY-MM-DD.
type GetTransactionsOptions struct {
	StartDate  string
	EndDate    string
	AccountIDs []string
	Count      int
	Offset     int
}

type Transaction struct {
	TransactionID        string    `json:"transaction_id"`
	AccountID            string    `json:"account_id"`
	Amount               float64   `json:"amount"`
	ISOCurrencyCode      string    `json:"iso_currency_code"`
	Category             []string  `json:"category"`
	CategoryID           string    `json:"category_id"`
	Date                 string    `json:"date"`
	AuthorizedDate       string    `json:"authorized_date"`
	Name                 string    `json:"name"`
	MerchantName         string    `json:"merchant_name"`
	PaymentChannel       string    `json:"payment_channel"`
	Pending              bool      `json:"pending"`
	PendingTransactionID string    `json:"pending_transaction_id"`
	AccountOwner         string    `json:"account_owner"`
	TransactionType      string    `json:"transaction_type"`
	Location             *Location `json:"location"`
}

type Location struct {
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Region      string   `json:"region"`
	PostalCode  string   `json:"postal_code"`
	Country     string   `json:"country"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	StoreNumber string   `json:"store_number"`
}

type GetTransactionsResponse struct {
	Accounts          []Account     `json:"accounts"`
	Transactions      []Transaction `json:"transactions"`
	Item              Item          `json:"item"`
	TotalTransactions int           `json:"total_transactions"`
	RequestID         string        `json:"request_id"`
}

type transactionsRequest struct {
	clientAuth
	AccessToken string             `json:"access_token"`
	StartDate   string             `json:"start_date"`
	EndDate     string             `json:"end_date"`
	Options     transactionsPaging `json:"options"`
}

type transactionsPaging struct {
	AccountIDs []string `json:"account_ids,omitempty"`
	Count      int      `json:"count"`
	Offset     int      `json:"offset"`
}

// GetTransactions fetches the first 100 transactions between startDate and
// endDate inclusive.
func (c *Client) GetTransactions(ctx context.Context, accessToken, startDate, endDate string) (*GetTransactionsResponse, error) {
	opts := GetTransactionsOptions{
		StartDate: startDate,
		EndDate:   endDate,
		Count:     defaultTransactionCount,
		Offset:    defaultTransactionOffset,
	}

	return c.GetTransactionsWithOptions(ctx, accessToken, opts)
}

// GetTransactionsWithOptions fetches one page of transactions. Both dates
// are required.
func (c *Client) GetTransactionsWithOptions(ctx context.Context, accessToken string, opts GetTransactionsOptions) (*GetTransactionsResponse, error) {
	if err := required("access token", accessToken, "start date", opts.StartDate, "end date", opts.EndDate); err != nil {
		return nil, err
	}

	payload := transactionsRequest{
		clientAuth:  c.creds.clientAuth(),
		AccessToken: accessToken,
		StartDate:   opts.StartDate,
		EndDate:     opts.EndDate,
		Options: transactionsPaging{
			AccountIDs: opts.AccountIDs,
			Count:      opts.Count,
			Offset:     opts.Offset,
		},
	}

	return call[GetTransactionsResponse](ctx, c, c.newRequest("transactions/get", payload))
}
