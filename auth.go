package plaid

import "context"

// GetAuthOptions filters the accounts whose numbers are returned.
type GetAuthOptions struct {
	AccountIDs []string
}

// GetAuthResponse carries account and routing numbers.
type GetAuthResponse struct {
	Accounts  []Account `json:"accounts"`
	Numbers   Numbers   `json:"numbers"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

// Numbers groups account numbers by payment network.
type Numbers struct {
	ACH           []NumberACH           `json:"ach"`
	EFT           []NumberEFT           `json:"eft"`
	International []NumberInternational `json:"international"`
	BACS          []NumberBACS          `json:"bacs"`
}

type NumberACH struct {
	AccountID   string `json:"account_id"`
	Account     string `json:"account"`
	Routing     string `json:"routing"`
	WireRouting string `json:"wire_routing"`
}

type NumberEFT struct {
	AccountID   string `json:"account_id"`
	Account     string `json:"account"`
	Institution string `json:"institution"`
	Branch      string `json:"branch"`
}

type NumberInternational struct {
	AccountID string `json:"account_id"`
	IBAN      string `json:"iban"`
	BIC       string `json:"bic"`
}

type NumberBACS struct {
	AccountID string `json:"account_id"`
	Account   string `json:"account"`
	SortCode  string `json:"sort_code"`
}

// GetAuth fetches account and routing numbers for every account of the Item.
func (c *Client) GetAuth(ctx context.Context, accessToken string) (*GetAuthResponse, error) {
	return c.GetAuthWithOptions(ctx, accessToken, GetAuthOptions{})
}

// GetAuthWithOptions fetches account and routing numbers for the selected accounts.
func (c *Client) GetAuthWithOptions(ctx context.Context, accessToken string, opts GetAuthOptions) (*GetAuthResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	payload := accountsRequest{
		clientAuth:  c.creds.clientAuth(),
		AccessToken: accessToken,
		Options:     newAccountFilter(opts.AccountIDs),
	}

	return call[GetAuthResponse](ctx, c, c.newRequest("auth/get", payload))
}
