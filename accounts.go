package plaid

import "context"

// GetAccountsOptions filters the accounts returned.
type GetAccountsOptions struct {
	AccountIDs []string
}

// GetAccountsResponse lists the accounts of an Item.
type GetAccountsResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

// GetBalancesOptions filters the accounts whose balances are fetched.
type GetBalancesOptions struct {
	AccountIDs []string
}

// GetBalancesResponse lists accounts with real-time balances.
type GetBalancesResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

type accountsRequest struct {
	clientAuth
	AccessToken string         `json:"access_token"`
	Options     *accountFilter `json:"options,omitempty"`
}

// GetBalances fetches real-time balances for every account of the Item.
func (c *Client) GetBalances(ctx context.Context, accessToken string) (*GetBalancesResponse, error) {
	return c.GetBalancesWithOptions(ctx, accessToken, GetBalancesOptions{})
}

// GetBalancesWithOptions fetches real-time balances for the selected accounts.
func (c *Client) GetBalancesWithOptions(ctx context.Context, accessToken string, opts GetBalancesOptions) (*GetBalancesResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	payload := accountsRequest{
		clientAuth:  c.creds.clientAuth(),
		AccessToken: accessToken,
		Options:     newAccountFilter(opts.AccountIDs),
	}

	return call[GetBalancesResponse](ctx, c, c.newRequest("accounts/balance/get", payload))
}

// GetAccounts lists every account of the Item.
func (c *Client) GetAccounts(ctx context.Context, accessToken string) (*GetAccountsResponse, error) {
	return c.GetAccountsWithOptions(ctx, accessToken, GetAccountsOptions{})
}

// GetAccountsWithOptions lists the selected accounts of the Item.
func (c *Client) GetAccountsWithOptions(ctx context.Context, accessToken string, opts GetAccountsOptions) (*GetAccountsResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	payload := accountsRequest{
		clientAuth:  c.creds.clientAuth(),
		AccessToken: accessToken,
		Options:     newAccountFilter(opts.AccountIDs),
	}

	return call[GetAccountsResponse](ctx, c, c.newRequest("accounts/get", payload))
}
