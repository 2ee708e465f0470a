package plaid

import "context"

// CreateProcessorTokenResponse carries a token scoped to one account for a
// downstream processor.
type CreateProcessorTokenResponse struct {
	ProcessorToken string `json:"processor_token"`
	RequestID      string `json:"request_id"`
}

type CreateStripeTokenResponse struct {
	StripeBankAccountToken string `json:"stripe_bank_account_token"`
	RequestID              string `json:"request_id"`
}

type processorTokenRequest struct {
	clientAuth
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
}

// CreateApexToken creates a processor token for Apex Clearing.
func (c *Client) CreateApexToken(ctx context.Context, accessToken, accountID string) (*CreateProcessorTokenResponse, error) {
	return c.createProcessorToken(ctx, "processor/apex/processor_token/create", accessToken, accountID)
}

// CreateDwollaToken creates a processor token for Dwolla.
func (c *Client) CreateDwollaToken(ctx context.Context, accessToken, accountID string) (*CreateProcessorTokenResponse, error) {
	return c.createProcessorToken(ctx, "processor/dwolla/processor_token/create", accessToken, accountID)
}

// CreateOcrolusToken creates a processor token for Ocrolus.
func (c *Client) CreateOcrolusToken(ctx context.Context, accessToken, accountID string) (*CreateProcessorTokenResponse, error) {
	return c.createProcessorToken(ctx, "processor/ocrolus/processor_token/create", accessToken, accountID)
}

// CreateStripeToken creates a Stripe bank account token for accountID.
func (c *Client) CreateStripeToken(ctx context.Context, accessToken, accountID string) (*CreateStripeTokenResponse, error) {
	if err := required("access token", accessToken, "account id", accountID); err != nil {
		return nil, err
	}

	payload := processorTokenRequest{
		clientAuth:  c.creds.clientAuth(),
		AccessToken: accessToken,
		AccountID:   accountID,
	}

	return call[CreateStripeTokenResponse](ctx, c, c.newRequest("processor/stripe/bank_account_token/create", payload))
}

func (c *Client) createProcessorToken(ctx context.Context, path, accessToken, accountID string) (*CreateProcessorTokenResponse, error) {
	if err := required("access token", accessToken, "account id", accountID); err != nil {
		return nil, err
	}

	payload := processorTokenRequest{
		clientAuth:  c.creds.clientAuth(),
		AccessToken: accessToken,
		AccountID:   accountID,
	}

	return call[CreateProcessorTokenResponse](ctx, c, c.newRequest(path, payload))
}
