package plaid

import "context"

// GetIdentityResponse lists accounts with their Owners populated.
type GetIdentityResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

type accessTokenRequest struct {
	clientAuth
	AccessToken string `json:"access_token"`
}

// GetIdentity fetches account holder identity data.
func (c *Client) GetIdentity(ctx context.Context, accessToken string) (*GetIdentityResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	return call[GetIdentityResponse](ctx, c, c.newRequest("identity/get", c.accessTokenPayload(accessToken)))
}

func (c *Client) accessTokenPayload(accessToken string) accessTokenRequest {
	return accessTokenRequest{
		clientAuth:  c.creds.clientAuth(),
		AccessToken: accessToken,
	}
}
