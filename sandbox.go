package plaid

import "context"

// CreateSandboxPublicTokenOptions customises the sandbox Item.
type CreateSandboxPublicTokenOptions struct {
	Webhook          string `json:"webhook,omitempty"`
	OverrideUsername string `json:"override_username,omitempty"`
	OverridePassword string `json:"override_password,omitempty"`
}

type CreateSandboxPublicTokenResponse struct {
	PublicToken string `json:"public_token"`
	RequestID   string `json:"request_id"`
}

type ResetSandboxItemResponse struct {
	ResetLogin bool   `json:"reset_login"`
	RequestID  string `json:"request_id"`
}

type sandboxPublicTokenRequest struct {
	publicKeyAuth
	InstitutionID   string                           `json:"institution_id"`
	InitialProducts []string                         `json:"initial_products"`
	Options         *CreateSandboxPublicTokenOptions `json:"options,omitempty"`
}

// CreateSandboxPublicToken creates a public token for a new sandbox Item
// without going through Link. Only available in the sandbox.
func (c *Client) CreateSandboxPublicToken(ctx context.Context, institutionID string, initialProducts []string) (*CreateSandboxPublicTokenResponse, error) {
	return c.CreateSandboxPublicTokenWithOptions(ctx, institutionID, initialProducts, CreateSandboxPublicTokenOptions{})
}

// CreateSandboxPublicTokenWithOptions is CreateSandboxPublicToken with a
// custom webhook or test credentials.
func (c *Client) CreateSandboxPublicTokenWithOptions(ctx context.Context, institutionID string, initialProducts []string, opts CreateSandboxPublicTokenOptions) (*CreateSandboxPublicTokenResponse, error) {
	if err := required("institution id", institutionID); err != nil {
		return nil, err
	}
	if len(initialProducts) == 0 {
		return nil, &MissingInfoError{Field: "initial products"}
	}

	payload := sandboxPublicTokenRequest{
		publicKeyAuth:   c.creds.publicKeyAuth(),
		InstitutionID:   institutionID,
		InitialProducts: initialProducts,
	}
	if opts != (CreateSandboxPublicTokenOptions{}) {
		payload.Options = &opts
	}

	return call[CreateSandboxPublicTokenResponse](ctx, c, c.newRequest("sandbox/public_token/create", payload))
}

// ResetSandboxItem forces a sandbox Item into ITEM_LOGIN_REQUIRED.
func (c *Client) ResetSandboxItem(ctx context.Context, accessToken string) (*ResetSandboxItemResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	return call[ResetSandboxItemResponse](ctx, c, c.newRequest("sandbox/item/reset_login", c.accessTokenPayload(accessToken)))
}
