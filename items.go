package plaid

import "context"

type GetItemResponse struct {
	Item      Item        `json:"item"`
	Status    *ItemStatus `json:"status"`
	RequestID string      `json:"request_id"`
}

// ItemStatus holds the last update times of an Item's products.
type ItemStatus struct {
	Investments  *ProductUpdate `json:"investments"`
	Transactions *ProductUpdate `json:"transactions"`
	LastWebhook  *WebhookStatus `json:"last_webhook"`
}

type ProductUpdate struct {
	LastSuccessfulUpdate string `json:"last_successful_update"`
	LastFailedUpdate     string `json:"last_failed_update"`
}

type WebhookStatus struct {
	SentAt   string `json:"sent_at"`
	CodeSent string `json:"code_sent"`
}

type RemoveItemResponse struct {
	Removed   bool   `json:"removed"`
	RequestID string `json:"request_id"`
}

type UpdateItemWebhookResponse struct {
	Item      Item   `json:"item"`
	RequestID string `json:"request_id"`
}

type InvalidateAccessTokenResponse struct {
	NewAccessToken string `json:"new_access_token"`
	RequestID      string `json:"request_id"`
}

type UpdateAccessTokenVersionResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

type CreatePublicTokenResponse struct {
	PublicToken string `json:"public_token"`
	Expiration  string `json:"expiration"`
	RequestID   string `json:"request_id"`
}

type ExchangePublicTokenResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

type webhookRequest struct {
	clientAuth
	AccessToken string `json:"access_token"`
	Webhook     string `json:"webhook"`
}

type accessTokenV1Request struct {
	clientAuth
	AccessTokenV1 string `json:"access_token_v1"`
}

type publicTokenRequest struct {
	clientAuth
	PublicToken string `json:"public_token"`
}

// GetItem fetches the Item behind accessToken.
func (c *Client) GetItem(ctx context.Context, accessToken string) (*GetItemResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	return call[GetItemResponse](ctx, c, c.newRequest("item/get", c.accessTokenPayload(accessToken)))
}

// RemoveItem deletes the Item and invalidates accessToken.
func (c *Client) RemoveItem(ctx context.Context, accessToken string) (*RemoveItemResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	return call[RemoveItemResponse](ctx, c, c.newRequest("item/remove", c.accessTokenPayload(accessToken)))
}

// UpdateItemWebhook points the Item's webhook at a new URL.
func (c *Client) UpdateItemWebhook(ctx context.Context, accessToken, webhook string) (*UpdateItemWebhookResponse, error) {
	if err := required("access token", accessToken, "webhook", webhook); err != nil {
		return nil, err
	}

	payload := webhookRequest{
		clientAuth:  c.creds.clientAuth(),
		AccessToken: accessToken,
		Webhook:     webhook,
	}

	return call[UpdateItemWebhookResponse](ctx, c, c.newRequest("item/webhook/update", payload))
}

// InvalidateAccessToken rotates accessToken, returning its replacement.
func (c *Client) InvalidateAccessToken(ctx context.Context, accessToken string) (*InvalidateAccessTokenResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	return call[InvalidateAccessTokenResponse](ctx, c, c.newRequest("item/access_token/invalidate", c.accessTokenPayload(accessToken)))
}

// UpdateAccessTokenVersion exchanges a legacy access token for a current one.
func (c *Client) UpdateAccessTokenVersion(ctx context.Context, accessToken string) (*UpdateAccessTokenVersionResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	payload := accessTokenV1Request{
		clientAuth:    c.creds.clientAuth(),
		AccessTokenV1: accessToken,
	}

	return call[UpdateAccessTokenVersionResponse](ctx, c, c.newRequest("item/access_token/update_version", payload))
}

// CreatePublicToken creates a short-lived public token for the Item, as
// used to re-open Link in update mode.
func (c *Client) CreatePublicToken(ctx context.Context, accessToken string) (*CreatePublicTokenResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	return call[CreatePublicTokenResponse](ctx, c, c.newRequest("item/public_token/create", c.accessTokenPayload(accessToken)))
}

// ExchangePublicToken trades a public token for a permanent access token.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (*ExchangePublicTokenResponse, error) {
	if err := required("public token", publicToken); err != nil {
		return nil, err
	}

	payload := publicTokenRequest{
		clientAuth:  c.creds.clientAuth(),
		PublicToken: publicToken,
	}

	return call[ExchangePublicTokenResponse](ctx, c, c.newRequest("item/public_token/exchange", payload))
}
