package plaid

import "context"

type Category struct {
	CategoryID string   `json:"category_id"`
	Group      string   `json:"group"`
	Hierarchy  []string `json:"hierarchy"`
}

type GetCategoriesResponse struct {
	Categories []Category `json:"categories"`
	RequestID  string     `json:"request_id"`
}

// GetCategories lists the transaction categories. The endpoint is
// unauthenticated.
func (c *Client) GetCategories(ctx context.Context) (*GetCategoriesResponse, error) {
	return call[GetCategoriesResponse](ctx, c, c.newRequest("categories/get", struct{}{}))
}
