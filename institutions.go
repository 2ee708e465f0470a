package plaid

import "context"

// defaultInstitutionCount is sent when GetInstitutions is called with count 0.
const defaultInstitutionCount = 50

// Institution is a bank or other financial institution.
type Institution struct {
	InstitutionID  string             `json:"institution_id"`
	Name           string             `json:"name"`
	Products       []string           `json:"products"`
	CountryCodes   []string           `json:"country_codes"`
	URL            string             `json:"url,omitempty"`
	PrimaryColor   string             `json:"primary_color,omitempty"`
	Logo           string             `json:"logo,omitempty"`
	RoutingNumbers []string           `json:"routing_numbers,omitempty"`
	OAuth          bool               `json:"oauth"`
	Status         *InstitutionStatus `json:"status,omitempty"`
}

// InstitutionStatus reports per-product health. Only returned when
// requested with IncludeStatus.
type InstitutionStatus struct {
	ItemLogins          *ProductStatus `json:"item_logins,omitempty"`
	TransactionsUpdates *ProductStatus `json:"transactions_updates,omitempty"`
	Auth                *ProductStatus `json:"auth,omitempty"`
	Balance             *ProductStatus `json:"balance,omitempty"`
	Identity            *ProductStatus `json:"identity,omitempty"`
}

type ProductStatus struct {
	Status           string `json:"status"`
	LastStatusChange string `json:"last_status_change"`
}

// GetInstitutionByIDOptions controls optional institution fields.
type GetInstitutionByIDOptions struct {
	IncludeOptionalMetadata bool `json:"include_optional_metadata,omitempty"`
	IncludeStatus           bool `json:"include_status,omitempty"`
}

type GetInstitutionByIDResponse struct {
	Institution Institution `json:"institution"`
	RequestID   string      `json:"request_id"`
}

// GetInstitutionsOptions narrows an institution listing.
type GetInstitutionsOptions struct {
	Products                []string `json:"products,omitempty"`
	CountryCodes            []string `json:"country_codes,omitempty"`
	RoutingNumbers          []string `json:"routing_numbers,omitempty"`
	IncludeOptionalMetadata bool     `json:"include_optional_metadata,omitempty"`
}

type GetInstitutionsResponse struct {
	Institutions []Institution `json:"institutions"`
	Total        int           `json:"total"`
	RequestID    string        `json:"request_id"`
}

// SearchInstitutionsOptions narrows an institution search.
type SearchInstitutionsOptions struct {
	CountryCodes            []string `json:"country_codes,omitempty"`
	IncludeOptionalMetadata bool     `json:"include_optional_metadata,omitempty"`
}

type SearchInstitutionsResponse struct {
	Institutions []Institution `json:"institutions"`
	RequestID    string        `json:"request_id"`
}

type institutionByIDRequest struct {
	publicKeyAuth
	InstitutionID string                    `json:"institution_id"`
	Options       GetInstitutionByIDOptions `json:"options"`
}

type institutionsRequest struct {
	clientAuth
	Count   int                    `json:"count"`
	Offset  int                    `json:"offset"`
	Options GetInstitutionsOptions `json:"options"`
}

type searchInstitutionsRequest struct {
	publicKeyAuth
	Query    string                    `json:"query"`
	Products []string                  `json:"products"`
	Options  SearchInstitutionsOptions `json:"options"`
}

// GetInstitutionByID fetches a single institution.
func (c *Client) GetInstitutionByID(ctx context.Context, id string) (*GetInstitutionByIDResponse, error) {
	return c.GetInstitutionByIDWithOptions(ctx, id, GetInstitutionByIDOptions{})
}

// GetInstitutionByIDWithOptions fetches a single institution with optional fields.
func (c *Client) GetInstitutionByIDWithOptions(ctx context.Context, id string, opts GetInstitutionByIDOptions) (*GetInstitutionByIDResponse, error) {
	if err := required("id", id); err != nil {
		return nil, err
	}

	payload := institutionByIDRequest{
		publicKeyAuth: c.creds.publicKeyAuth(),
		InstitutionID: id,
		Options:       opts,
	}

	return call[GetInstitutionByIDResponse](ctx, c, c.newRequest("institutions/get_by_id", payload))
}

// GetInstitutions pages through the supported institutions. A count of 0
// requests 50.
func (c *Client) GetInstitutions(ctx context.Context, count, offset int) (*GetInstitutionsResponse, error) {
	return c.GetInstitutionsWithOptions(ctx, count, offset, GetInstitutionsOptions{})
}

// GetInstitutionsWithOptions pages through the supported institutions
// matching opts. A count of 0 requests 50.
func (c *Client) GetInstitutionsWithOptions(ctx context.Context, count, offset int, opts GetInstitutionsOptions) (*GetInstitutionsResponse, error) {
	if count == 0 {
		count = defaultInstitutionCount
	}

	payload := institutionsRequest{
		clientAuth: c.creds.clientAuth(),
		Count:      count,
		Offset:     offset,
		Options:    opts,
	}

	return call[GetInstitutionsResponse](ctx, c, c.newRequest("institutions/get", payload))
}

// SearchInstitutions finds institutions by name, optionally restricted to
// those supporting products.
func (c *Client) SearchInstitutions(ctx context.Context, query string, products []string) (*SearchInstitutionsResponse, error) {
	return c.SearchInstitutionsWithOptions(ctx, query, products, SearchInstitutionsOptions{})
}

// SearchInstitutionsWithOptions finds institutions by name with extra filters.
func (c *Client) SearchInstitutionsWithOptions(ctx context.Context, query string, products []string, opts SearchInstitutionsOptions) (*SearchInstitutionsResponse, error) {
	if err := required("query", query); err != nil {
		return nil, err
	}

	if products == nil {
		products = []string{}
	}

	payload := searchInstitutionsRequest{
		publicKeyAuth: c.creds.publicKeyAuth(),
		Query:         query,
		Products:      products,
		Options:       opts,
	}

	return call[SearchInstitutionsResponse](ctx, c, c.newRequest("institutions/search", payload))
}
