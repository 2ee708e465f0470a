package plaid

import "context"

type GetIncomeResponse struct {
	Item      Item   `json:"item"`
	Income    Income `json:"income"`
	RequestID string `json:"request_id"`
}

// Income summarises the income streams detected for an Item.
type Income struct {
	IncomeStreams                       []IncomeStream `json:"income_streams"`
	LastYearIncome                      float64        `json:"last_year_income"`
	LastYearIncomeBeforeTax             float64        `json:"last_year_income_before_tax"`
	ProjectedYearlyIncome               float64        `json:"projected_yearly_income"`
	ProjectedYearlyIncomeBeforeTax      float64        `json:"projected_yearly_income_before_tax"`
	MaxNumberOfOverlappingIncomeStreams int            `json:"max_number_of_overlapping_income_streams"`
	NumberOfIncomeStreams               int            `json:"number_of_income_streams"`
}

type IncomeStream struct {
	Confidence    float64 `json:"confidence"`
	Days          int     `json:"days"`
	MonthlyIncome float64 `json:"monthly_income"`
	Name          string  `json:"name"`
}

// GetIncome fetches income data for the Item.
func (c *Client) GetIncome(ctx context.Context, accessToken string) (*GetIncomeResponse, error) {
	if err := required("access token", accessToken); err != nil {
		return nil, err
	}

	return call[GetIncomeResponse](ctx, c, c.newRequest("income/get", c.accessTokenPayload(accessToken)))
}
