package plaid

import "context"

// AssetReport is a point-in-time snapshot of an applicant's Items.
type AssetReport struct {
	AssetReportID  string            `json:"asset_report_id"`
	ClientReportID string            `json:"client_report_id"`
	DateGenerated  string            `json:"date_generated"`
	DaysRequested  int               `json:"days_requested"`
	Items          []AssetReportItem `json:"items"`
}

// AssetReportItem is one Item inside an AssetReport.
type AssetReportItem struct {
	ItemID          string    `json:"item_id"`
	InstitutionID   string    `json:"institution_id"`
	InstitutionName string    `json:"institution_name"`
	DateLastUpdated string    `json:"date_last_updated"`
	Accounts        []Account `json:"accounts"`
}

// GetAssetReportResponse carries a generated report.
type GetAssetReportResponse struct {
	Report    AssetReport `json:"report"`
	Warnings  []Warning   `json:"warnings"`
	RequestID string      `json:"request_id"`
}

// Warning flags partial data in an asset report.
type Warning struct {
	WarningType string `json:"warning_type"`
	WarningCode string `json:"warning_code"`
}

type CreateAuditCopyTokenResponse struct {
	AuditCopyToken string `json:"audit_copy_token"`
	RequestID      string `json:"request_id"`
}

type RemoveAssetReportResponse struct {
	Removed   bool   `json:"removed"`
	RequestID string `json:"request_id"`
}

type assetReportRequest struct {
	clientAuth
	AssetReportToken string `json:"asset_report_token"`
}

type auditCopyRequest struct {
	clientAuth
	AssetReportToken string `json:"asset_report_token"`
	AuditorID        string `json:"auditor_id"`
}

// GetAssetReport fetches the report identified by assetReportToken.
func (c *Client) GetAssetReport(ctx context.Context, assetReportToken string) (*GetAssetReportResponse, error) {
	if err := required("asset report token", assetReportToken); err != nil {
		return nil, err
	}

	payload := assetReportRequest{
		clientAuth:       c.creds.clientAuth(),
		AssetReportToken: assetReportToken,
	}

	return call[GetAssetReportResponse](ctx, c, c.newRequest("asset_report/get", payload))
}

// CreateAuditCopy grants auditorID read access to a report.
func (c *Client) CreateAuditCopy(ctx context.Context, assetReportToken, auditorID string) (*CreateAuditCopyTokenResponse, error) {
	if err := required("asset report token", assetReportToken, "auditor id", auditorID); err != nil {
		return nil, err
	}

	payload := auditCopyRequest{
		clientAuth:       c.creds.clientAuth(),
		AssetReportToken: assetReportToken,
		AuditorID:        auditorID,
	}

	return call[CreateAuditCopyTokenResponse](ctx, c, c.newRequest("asset_report/audit_copy/create", payload))
}

// RemoveAssetReport deletes a report and invalidates its token.
func (c *Client) RemoveAssetReport(ctx context.Context, assetReportToken string) (*RemoveAssetReportResponse, error) {
	if err := required("asset report token", assetReportToken); err != nil {
		return nil, err
	}

	payload := assetReportRequest{
		clientAuth:       c.creds.clientAuth(),
		AssetReportToken: assetReportToken,
	}

	return call[RemoveAssetReportResponse](ctx, c, c.newRequest("asset_report/remove", payload))
}
