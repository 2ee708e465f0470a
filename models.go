package plaid

// Account is a single financial account attached to an Item.
type Account struct {
	AccountID          string   `json:"account_id"`
	Balances           Balances `json:"balances"`
	Mask               string   `json:"mask"`
	Name               string   `json:"name"`
	OfficialName       string   `json:"official_name"`
	Type               string   `json:"type"`
	Subtype            string   `json:"subtype"`
	VerificationStatus string   `json:"verification_status,omitempty"`
	Owners             []Owner  `json:"owners,omitempty"`
}

// Balances holds the amounts reported for an Account. Amounts the
// institution does not report are nil.
type Balances struct {
	Available              *float64 `json:"available"`
	Current                *float64 `json:"current"`
	Limit                  *float64 `json:"limit"`
	ISOCurrencyCode        string   `json:"iso_currency_code"`
	UnofficialCurrencyCode string   `json:"unofficial_currency_code"`
}

// Item is a login at an institution.
type Item struct {
	ItemID                string     `json:"item_id"`
	InstitutionID         string     `json:"institution_id"`
	Webhook               string     `json:"webhook"`
	Error                 *ItemError `json:"error"`
	AvailableProducts     []string   `json:"available_products"`
	BilledProducts        []string   `json:"billed_products"`
	ConsentExpirationTime string     `json:"consent_expiration_time"`
}

// ItemError is the error state of an Item, such as ITEM_LOGIN_REQUIRED.
type ItemError struct {
	ErrorType      string `json:"error_type"`
	ErrorCode      string `json:"error_code"`
	ErrorMessage   string `json:"error_message"`
	DisplayMessage string `json:"display_message"`
}

// Owner is identity data attached to an Account.
type Owner struct {
	Names        []string      `json:"names"`
	PhoneNumbers []PhoneNumber `json:"phone_numbers"`
	Emails       []Email       `json:"emails"`
	Addresses    []Address     `json:"addresses"`
}

type PhoneNumber struct {
	Data    string `json:"data"`
	Primary bool   `json:"primary"`
	Type    string `json:"type"`
}

type Email struct {
	Data    string `json:"data"`
	Primary bool   `json:"primary"`
	Type    string `json:"type"`
}

type Address struct {
	Data    AddressData `json:"data"`
	Primary bool        `json:"primary"`
}

type AddressData struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Security is an instrument referenced by holdings and investment transactions.
type Security struct {
	SecurityID            string   `json:"security_id"`
	CUSIP                 string   `json:"cusip"`
	ISIN                  string   `json:"isin"`
	SEDOL                 string   `json:"sedol"`
	InstitutionID         string   `json:"institution_id"`
	InstitutionSecurityID string   `json:"institution_security_id"`
	ProxySecurityID       string   `json:"proxy_security_id"`
	Name                  string   `json:"name"`
	TickerSymbol          string   `json:"ticker_symbol"`
	IsCashEquivalent      bool     `json:"is_cash_equivalent"`
	Type                  string   `json:"type"`
	ClosePrice            *float64 `json:"close_price"`
	ClosePriceAsOf        string   `json:"close_price_as_of"`
	ISOCurrencyCode       string   `json:"iso_currency_code"`
}

// accountFilter is the options object of endpoints that only filter by
// account id. It is omitted from the payload when empty.
type accountFilter struct {
	AccountIDs []string `json:"account_ids"`
}

func newAccountFilter(ids []string) *accountFilter {
	if len(ids) == 0 {
		return nil
	}

	return &accountFilter{AccountIDs: ids}
}
