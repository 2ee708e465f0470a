package plaid

import "context"

// PaymentRecipientAddress is the postal address of a payment recipient.
type PaymentRecipientAddress struct {
	Street     []string `json:"street"`
	City       string   `json:"city"`
	PostalCode string   `json:"postal_code"`
	Country    string   `json:"country"`
}

// PaymentAmount is an amount in a given ISO currency.
type PaymentAmount struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
}

type PaymentRecipient struct {
	RecipientID string                   `json:"recipient_id"`
	Name        string                   `json:"name"`
	IBAN        string                   `json:"iban"`
	Address     *PaymentRecipientAddress `json:"address"`
}

type Payment struct {
	PaymentID                  string        `json:"payment_id"`
	PaymentToken               string        `json:"payment_token"`
	PaymentTokenExpirationTime string        `json:"payment_token_expiration_time"`
	Reference                  string        `json:"reference"`
	Amount                     PaymentAmount `json:"amount"`
	Status                     string        `json:"status"`
	LastStatusUpdate           string        `json:"last_status_update"`
	RecipientID                string        `json:"recipient_id"`
}

type CreatePaymentRecipientResponse struct {
	RecipientID string `json:"recipient_id"`
	RequestID   string `json:"request_id"`
}

type GetPaymentRecipientResponse struct {
	PaymentRecipient
	RequestID string `json:"request_id"`
}

type ListPaymentRecipientsResponse struct {
	Recipients []PaymentRecipient `json:"recipients"`
	RequestID  string             `json:"request_id"`
}

type CreatePaymentResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
}

type CreatePaymentTokenResponse struct {
	PaymentToken               string `json:"payment_token"`
	PaymentTokenExpirationTime string `json:"payment_token_expiration_time"`
	RequestID                  string `json:"request_id"`
}

type GetPaymentResponse struct {
	Payment
	RequestID string `json:"request_id"`
}

// ListPaymentsOptions pages through payments. Zero values leave the
// choice to the server.
type ListPaymentsOptions struct {
	Count  int
	Cursor string
}

type ListPaymentsResponse struct {
	Payments   []Payment `json:"payments"`
	NextCursor string    `json:"next_cursor"`
	RequestID  string    `json:"request_id"`
}

type createRecipientRequest struct {
	clientAuth
	Name    string                   `json:"name"`
	IBAN    string                   `json:"iban"`
	Address *PaymentRecipientAddress `json:"address,omitempty"`
}

type recipientRequest struct {
	clientAuth
	RecipientID string `json:"recipient_id"`
}

type createPaymentRequest struct {
	clientAuth
	RecipientID string        `json:"recipient_id"`
	Reference   string        `json:"reference"`
	Amount      PaymentAmount `json:"amount"`
}

type paymentRequest struct {
	clientAuth
	PaymentID string `json:"payment_id"`
}

type listPaymentsRequest struct {
	clientAuth
	Count  int    `json:"count,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

// CreatePaymentRecipient registers a recipient for payment initiation.
// address may be nil.
func (c *Client) CreatePaymentRecipient(ctx context.Context, name, iban string, address *PaymentRecipientAddress) (*CreatePaymentRecipientResponse, error) {
	if err := required("name", name, "iban", iban); err != nil {
		return nil, err
	}

	payload := createRecipientRequest{
		clientAuth: c.creds.clientAuth(),
		Name:       name,
		IBAN:       iban,
		Address:    address,
	}

	return call[CreatePaymentRecipientResponse](ctx, c, c.newRequest("payment_initiation/recipient/create", payload))
}

func (c *Client) GetPaymentRecipient(ctx context.Context, recipientID string) (*GetPaymentRecipientResponse, error) {
	if err := required("recipient id", recipientID); err != nil {
		return nil, err
	}

	payload := recipientRequest{
		clientAuth:  c.creds.clientAuth(),
		RecipientID: recipientID,
	}

	return call[GetPaymentRecipientResponse](ctx, c, c.newRequest("payment_initiation/recipient/get", payload))
}

func (c *Client) ListPaymentRecipients(ctx context.Context) (*ListPaymentRecipientsResponse, error) {
	return call[ListPaymentRecipientsResponse](ctx, c, c.newRequest("payment_initiation/recipient/list", c.creds.clientAuth()))
}

// CreatePayment initiates a payment of amount to a registered recipient.
func (c *Client) CreatePayment(ctx context.Context, recipientID, reference string, amount PaymentAmount) (*CreatePaymentResponse, error) {
	if err := required("recipient id", recipientID, "reference", reference); err != nil {
		return nil, err
	}

	payload := createPaymentRequest{
		clientAuth:  c.creds.clientAuth(),
		RecipientID: recipientID,
		Reference:   reference,
		Amount:      amount,
	}

	return call[CreatePaymentResponse](ctx, c, c.newRequest("payment_initiation/payment/create", payload))
}

// CreatePaymentToken creates the token Link needs to authorise a payment.
func (c *Client) CreatePaymentToken(ctx context.Context, paymentID string) (*CreatePaymentTokenResponse, error) {
	if err := required("payment id", paymentID); err != nil {
		return nil, err
	}

	payload := paymentRequest{
		clientAuth: c.creds.clientAuth(),
		PaymentID:  paymentID,
	}

	return call[CreatePaymentTokenResponse](ctx, c, c.newRequest("payment_initiation/payment/token/create", payload))
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (*GetPaymentResponse, error) {
	if err := required("payment id", paymentID); err != nil {
		return nil, err
	}

	payload := paymentRequest{
		clientAuth: c.creds.clientAuth(),
		PaymentID:  paymentID,
	}

	return call[GetPaymentResponse](ctx, c, c.newRequest("payment_initiation/payment/get", payload))
}

// ListPayments returns one page of payments; pass NextCursor back as
// Cursor for the next page.
func (c *Client) ListPayments(ctx context.Context, opts ListPaymentsOptions) (*ListPaymentsResponse, error) {
	payload := listPaymentsRequest{
		clientAuth: c.creds.clientAuth(),
		Count:      opts.Count,
		Cursor:     opts.Cursor,
	}

	return call[ListPaymentsResponse](ctx, c, c.newRequest("payment_initiation/payment/list", payload))
}
