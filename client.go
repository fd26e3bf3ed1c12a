package paystation

import (
	"context"
	"errors"
)

// Client talks to the PayStation hosted-checkout API. All of its state is
// fixed at construction, so a single Client is safe for any number of
// concurrent calls.
type Client struct {
	cfg       Config
	baseURL   string
	transport Transport
}

// New validates the configuration and builds a client. A configuration
// [Error] is returned for blank credentials or an unknown environment.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := &Client{
		cfg:     cfg,
		baseURL: cfg.baseURL(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport()
	}
	return c, nil
}

// Environment reports which host the client targets.
func (c *Client) Environment() Environment { return c.cfg.Environment }

// BaseURL reports the resolved API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// MerchantID reports the configured merchant identifier.
func (c *Client) MerchantID() string { return c.cfg.MerchantID }

// InitiatePayment validates params, posts them to the initiate-payment
// endpoint, and returns the hosted-checkout handle. The customer finishes
// the payment at the returned PaymentURL.
func (c *Client) InitiatePayment(ctx context.Context, params *PaymentInitiationParams) (*PaymentInitiationResult, error) {
	req, err := c.newInitiatePaymentRequest(params)
	if err != nil {
		return nil, err
	}
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, normalizeTransportError(err)
	}
	return parseInitiationResponse(resp)
}

// GetTransactionStatus looks a transaction up by the merchant-assigned
// invoice number.
func (c *Client) GetTransactionStatus(ctx context.Context, invoiceNumber string) (*TransactionStatusResult, error) {
	req, err := c.newInvoiceStatusRequest(invoiceNumber)
	if err != nil {
		return nil, err
	}
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, normalizeTransportError(err)
	}
	return parseStatusResponse(resp)
}

// GetTransactionStatusByID looks a transaction up by the provider-assigned
// transaction id via the v2 endpoint, which reports additional amount and
// date fields.
func (c *Client) GetTransactionStatusByID(ctx context.Context, transactionID string) (*TransactionStatusResult, error) {
	req, err := c.newTransactionStatusRequest(transactionID)
	if err != nil {
		return nil, err
	}
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, normalizeTransportError(err)
	}
	return parseStatusResponse(resp)
}

// normalizeTransportError passes recognized error kinds through unchanged
// and wraps anything else, so a misbehaving transport can never surface an
// untyped failure to callers.
func normalizeTransportError(err error) error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return NewPayStationError("unexpected transport failure", WithCause(err))
}
