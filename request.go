package paystation

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Endpoint paths, relative to the environment base URL. The status-by-id
// lookup is a distinct v2 endpoint, not a parameter variant of v1.
const (
	endpointInitiatePayment     = "/initiate-payment"
	endpointTransactionStatus   = "/transaction-status"
	endpointTransactionStatusV2 = "/v2/transaction-status"
)

func (c *Client) newInitiatePaymentRequest(params *PaymentInitiationParams) (*WireRequest, error) {
	if params == nil {
		return nil, NewValidationError("payment parameters are required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	body := c.credentialsForm()
	body.Set("invoice_number", params.InvoiceNumber)
	body.Set("cust_name", params.CustomerName)
	body.Set("cust_phone", params.CustomerPhone)
	body.Set("cust_email", params.CustomerEmail)
	body.Set("callback_url", params.CallbackURL)
	body.Set("payment_amount", formatAmount(params.PaymentAmount))

	// Absent optional fields stay out of the body entirely; the provider
	// distinguishes an omitted key from an empty value.
	if params.PayWithCharge != nil {
		body.Set("pay_with_charge", formatAmount(*params.PayWithCharge))
	}
	if params.EMI != nil {
		body.Set("emi", formatAmount(*params.EMI))
	}
	setIfPresent(body, "currency", params.Currency)
	setIfPresent(body, "reference", params.Reference)
	setIfPresent(body, "cust_address", params.CustomerAddress)
	setIfPresent(body, "checkout_items", params.CheckoutItems)
	setIfPresent(body, "opt_a", params.OptA)
	setIfPresent(body, "opt_b", params.OptB)
	setIfPresent(body, "opt_c", params.OptC)

	return c.newWireRequest(endpointInitiatePayment, body), nil
}

func (c *Client) newInvoiceStatusRequest(invoiceNumber string) (*WireRequest, error) {
	if strings.TrimSpace(invoiceNumber) == "" {
		return nil, NewValidationError("invoice_number is required")
	}
	body := c.credentialsForm()
	body.Set("invoice_number", invoiceNumber)
	return c.newWireRequest(endpointTransactionStatus, body), nil
}

func (c *Client) newTransactionStatusRequest(transactionID string) (*WireRequest, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, NewValidationError("trx_id is required")
	}
	body := c.credentialsForm()
	body.Set("trx_id", transactionID)
	return c.newWireRequest(endpointTransactionStatusV2, body), nil
}

// credentialsForm starts a request body carrying the merchant credentials,
// which every PayStation call requires.
func (c *Client) credentialsForm() url.Values {
	body := url.Values{}
	body.Set("merchant_id", c.cfg.MerchantID)
	body.Set("password", c.cfg.Password)
	return body
}

func (c *Client) newWireRequest(path string, body url.Values) *WireRequest {
	return &WireRequest{
		Method: http.MethodPost,
		URL:    c.baseURL + path,
		Header: map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
			"Accept":       "application/json",
		},
		Body: body.Encode(),
	}
}

func setIfPresent(body url.Values, key, value string) {
	if value == "" {
		return
	}
	body.Set(key, value)
}

// formatAmount renders a numeric field in its shortest decimal form.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
