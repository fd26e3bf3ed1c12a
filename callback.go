package paystation

import (
	"net/url"
	"strings"
)

// CallbackRecord is the payload PayStation appends to the merchant callback
// URL when it redirects the customer back after hosted checkout.
type CallbackRecord struct {
	InvoiceNumber string
	TransactionID string
	Status        string
}

// ParseCallback reads a redirect callback from its query parameters. The
// redirect is not authenticated, so treat the record as advisory and confirm
// it with [Client.GetTransactionStatus] before fulfilling the order.
func ParseCallback(query url.Values) (*CallbackRecord, error) {
	invoiceNumber := strings.TrimSpace(query.Get("invoice_number"))
	if invoiceNumber == "" {
		return nil, NewValidationError("callback missing invoice_number")
	}
	return &CallbackRecord{
		InvoiceNumber: invoiceNumber,
		TransactionID: query.Get("trx_id"),
		Status:        query.Get("status"),
	}, nil
}
