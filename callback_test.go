package paystation

import (
	"net/url"
	"testing"
)

func TestParseCallback(t *testing.T) {
	t.Parallel()

	record, err := ParseCallback(url.Values{
		"invoice_number": {"INV-1"},
		"trx_id":         {"TRX-42"},
		"status":         {"success"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if record.InvoiceNumber != "INV-1" || record.TransactionID != "TRX-42" || record.Status != "success" {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestParseCallbackMissingInvoice(t *testing.T) {
	t.Parallel()

	_, err := ParseCallback(url.Values{"trx_id": {"TRX-42"}})
	assertErrorType(t, err, ErrorTypeValidation)
}
