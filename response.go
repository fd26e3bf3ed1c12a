package paystation

import (
	"fmt"
	"net/http"
	"strconv"
)

// parseInitiationResponse turns a wire response into a
// [PaymentInitiationResult] or a typed error. It is a pure function: parsing
// the same response twice yields equal results.
func parseInitiationResponse(resp *WireResponse) (*PaymentInitiationResult, error) {
	env, err := responseEnvelope(resp)
	if err != nil {
		return nil, err
	}
	result := &PaymentInitiationResult{
		StatusCode: env.statusCode,
		Status:     env.status,
		Message:    env.message,
	}
	if v, ok := stringField(env.body, "paymentAmount"); ok {
		result.PaymentAmount = v
	}
	if v, ok := stringField(env.body, "invoiceNumber"); ok {
		result.InvoiceNumber = v
	}
	if v, ok := stringField(env.body, "paymentUrl"); ok {
		result.PaymentURL = v
	}
	return result, nil
}

// parseStatusResponse turns a wire response into a [TransactionStatusResult]
// or a typed error. It does not know which status endpoint produced the
// body; v2-only record fields are copied whenever the provider sends them.
func parseStatusResponse(resp *WireResponse) (*TransactionStatusResult, error) {
	env, err := responseEnvelope(resp)
	if err != nil {
		return nil, err
	}
	result := &TransactionStatusResult{
		StatusCode: env.statusCode,
		Status:     env.status,
		Message:    env.message,
	}
	if raw, ok := env.body["data"]; ok && raw != nil {
		record, err := parseTransactionRecord(raw)
		if err != nil {
			return nil, err
		}
		result.Data = record
	}
	return result, nil
}

type envelope struct {
	statusCode string
	status     string
	message    string
	body       map[string]any
}

// responseEnvelope applies the checks shared by every operation: structural
// validation, HTTP error-status mapping, the required envelope fields, and
// the provider's status:"failed" business failure, in that order.
func responseEnvelope(resp *WireResponse) (*envelope, error) {
	if resp == nil || resp.Body == nil {
		return nil, NewValidationError("empty response from provider")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, httpStatusError(resp)
	}
	body, ok := resp.Body.(map[string]any)
	if !ok {
		return nil, NewValidationError("provider response body is not an object")
	}
	statusCode, ok := stringField(body, "statusCode")
	if !ok {
		return nil, NewValidationError("provider response missing statusCode")
	}
	status, ok := stringField(body, "status")
	if !ok {
		return nil, NewValidationError("provider response missing status")
	}
	message, ok := stringField(body, "message")
	if !ok {
		return nil, NewValidationError("provider response missing message")
	}
	// A failed status travels over the normal HTTP success path; it is a
	// business failure, distinct from transport-level errors.
	if status == StatusFailed {
		return nil, NewPayStationError(message, WithCode(statusCode))
	}
	return &envelope{
		statusCode: statusCode,
		status:     status,
		message:    message,
		body:       body,
	}, nil
}

func httpStatusError(resp *WireResponse) *Error {
	message, extracted := extractMessage(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if !extracted {
			message = "Authentication failed"
		}
		return NewAuthenticationError(message, WithHTTPStatus(resp.StatusCode))
	case http.StatusBadRequest:
		if !extracted {
			message = "Invalid request parameters"
		}
		return NewValidationError(message, WithHTTPStatus(resp.StatusCode))
	default:
		if !extracted {
			message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.StatusText)
		}
		return NewPayStationError(message, WithHTTPStatus(resp.StatusCode))
	}
}

func parseTransactionRecord(raw any) (*TransactionRecord, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, NewValidationError("transaction data is not an object")
	}
	invoiceNumber, ok := stringField(obj, "invoiceNumber")
	if !ok {
		return nil, NewValidationError("transaction data missing invoiceNumber")
	}
	transactionStatus, ok := stringField(obj, "transactionStatus")
	if !ok {
		return nil, NewValidationError("transaction data missing transactionStatus")
	}
	transactionID, ok := stringField(obj, "transactionId")
	if !ok {
		return nil, NewValidationError("transaction data missing transactionId")
	}

	record := &TransactionRecord{
		InvoiceNumber:     invoiceNumber,
		TransactionStatus: TransactionStatus(transactionStatus),
		TransactionID:     transactionID,
	}
	// paymentAmount and orderDateTime default to empty rather than failing.
	record.PaymentAmount, _ = stringField(obj, "paymentAmount")
	record.OrderDateTime, _ = stringField(obj, "orderDateTime")

	if v, ok := stringField(obj, "payerMobileNumber"); ok {
		record.PayerMobileNumber = v
	}
	if v, ok := stringField(obj, "paymentMethod"); ok {
		record.PaymentMethod = v
	}
	if v, ok := stringField(obj, "reference"); ok {
		record.Reference = v
	}
	if v, ok := stringField(obj, "checkoutItems"); ok {
		record.CheckoutItems = v
	}

	if v, ok := numberField(obj, "transactionAmount"); ok {
		record.TransactionAmount = &v
	}
	if v, ok := stringField(obj, "transactionDate"); ok {
		record.TransactionDate = v
	}
	if v, ok := stringField(obj, "requestAmount"); ok {
		record.RequestAmount = v
	}
	return record, nil
}

// extractMessage pulls a message out of an HTTP error body when the body is
// an object carrying one.
func extractMessage(body any) (string, bool) {
	obj, ok := body.(map[string]any)
	if !ok {
		return "", false
	}
	return stringField(obj, "message")
}

func stringField(obj map[string]any, key string) (string, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", false
	}
	return stringify(v), true
}

func numberField(obj map[string]any, key string) (float64, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return 0, false
	}
	switch value := v.(type) {
	case float64:
		return value, true
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprint(value)
	}
}
