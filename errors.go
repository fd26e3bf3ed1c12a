package paystation

import "strconv"

// ErrorType discriminates the failure kinds surfaced by the SDK.
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation_error"     // Malformed caller input or malformed provider response shape.
	ErrorTypeConfiguration  ErrorType = "configuration_error"  // Invalid credentials or environment at construction.
	ErrorTypeAuthentication ErrorType = "authentication_error" // Provider rejected the merchant credentials (HTTP 401/403).
	ErrorTypeNetwork        ErrorType = "network_error"        // Transport-level failure: connectivity, timeout, unreadable response.
	ErrorTypePayStation     ErrorType = "paystation_error"     // Provider-level business failure.
)

// Error is the structured failure payload returned by every SDK operation.
// Callers discriminate kinds with errors.As plus the Type field.
type Error struct {
	Type    ErrorType
	Message string
	// Code carries the provider statusCode or the HTTP status as a decimal
	// string. Empty when the failure was detected locally.
	Code string

	cause error
}

// Error makes *Error satisfy the stdlib error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

type errorOption func(*Error)

// WithCode attaches the provider statusCode or HTTP status string.
func WithCode(code string) errorOption {
	return func(er *Error) {
		er.Code = code
	}
}

// WithHTTPStatus attaches an HTTP status as the error code.
func WithHTTPStatus(status int) errorOption {
	return func(er *Error) {
		er.Code = strconv.Itoa(status)
	}
}

// WithCause records the underlying error for errors.Is/As chains.
func WithCause(cause error) errorOption {
	return func(er *Error) {
		er.cause = cause
	}
}

// NewValidationError reports malformed caller input or a malformed provider
// response shape.
func NewValidationError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeValidation, message, opts...)
}

// NewConfigurationError reports invalid credentials or environment. It is
// raised eagerly at client construction, never per call.
func NewConfigurationError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeConfiguration, message, opts...)
}

// NewAuthenticationError reports that the provider rejected the merchant
// credentials.
func NewAuthenticationError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeAuthentication, message, opts...)
}

// NewNetworkError reports a transport-level failure.
func NewNetworkError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypeNetwork, message, opts...)
}

// NewPayStationError reports a provider-level business failure: either an
// explicit status:"failed" body or an unrecognized HTTP error status.
func NewPayStationError(message string, opts ...errorOption) *Error {
	return newError(ErrorTypePayStation, message, opts...)
}

func newError(typ ErrorType, message string, opts ...errorOption) *Error {
	errPayload := &Error{
		Type:    typ,
		Message: message,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(errPayload)
	}
	return errPayload
}
