package paystation

// TransactionStatus defines the lifecycle states PayStation reports for a
// transaction.
type TransactionStatus string

const (
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusSuccess    TransactionStatus = "success"
	TransactionStatusFailed     TransactionStatus = "failed"
	TransactionStatusRefund     TransactionStatus = "refund"
)

// Result status values carried in every response envelope.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// PaymentInitiationParams is the input for initiating a hosted-checkout
// payment. Field declaration order is load-bearing: validation reports the
// first violated rule in this order.
//
// Optional string fields are omitted from the request body when left empty;
// optional numeric fields are omitted when nil.
type PaymentInitiationParams struct {
	// Merchant-assigned identifier for this payment, used later as the
	// status lookup key.
	InvoiceNumber string `form:"invoice_number" validate:"notblank"`
	CustomerName  string `form:"cust_name" validate:"notblank"`
	CustomerPhone string `form:"cust_phone" validate:"notblank"`
	// Must look like local@domain.tld.
	CustomerEmail string `form:"cust_email" validate:"notblank"`
	// Absolute http or https URL the customer is redirected to after
	// checkout.
	CallbackURL string `form:"callback_url" validate:"notblank"`
	// Amount to collect, strictly greater than zero.
	PaymentAmount float64 `form:"payment_amount" validate:"gt=0"`
	// Surcharge passed on to the payer, zero or more.
	PayWithCharge *float64 `form:"pay_with_charge" validate:"omitempty,gte=0"`
	// Number of EMI installments, zero or more.
	EMI *float64 `form:"emi" validate:"omitempty,gte=0"`

	Currency        string `form:"currency"`
	Reference       string `form:"reference"`
	CustomerAddress string `form:"cust_address"`
	CheckoutItems   string `form:"checkout_items"`
	OptA            string `form:"opt_a"`
	OptB            string `form:"opt_b"`
	OptC            string `form:"opt_c"`
}

// PaymentInitiationResult is the decoded success envelope of
// initiate-payment. The customer completes the payment at PaymentURL.
type PaymentInitiationResult struct {
	StatusCode    string
	Status        string
	Message       string
	PaymentAmount string
	InvoiceNumber string
	PaymentURL    string
}

// TransactionStatusResult is the decoded success envelope of the two
// transaction-status lookups.
type TransactionStatusResult struct {
	StatusCode string
	Status     string
	Message    string
	// Data is present when the provider included a transaction record.
	Data *TransactionRecord
}

// TransactionRecord describes one transaction as reported by PayStation.
// The v2 status endpoint adds TransactionAmount, TransactionDate, and
// RequestAmount; the parser copies them whenever the provider sends them.
type TransactionRecord struct {
	InvoiceNumber     string
	TransactionStatus TransactionStatus
	TransactionID     string
	PaymentAmount     string
	OrderDateTime     string

	PayerMobileNumber string
	PaymentMethod     string
	Reference         string
	CheckoutItems     string

	TransactionAmount *float64
	TransactionDate   string
	RequestAmount     string
}
