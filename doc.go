// Package paystation is a Go client for the PayStation hosted-checkout
// payment API. It builds credentialed form-encoded requests, performs them over
// HTTP, and decodes the JSON responses into typed results with a small typed
// error taxonomy.
//
// # Usage
//
// Construct a [Client] with merchant credentials and an [Environment]; the
// configuration is validated eagerly and immutable afterwards, so one client
// serves any number of concurrent calls.
//
//	client, err := paystation.New(paystation.Config{
//		MerchantID:  "my-merchant",
//		Password:    os.Getenv("PAYSTATION_PASSWORD"),
//		Environment: paystation.EnvironmentSandbox,
//	})
//
// [Client.InitiatePayment] returns a hosted-checkout URL to redirect the
// customer to. [Client.GetTransactionStatus] and
// [Client.GetTransactionStatusByID] look the transaction up afterwards, by
// invoice number or by the provider-assigned transaction id.
//
// # Errors
//
// Every failure is an *[Error] carrying an [ErrorType], a message, and
// optionally the provider or HTTP status code plus an underlying cause.
// Discriminate with errors.As:
//
//	var perr *paystation.Error
//	if errors.As(err, &perr) && perr.Type == paystation.ErrorTypeAuthentication {
//		// rotate credentials
//	}
//
// The SDK never retries and keeps no per-call state; retry policy belongs to
// the caller, and transport policy (timeouts, proxies) to the [Transport].
package paystation
