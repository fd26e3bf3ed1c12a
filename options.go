package paystation

import "net/http"

// Option customizes client behavior.
type Option func(*Client)

// WithTransport replaces the wire transport, e.g. to add instrumentation or
// a retry layer around the provider calls.
func WithTransport(transport Transport) Option {
	return func(c *Client) {
		if transport == nil {
			return
		}
		c.transport = transport
	}
}

// WithHTTPClient keeps the default transport but runs it on the given
// http.Client, so callers control timeouts, proxies, and TLS settings.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client == nil {
			return
		}
		c.transport = &HTTPTransport{Client: client}
	}
}

// withBaseURL points the client at an arbitrary host in tests.
func withBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}
