package paystation

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

// WireRequest is the canonical request handed to a [Transport]: everything
// needed to perform one provider call, immutable once built.
type WireRequest struct {
	Method string
	URL    string
	Header map[string]string
	// Body is the form-encoded payload; empty means no body.
	Body string
}

// WireResponse is the raw outcome of a provider call. Body is the
// JSON-decoded payload when the response declared a JSON content type,
// otherwise the raw text. The parser makes no further assumptions about it.
type WireResponse struct {
	StatusCode int
	StatusText string
	Body       any
}

// Transport performs a single wire request. Implementations must return a
// network [Error] on connection failure, timeout, or an unreadable
// response; HTTP error statuses are returned as a WireResponse, not an
// error. Timeout and cancellation policy belong to the transport.
type Transport interface {
	Do(ctx context.Context, req *WireRequest) (*WireResponse, error)
}

// HTTPTransport is the default [Transport] built on net/http.
type HTTPTransport struct {
	Client *http.Client
}

// NewHTTPTransport returns a transport with timeouts and connection pooling
// suitable for calling the provider from a long-lived process.
func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{
		Client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Do performs the request and decodes the response body per its content type.
func (t *HTTPTransport) Do(ctx context.Context, req *WireRequest) (*WireResponse, error) {
	var bodyReader io.Reader
	if req.Body != "" {
		bodyReader = strings.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return nil, NewNetworkError("build http request: "+err.Error(), WithCause(err))
	}
	for key, value := range req.Header {
		httpReq.Header.Set(key, value)
	}

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, NewNetworkError("perform http request: "+err.Error(), WithCause(err))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("read response body: "+err.Error(), WithCause(err))
	}

	wire := &WireResponse{
		StatusCode: resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
	}
	if isJSONContentType(resp.Header.Get("Content-Type")) {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, NewNetworkError("decode json response: "+err.Error(), WithCause(err))
		}
		wire.Body = decoded
	} else {
		wire.Body = string(raw)
	}
	return wire, nil
}

func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
