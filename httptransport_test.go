package paystation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPTransportDecodesJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("unexpected accept header %q", got)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"statusCode":"200","status":"success","message":"ok"}`))
	}))
	defer srv.Close()

	transport := NewHTTPTransport()
	resp, err := transport.Do(context.Background(), &WireRequest{
		Method: http.MethodPost,
		URL:    srv.URL,
		Header: map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
			"Accept":       "application/json",
		},
		Body: "merchant_id=m",
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	body, ok := resp.Body.(map[string]any)
	if !ok {
		t.Fatalf("expected decoded object, got %T", resp.Body)
	}
	if body["status"] != "success" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestHTTPTransportKeepsRawText(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	transport := NewHTTPTransport()
	resp, err := transport.Do(context.Background(), &WireRequest{Method: http.MethodPost, URL: srv.URL})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if resp.Body != "<html>oops</html>" {
		t.Fatalf("expected raw text body, got %v", resp.Body)
	}
}

func TestHTTPTransportConnectionFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	transport := NewHTTPTransport()
	_, err := transport.Do(context.Background(), &WireRequest{Method: http.MethodPost, URL: srv.URL})
	assertErrorType(t, err, ErrorTypeNetwork)
}

func TestHTTPTransportMalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode":`))
	}))
	defer srv.Close()

	transport := NewHTTPTransport()
	_, err := transport.Do(context.Background(), &WireRequest{Method: http.MethodPost, URL: srv.URL})
	assertErrorType(t, err, ErrorTypeNetwork)
}
