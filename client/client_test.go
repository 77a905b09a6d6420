package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, staticToken(token), zerolog.Nop())
}

func TestAuthorizationHeaderOnlyWhenAuthenticated(t *testing.T) {
	var gotAuth string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}

	c := newTestClient(t, "", handler)
	if _, err := c.Streams(context.Background(), ""); err != nil {
		t.Fatalf("Streams() failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("unauthenticated request carried Authorization %q", gotAuth)
	}

	c = newTestClient(t, "tok-9", handler)
	if _, err := c.Streams(context.Background(), ""); err != nil {
		t.Fatalf("Streams() failed: %v", err)
	}
	if gotAuth != "Bearer tok-9" {
		t.Errorf("Authorization = %q, want Bearer tok-9", gotAuth)
	}
}

func TestRequestIDAttached(t *testing.T) {
	var gotID string
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	})
	if _, err := c.Products(context.Background()); err != nil {
		t.Fatalf("Products() failed: %v", err)
	}
	if gotID == "" {
		t.Error("request carried no X-Request-ID")
	}
}

func TestNetworkFailureIsTyped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := New(server.URL, staticToken(""), zerolog.Nop())
	server.Close()

	_, err := c.Products(context.Background())
	if !IsNetwork(err) {
		t.Fatalf("expected network error, got %v", err)
	}
	var ce *Error
	if !errors.As(err, &ce) || ce.StatusCode != 0 {
		t.Fatalf("network error should have no status code, got %+v", ce)
	}
}

func TestUnauthorizedIsAuthError(t *testing.T) {
	c := newTestClient(t, "expired", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	})

	_, err := c.Profile(context.Background())
	if !IsAuth(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if ce.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", ce.StatusCode)
	}
	if ce.Message != "token expired" {
		t.Errorf("Message = %q, want backend message", ce.Message)
	}
}

func TestResourceErrorKeepsStatusAndMessage(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"stream already live"}`))
	})

	_, err := c.StartStream(context.Background(), "s1")
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if ce.Kind != KindResource {
		t.Errorf("Kind = %v, want resource", ce.Kind)
	}
	if ce.StatusCode != http.StatusConflict {
		t.Errorf("StatusCode = %d, want 409", ce.StatusCode)
	}
	if ce.Message != "stream already live" {
		t.Errorf("Message = %q, want backend error field", ce.Message)
	}
}

func TestErrorWithoutBodyGetsGenericMessage(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Products(context.Background())
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if ce.Message == "" {
		t.Error("expected a fallback message for an empty error body")
	}
}
