package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const defaultTimeout = 15 * time.Second

// TokenSource yields the bearer token current at the moment a request is
// issued. An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client issues exactly one HTTP call per method against the backend REST
// API. No method ever retries on its own; retry is a caller decision.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
}

func New(baseURL string, tokens TokenSource, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		log:     log,
	}
}

// do performs the call and returns the raw 2xx body. Transport failures map
// to KindNetwork, 401/403 to KindAuth, any other non-2xx to KindResource.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", ulid.Make().String())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, &Error{
			Kind:    KindNetwork,
			Message: "cannot reach server, check your connection",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Kind:    KindNetwork,
			Message: "connection lost while reading response",
			Err:     err,
		}
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Dur("elapsed", time.Since(start)).
		Msg("request")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}

	kind := KindResource
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		kind = KindAuth
	}
	message := errorMessage(data)
	if message == "" {
		message = "request failed: " + http.StatusText(resp.StatusCode)
	}
	return nil, &Error{Kind: kind, StatusCode: resp.StatusCode, Message: message}
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *Client) put(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, payload)
}

func (c *Client) delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}
