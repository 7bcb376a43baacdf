// Package gateway is the single chokepoint for all outbound calls to the
// remote Niyam backend. It attaches bearer credentials, distinguishes JSON
// from multipart payloads, unwraps empty responses, and raises a uniform
// error on non-2xx statuses. No retries, no per-status branching: callers
// that need differentiated handling do it themselves.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// TokenSource supplies the current bearer token. An empty string means no
// Authorization header is attached.
type TokenSource interface {
	Token() string
}

// APIError is the uniform failure raised for every non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

const fallbackErrorMessage = "An API error occurred"

// staticToken is a fixed-token source used by WithToken.
type staticToken string

func (t staticToken) Token() string { return string(t) }

// Client issues typed requests against the backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New builds a Client for the given base URL. tokens may be nil for a client
// that never authenticates.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
}

// WithToken returns a shallow copy of the client whose requests carry the
// given bearer token instead of the injected source. Used by the proxy routes
// to forward the caller's credential per request.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.tokens = staticToken(token)
	return &clone
}

// get issues a GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// postJSON issues a POST with a JSON body and decodes the response into out.
// body may be nil for bodyless posts.
func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	return c.do(ctx, http.MethodPost, path, nil, reader, "application/json", out)
}

// postMultipart issues a POST with a prebuilt multipart body. The content
// type carries the writer's boundary; no JSON content type is forced.
func (c *Client) postMultipart(ctx context.Context, path string, body io.Reader, contentType string, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, contentType, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	// 204 and empty bodies resolve to the caller's zero value, never an error.
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: fallbackErrorMessage}

	var body struct {
		Detail string `json:"detail"`
	}
	if data, err := io.ReadAll(resp.Body); err == nil {
		if json.Unmarshal(data, &body) == nil && body.Detail != "" {
			apiErr.Message = body.Detail
		}
	}
	return apiErr
}
