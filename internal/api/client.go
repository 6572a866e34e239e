package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/kamarlaylatt/calvary-admin-front/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:8000/api/admin"

// TokenClearer removes the persisted credential when the server rejects it.
// Implemented by the durable store; nil disables persistence clearing.
type TokenClearer interface {
	ClearToken() error
}

// Error is an API failure carrying the HTTP status and the server's message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Client is the HTTP collaborator for the admin API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter

	mu             sync.RWMutex
	token          string
	tokens         TokenClearer
	onUnauthorized func()
}

// NewClient creates a Client for the admin API.
// An empty baseURL falls back to the local development server; a nil client
// uses [http.DefaultClient].
func NewClient(baseURL string, client *http.Client, tokens TokenClearer) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
		tokens:     tokens,
	}
}

// SetRateLimit throttles outgoing requests to rps requests per second.
// Zero or negative rps removes the limit.
func (c *Client) SetRateLimit(rps float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rps <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the bearer token currently attached to requests.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// OnUnauthorized registers a callback fired whenever any request fails with
// HTTP 401. The callback runs after the token has been cleared both in memory
// and in the durable store.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// invalidate clears the credential everywhere the client can reach and
// signals the subscriber. Runs on every 401, regardless of which request
// triggered it.
func (c *Client) invalidate() {
	c.mu.Lock()
	c.token = ""
	tokens := c.tokens
	fn := c.onUnauthorized
	c.mu.Unlock()

	if tokens != nil {
		// Best effort: a failed delete leaves a token the server already rejected.
		_ = tokens.ClearToken()
	}
	if fn != nil {
		fn()
	}
}

// do performs an authenticated JSON request and decodes the response into result.
func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	c.mu.RLock()
	limiter := c.limiter
	c.mu.RUnlock()
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("request throttled: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidate()
		return fmt.Errorf("%w: %s %s", shared.ErrUnauthorized, method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if resp.StatusCode == http.StatusNoContent || result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// errorFromResponse builds an [*Error] from a non-2xx response, preferring the
// server's message field.
func (c *Client) errorFromResponse(resp *http.Response) error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP error: status %d", resp.StatusCode),
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}

	return apiErr
}
