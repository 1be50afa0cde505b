package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/apicombat/go-starter-client/lib/logger"
)

// DefaultServerURL is the public API Combat server.
const DefaultServerURL = "https://apicombat.com"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the HTTP client for the API Combat server
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	token      string
	mu         sync.RWMutex
}

// NewClient creates a new API Combat client
func NewClient(baseURL string) *Client {
	// Ensure baseURL doesn't have trailing slash
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken sets the bearer token attached to authenticated requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current bearer token
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// doRequest performs an HTTP request against the server
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, includeAuth bool) (*http.Response, error) {
	// Build URL
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	// Marshal body if provided
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	// Create request
	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Add authorization header if token is available and required
	if includeAuth {
		c.mu.RLock()
		token := c.token
		c.mu.RUnlock()
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	// Execute request
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// readResponse drains and closes the response body
func readResponse(resp *http.Response) ([]byte, error) {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.API.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// newAPIError builds an APIError from a response status and body
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}
	// The server usually wraps errors in {message: ...}
	var wrapped struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		apiErr.Message = wrapped.Message
	}
	return apiErr
}

// parseResponse parses a JSON response into the provided interface
func parseResponse(resp *http.Response, v interface{}) error {
	body, err := readResponse(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, body)
	}

	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// parseResponseExpect parses a JSON response, requiring the exact status
// code the endpoint's contract promises. Anything else, 2xx included, is
// an APIError.
func parseResponseExpect(resp *http.Response, want int, v interface{}) error {
	body, err := readResponse(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode != want {
		return newAPIError(resp.StatusCode, body)
	}

	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// APIError represents a non-success response from the API
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// =============================================================================
// HTTP method helpers
// =============================================================================

// get performs a GET request and parses the response into v
func (c *Client) get(ctx context.Context, path string, v interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return err
	}
	return parseResponse(resp, v)
}

// postExpect performs a POST request, requiring the exact response status
func (c *Client) postExpect(ctx context.Context, path string, want int, body, v interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPost, path, body, true)
	if err != nil {
		return err
	}
	return parseResponseExpect(resp, want, v)
}

// postNoAuthExpect performs an unauthenticated POST request, requiring the
// exact response status
func (c *Client) postNoAuthExpect(ctx context.Context, path string, want int, body, v interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPost, path, body, false)
	if err != nil {
		return err
	}
	return parseResponseExpect(resp, want, v)
}
