package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/example/gameshop-client/internal/gateway"
)

var (
	// ErrInvalidCode is returned when the login endpoint rejects the
	// submitted access code (HTTP 404).
	ErrInvalidCode = errors.New("invalid authentication code")
	// ErrUnauthorized is returned on HTTP 401 from any endpoint and means
	// the caller should re-authenticate.
	ErrUnauthorized = errors.New("authentication required")
)

// APIError carries a non-2xx response that is neither a 401 nor a
// login-code rejection.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Body)
}

// Client is a typed client for the storefront API. All calls go through
// the gateway, which attaches the bearer credential when one is held.
type Client struct {
	baseURL string
	gw      *gateway.Gateway
}

func New(baseURL string, gw *gateway.Gateway) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		gw:      gw,
	}
}

// Login submits an access code and returns the issued token. 404 maps to
// ErrInvalidCode; any other non-200 is a generic failure.
func (c *Client) Login(ctx context.Context, code string) (string, error) {
	resp, err := c.postJSON(ctx, "/code/login", map[string]string{"code": code})
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var out struct {
			Message string `json:"message"`
			Token   string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", fmt.Errorf("failed to decode login response: %w", err)
		}
		return out.Token, nil
	case http.StatusNotFound:
		return "", ErrInvalidCode
	default:
		return "", responseError(resp)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	header := http.Header{}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		header.Set("Content-Type", "application/json")
	}
	return c.gw.Do(ctx, method, c.baseURL+path, reader, header)
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// doExpectOK issues the request and interprets anything outside 2xx as an
// error per the client's taxonomy.
func (c *Client) doExpectOK(ctx context.Context, method, path string, body any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}
	return nil
}

// getData fetches path and decodes the response's "data" envelope into out.
func (c *Client) getData(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("GET %s failed: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}
	envelope := struct {
		Data any `json:"data"`
	}{Data: out}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode GET %s response: %w", path, err)
	}
	return nil
}

func responseError(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &APIError{
		Status: resp.StatusCode,
		Body:   strings.TrimSpace(string(body)),
	}
}
