// Package gradio is a minimal client for the API a Gradio app exposes. It
// covers only what the bridge needs: endpoint discovery and named-endpoint
// prediction, using the HTTP event protocol with a WebSocket queue fallback
// for older servers.
package gradio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Client talks to a single Gradio app.
type Client struct {
	BaseURL string       // App base URL (no trailing slash), e.g. "http://localhost:7788".
	Client  *http.Client // HTTP client; falls back to a long-timeout default.

	clientOnce    sync.Once
	defaultClient *http.Client
}

// New creates a Client for the app at baseURL.
func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/")}
}

// StatusError is returned when the app answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// httpClient returns the configured client or a cached default. Predictions
// drive a real browser on the other end, so the default timeout is long.
func (c *Client) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}

	c.clientOnce.Do(func() {
		c.defaultClient = &http.Client{Timeout: 10 * time.Minute}
	})

	return c.defaultClient
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	return c.httpClient().Do(req)
}

// getJSON sends a GET to path, checks for a 2xx status, and unmarshals the
// response body into dest.
func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	return c.doJSON(req, dest)
}

// postJSON marshals payload as JSON, sends a POST to path, checks for a 2xx
// status, and unmarshals the response body into dest.
func (c *Client) postJSON(ctx context.Context, path string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.doJSON(req, dest)
}

func (c *Client) doJSON(req *http.Request, dest any) error {
	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// wsURL converts the BaseURL to a WebSocket URL and appends the path. https
// becomes wss, http becomes ws.
func (c *Client) wsURL(path string) string {
	u := c.BaseURL + path

	if strings.HasPrefix(u, "https://") {
		return "wss://" + u[len("https://"):]
	}

	if strings.HasPrefix(u, "http://") {
		return "ws://" + u[len("http://"):]
	}

	return u
}

// dialWS establishes a WebSocket connection to the given path.
func (c *Client) dialWS(ctx context.Context, path string) (*websocket.Conn, error) {
	conn, _, err := websocket.Dial(ctx, c.wsURL(path), &websocket.DialOptions{
		HTTPClient: c.httpClient(),
	})
	if err != nil {
		return nil, fmt.Errorf("dial websocket: %w", err)
	}

	return conn, nil
}
