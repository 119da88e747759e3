// Package webuiapi is a client for the plain HTTP JSON API the Web UI
// backend exposes alongside its Gradio app.
package webuiapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the Web UI's HTTP API.
type Client struct {
	BaseURL string       // e.g. "http://localhost:7788", no trailing slash.
	Client  *http.Client // HTTP client; New sets a 30s-timeout default.
}

// New creates a Client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Status is the response of the health endpoint.
type Status struct {
	Status string `json:"status"`
}

// Health checks whether the Web UI backend is up.
func (c *Client) Health(ctx context.Context) (Status, error) {
	var st Status
	if err := c.getJSON(ctx, "/health", &st); err != nil {
		return Status{}, fmt.Errorf("webuiapi: health: %w", err)
	}

	return st, nil
}

// AgentResult is the response of the run-agent endpoint.
type AgentResult struct {
	Result   string `json:"result"`
	Output   string `json:"output"`
	Thinking string `json:"thinking"`
	Error    string `json:"error"`
}

// RunAgent asks the Web UI to run an agent task within the given session.
// An error field in the response body is surfaced as an error.
func (c *Client) RunAgent(ctx context.Context, task, sessionID string) (AgentResult, error) {
	payload := map[string]string{
		"task":      task,
		"sessionId": sessionID,
	}

	var res AgentResult
	if err := c.postJSON(ctx, "/api/run_agent", payload, &res); err != nil {
		return AgentResult{}, fmt.Errorf("webuiapi: run agent: %w", err)
	}

	if res.Error != "" {
		return AgentResult{}, fmt.Errorf("webuiapi: run agent: %s", res.Error)
	}

	return res, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	return c.doJSON(req, dest)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.doJSON(req, dest)
}

func (c *Client) doJSON(req *http.Request, dest any) error {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
