package gradio

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Predict calls a named endpoint with the given positional arguments and
// returns the output tuple. The HTTP event protocol is tried first; servers
// that predate it answer 404 on the call route and are retried over the
// WebSocket queue.
func (c *Client) Predict(ctx context.Context, apiName string, args ...any) ([]any, error) {
	out, err := c.predictHTTP(ctx, apiName, args)

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		return c.predictQueue(ctx, apiName, args)
	}

	return out, err
}

func callPath(apiName string) string {
	return "/call/" + strings.TrimPrefix(apiName, "/")
}

func (c *Client) predictHTTP(ctx context.Context, apiName string, args []any) ([]any, error) {
	if args == nil {
		args = []any{}
	}

	var call struct {
		EventID string `json:"event_id"`
	}

	if err := c.postJSON(ctx, callPath(apiName), map[string]any{"data": args}, &call); err != nil {
		return nil, fmt.Errorf("gradio: call %s: %w", apiName, err)
	}

	if call.EventID == "" {
		return nil, fmt.Errorf("gradio: call %s: server returned no event id", apiName)
	}

	return c.streamResult(ctx, callPath(apiName)+"/"+call.EventID)
}

// streamResult consumes the server-sent event stream for one call until a
// terminal event arrives.
func (c *Client) streamResult(ctx context.Context, path string) ([]any, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("gradio: build stream request: %w", err)
	}

	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("gradio: open stream: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gradio: open stream: unexpected status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	// Screenshot payloads arrive base64-encoded in a single data line.
	scanner.Buffer(make([]byte, 0, 64*1024), 32*1024*1024)

	var event string

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))

			switch event {
			case "complete":
				var out []any
				if err := json.Unmarshal([]byte(data), &out); err != nil {
					return nil, fmt.Errorf("gradio: decode result: %w", err)
				}
				return out, nil
			case "error":
				return nil, fmt.Errorf("gradio: prediction failed: %s", data)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gradio: read stream: %w", err)
	}

	return nil, errors.New("gradio: event stream ended without a result")
}
