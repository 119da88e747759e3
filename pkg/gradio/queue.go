package gradio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
)

type queueMsg struct {
	Msg     string          `json:"msg"`
	Success bool            `json:"success"`
	Output  json.RawMessage `json:"output"`
}

// predictQueue runs a prediction over the legacy WebSocket queue protocol:
// the server drives the exchange, asking first for a session hash and then
// for the input data, and finally reports the completed process.
func (c *Client) predictQueue(ctx context.Context, apiName string, args []any) ([]any, error) {
	if args == nil {
		args = []any{}
	}

	fn, err := c.fnIndex(ctx, apiName)
	if err != nil {
		return nil, err
	}

	conn, err := c.dialWS(ctx, "/queue/join")
	if err != nil {
		return nil, fmt.Errorf("gradio: join queue: %w", err)
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	conn.SetReadLimit(32 * 1024 * 1024)

	hash := uuid.NewString()

	for {
		var msg queueMsg
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return nil, fmt.Errorf("gradio: queue read: %w", err)
		}

		switch msg.Msg {
		case "send_hash":
			err = wsjson.Write(ctx, conn, map[string]any{
				"session_hash": hash,
				"fn_index":     fn,
			})
			if err != nil {
				return nil, fmt.Errorf("gradio: queue send hash: %w", err)
			}
		case "send_data":
			err = wsjson.Write(ctx, conn, map[string]any{
				"data":         args,
				"session_hash": hash,
				"fn_index":     fn,
			})
			if err != nil {
				return nil, fmt.Errorf("gradio: queue send data: %w", err)
			}
		case "queue_full":
			return nil, errors.New("gradio: queue full")
		case "process_completed":
			if !msg.Success {
				return nil, fmt.Errorf("gradio: prediction failed: %s", string(msg.Output))
			}

			var out struct {
				Data []any `json:"data"`
			}
			if err := json.Unmarshal(msg.Output, &out); err != nil {
				return nil, fmt.Errorf("gradio: decode result: %w", err)
			}

			return out.Data, nil
		default:
			// estimation, process_starts, process_generating: keep waiting.
		}
	}
}
