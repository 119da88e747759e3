package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/openoperator/webui-bridge/pkg/bridge"
	"github.com/openoperator/webui-bridge/pkg/envelope"
)

// runAction executes one action and writes its envelope to w. Action
// failures become a failure envelope, never a non-JSON message.
func runAction(ctx context.Context, w io.Writer, b *bridge.Bridge, action, rawArgs string) {
	res, err := dispatch(ctx, b, action, rawArgs)
	if err != nil {
		envelope.Write(w, envelope.Fail(err))
		return
	}

	envelope.Write(w, res)
}

func dispatch(ctx context.Context, b *bridge.Bridge, action, rawArgs string) (any, error) {
	switch action {
	case "health":
		return b.Health(ctx)
	case "create_session":
		var args bridge.SessionArgs
		if err := parseArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		return b.CreateSession(ctx, args)
	case "execute_step":
		var args bridge.StepArgs
		if err := parseArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		return b.ExecuteStep(ctx, args)
	case "run_agent":
		var args bridge.AgentArgs
		if err := parseArgs(rawArgs, &args); err != nil {
			return nil, err
		}
		return b.RunAgent(ctx, args)
	case "close_browser":
		return b.CloseBrowser(ctx)
	case "get_screenshot":
		return b.Screenshot(ctx)
	case "show_api_key_locations":
		return b.ShowKeyLocations(), nil
	default:
		return nil, fmt.Errorf("unknown action: %s", action)
	}
}

func parseArgs(raw string, dest any) error {
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}

	return nil
}
