package bridge

import (
	"context"
	"fmt"
)

// AgentArgs are the JSON arguments of the run_agent action.
type AgentArgs struct {
	Task      string `json:"task"`
	SessionID string `json:"sessionId"`
}

// AgentRunResult is the run_agent response.
type AgentRunResult struct {
	Success  bool   `json:"success"`
	Result   string `json:"result"`
	Output   string `json:"output"`
	Thinking string `json:"thinking"`
}

// RunAgent forwards an agent task to the Web UI's HTTP API.
func (b *Bridge) RunAgent(ctx context.Context, args AgentArgs) (AgentRunResult, error) {
	res, err := b.API.RunAgent(ctx, args.Task, args.SessionID)
	if err != nil {
		return AgentRunResult{}, fmt.Errorf("bridge: run agent: %w", err)
	}

	return AgentRunResult{
		Success:  true,
		Result:   res.Result,
		Output:   res.Output,
		Thinking: res.Thinking,
	}, nil
}
