package bridge

import (
	"context"
	"errors"
	"fmt"
)

// StepArgs are the JSON arguments of the execute_step action. Tool, Args,
// and Text describe the planned step for the caller's own bookkeeping; the
// Web UI only consumes the task text.
type StepArgs struct {
	Tool          string         `json:"tool"`
	Args          map[string]any `json:"args"`
	Text          string         `json:"text"`
	Task          string         `json:"task"`
	UseOwnBrowser *bool          `json:"use_own_browser"`
}

// StepResult is the execute_step response.
type StepResult struct {
	Success     bool   `json:"success"`
	BrowserView string `json:"browserView"`
	FinalResult string `json:"finalResult"`
	Extraction  string `json:"extraction"`
	Errors      string `json:"errors"`
	Actions     string `json:"actions"`
	Thoughts    string `json:"thoughts"`
}

// ExecuteStep runs one browser step in the Web UI and returns the reshaped
// prediction tuple.
func (b *Bridge) ExecuteStep(ctx context.Context, args StepArgs) (StepResult, error) {
	if b.Conf.APIKey == "" {
		return StepResult{}, errors.New("no API key found in config or environment")
	}

	useOwnBrowser := args.UseOwnBrowser == nil || *args.UseOwnBrowser

	out, err := b.Gradio.Predict(ctx, runWithStream,
		runStreamArgs(b.Conf, args.Task, useOwnBrowser, true, defaultWindowW, defaultWindowH)...)
	if err != nil {
		return StepResult{}, fmt.Errorf("bridge: execute step: %w", err)
	}

	finalResult := tupleString(out, 1)

	return StepResult{
		Success:     true,
		BrowserView: tupleString(out, 0),
		FinalResult: finalResult,
		Extraction:  finalResult,
		Errors:      tupleString(out, 2),
		Actions:     tupleString(out, 3),
		Thoughts:    tupleString(out, 4),
	}, nil
}
