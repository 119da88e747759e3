package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/openoperator/webui-bridge/pkg/diag"
)

// WindowSize is a browser window size in pixels.
type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BrowserSettings are the browser options the calling server may pass when
// creating a session.
type BrowserSettings struct {
	WindowSize      WindowSize `json:"windowSize"`
	KeepBrowserOpen *bool      `json:"keepBrowserOpen"`
}

// window returns the requested window size, falling back to the defaults.
func (s BrowserSettings) window() (int, int) {
	w, h := s.WindowSize.Width, s.WindowSize.Height
	if w <= 0 {
		w = defaultWindowW
	}
	if h <= 0 {
		h = defaultWindowH
	}

	return w, h
}

// keepOpen reports whether the browser should stay open between steps.
// Defaults to true.
func (s BrowserSettings) keepOpen() bool {
	return s.KeepBrowserOpen == nil || *s.KeepBrowserOpen
}

// SessionArgs are the JSON arguments of the create_session action.
type SessionArgs struct {
	ContextID       string          `json:"contextId"`
	APIKey          string          `json:"apiKey"`
	BrowserSettings BrowserSettings `json:"browserSettings"`
}

// SessionResult is the create_session response.
type SessionResult struct {
	Success     bool   `json:"success"`
	SessionID   string `json:"sessionId"`
	ContextID   string `json:"contextId"`
	BrowserView string `json:"browserView"`
	FinalResult string `json:"finalResult"`
	Errors      string `json:"errors"`
}

// CreateSession initializes a fresh browser in the Web UI and returns a
// session id the caller uses for subsequent steps. An apiKey in the
// arguments overrides the resolved configuration.
func (b *Bridge) CreateSession(ctx context.Context, args SessionArgs) (SessionResult, error) {
	conf := b.Conf
	if args.APIKey != "" {
		conf.APIKey = args.APIKey
	}

	if conf.APIKey == "" {
		return SessionResult{}, errors.New("no API key found in config, environment, or arguments")
	}

	contextID := args.ContextID
	if contextID == "" {
		contextID = "open-operator-session"
	}

	w, h := args.BrowserSettings.window()
	task := fmt.Sprintf("Initialize browser for %s", contextID)

	out, err := b.Gradio.Predict(ctx, runWithStream,
		runStreamArgs(conf, task, false, args.BrowserSettings.keepOpen(), w, h)...)
	if err != nil {
		return SessionResult{}, fmt.Errorf("bridge: create session: %w", err)
	}

	res := SessionResult{
		Success:     true,
		SessionID:   fmt.Sprintf("session-%d", b.now().Unix()),
		ContextID:   contextID,
		BrowserView: tupleString(out, 0),
		FinalResult: tupleString(out, 1),
		Errors:      tupleString(out, 2),
	}

	if res.Errors != "" {
		diag.Warnf("session creation reported: %s", res.Errors)
	}

	return res, nil
}
