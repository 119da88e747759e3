// Package bridge implements the bridge actions. Each action resolves to a
// single outbound call against the Web UI and reshapes the response into the
// result object the calling server expects on stdout.
package bridge

import (
	"time"

	"github.com/openoperator/webui-bridge/pkg/gradio"
	"github.com/openoperator/webui-bridge/pkg/llmconfig"
	"github.com/openoperator/webui-bridge/pkg/webuiapi"
	"github.com/openoperator/webui-bridge/pkg/webuidir"
)

// Named Gradio endpoints of the Web UI.
const (
	runWithStream      = "/run_with_stream"
	closeGlobalBrowser = "/close_global_browser"
	getScreenshot      = "/get_screenshot"
)

// Artifact paths passed to the Web UI, relative to its own working
// directory.
const (
	recordingsPath   = "./tmp/record_videos"
	agentHistoryPath = "./tmp/agent_history"
	tracesPath       = "./tmp/traces"
)

// Default browser window size.
const (
	defaultWindowW = 1366
	defaultWindowH = 768
)

// Bridge holds the resolved configuration and the two Web UI clients.
type Bridge struct {
	Conf      llmconfig.Config
	WebUI     webuidir.Dir
	HaveWebUI bool
	Gradio    *gradio.Client
	API       *webuiapi.Client

	now func() time.Time
}

// New creates a Bridge against the Web UI at webuiURL.
func New(webuiURL string, conf llmconfig.Config, webui webuidir.Dir, haveWebUI bool) *Bridge {
	return &Bridge{
		Conf:      conf,
		WebUI:     webui,
		HaveWebUI: haveWebUI,
		Gradio:    gradio.New(webuiURL),
		API:       webuiapi.New(webuiURL),
		now:       time.Now,
	}
}

// runStreamArgs builds the positional argument tuple of the Web UI's
// /run_with_stream endpoint. The order mirrors the endpoint's signature
// exactly and must not change independently of the Web UI.
func runStreamArgs(conf llmconfig.Config, task string, useOwnBrowser, keepOpen bool, windowW, windowH int) []any {
	return []any{
		"custom",         // agent_type
		conf.Provider,    // llm_provider
		conf.Model,       // llm_model_name
		conf.Temperature, // llm_temperature
		conf.BaseURL,     // llm_base_url
		conf.APIKey,      // llm_api_key
		useOwnBrowser,    // use_own_browser
		keepOpen,         // keep_browser_open
		false,            // headless: keep the window visible
		false,            // disable_security
		windowW,          // window_w
		windowH,          // window_h
		recordingsPath,   // save_recording_path
		agentHistoryPath, // save_agent_history_path
		tracesPath,       // save_trace_path
		false,            // enable_recording
		task,             // task
		"",               // add_infos
		1,                // max_steps
		true,             // use_vision
		1,                // max_actions_per_step
		"auto",           // tool_calling_method
	}
}

// tupleString returns element i of a prediction tuple as a string, or ""
// when the element is missing or not a string.
func tupleString(tuple []any, i int) string {
	if i >= len(tuple) {
		return ""
	}

	s, _ := tuple[i].(string)

	return s
}
