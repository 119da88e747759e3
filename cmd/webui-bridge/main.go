// Command webui-bridge drives a separately running browser-automation Web UI
// on behalf of a Node server. Every invocation performs one action and
// prints a single JSON result object to stdout; all diagnostics go to
// stderr, because stdout is parsed by the caller.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openoperator/webui-bridge/pkg/bridge"
	"github.com/openoperator/webui-bridge/pkg/diag"
	"github.com/openoperator/webui-bridge/pkg/envelope"
	"github.com/openoperator/webui-bridge/pkg/llmconfig"
	"github.com/openoperator/webui-bridge/pkg/ports"
	"github.com/openoperator/webui-bridge/pkg/webuidir"
)

// defaultPort is the port the Web UI listens on unless a port file or the
// environment says otherwise.
const defaultPort = 7788

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: webui-bridge [flags] <action> [json-args]\n\nActions:\n"+
			"  health                  check the Web UI and report its endpoints\n"+
			"  create_session          initialize a browser session\n"+
			"  execute_step            run one browser step\n"+
			"  run_agent               run an agent task over the HTTP API\n"+
			"  close_browser           close the Web UI's browser\n"+
			"  get_screenshot          fetch the current browser screenshot\n"+
			"  show_api_key_locations  list where an API key may be placed\n\nFlags:\n")
		flag.PrintDefaults()
	}

	webuiURL := flag.String("webui-url", "", "Web UI base URL (default: http://localhost:<resolved port>)")
	configPath := flag.String("config", "", "path to an extra configuration file (highest priority)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	timeout := flag.Duration("timeout", 10*time.Minute, "per-action deadline (0 = none)")
	flag.Parse()

	// The caller reads stdout as JSON, so even startup failures are
	// reported as an envelope rather than a usage error.
	if err := loadDotEnv(*envFile); err != nil {
		envelope.Write(os.Stdout, envelope.Failf("load env file: %v", err))
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		envelope.Write(os.Stdout, envelope.Failf("no action specified"))
		return
	}

	rawArgs := "{}"
	if len(args) > 1 {
		rawArgs = args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	runAction(ctx, os.Stdout, newBridge(*webuiURL, *configPath), args[0], rawArgs)
}

// newBridge resolves the Web UI location, the LLM configuration, and the
// API key, and wires up the clients.
func newBridge(webuiURL, configPath string) *bridge.Bridge {
	dir, haveWebUI := webuidir.Locate()

	conf := llmconfig.Load(llmconfig.CandidatePaths(dir, haveWebUI, configPath))

	if key, _, ok := llmconfig.ResolveAPIKey(dir, haveWebUI); ok {
		conf.APIKey = key
	} else {
		diag.Warnf("no API key found")
	}

	if webuiURL == "" {
		webuiURL = fmt.Sprintf("http://localhost:%d", ports.Resolve("webui", defaultPort))
	}

	diag.Logf("Web UI URL: %s", webuiURL)
	diag.Logf("using LLM provider: %s, model: %s", conf.Provider, conf.Model)

	return bridge.New(webuiURL, conf, dir, haveWebUI)
}
