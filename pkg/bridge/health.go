package bridge

import (
	"context"
	"fmt"
)

// HealthResult reports whether the Web UI is reachable and how the bridge
// is configured.
type HealthResult struct {
	Success   bool         `json:"success"`
	Status    string       `json:"status"`
	APIStatus string       `json:"api_status"`
	Endpoints []string     `json:"endpoints"`
	Config    HealthConfig `json:"config"`
}

// HealthConfig is the configuration summary embedded in a health result.
// The API key itself is never included, only its presence.
type HealthConfig struct {
	Provider  string `json:"llm_provider"`
	Model     string `json:"llm_model_name"`
	HasAPIKey bool   `json:"has_api_key"`
	WebUIPath string `json:"web_ui_path"`
}

// Health lists the Web UI's Gradio endpoints and probes its HTTP health
// endpoint. The Gradio side is authoritative: if it is unreachable the
// action fails. The HTTP API probe is best-effort and reported separately,
// because older Web UI builds do not expose it.
func (b *Bridge) Health(ctx context.Context) (HealthResult, error) {
	eps, err := b.Gradio.Endpoints(ctx)
	if err != nil {
		return HealthResult{}, fmt.Errorf("bridge: health: %w", err)
	}
	if eps == nil {
		eps = []string{}
	}

	apiStatus := "inactive"
	if st, err := b.API.Health(ctx); err == nil && st.Status == "ok" {
		apiStatus = "active"
	}

	webUIPath := ""
	if b.HaveWebUI {
		webUIPath = b.WebUI.Root()
	}

	return HealthResult{
		Success:   true,
		Status:    "ok",
		APIStatus: apiStatus,
		Endpoints: eps,
		Config: HealthConfig{
			Provider:  b.Conf.Provider,
			Model:     b.Conf.Model,
			HasAPIKey: b.Conf.APIKey != "",
			WebUIPath: webUIPath,
		},
	}, nil
}
