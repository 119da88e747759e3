package bridge

import (
	"os"
	"path/filepath"

	"github.com/openoperator/webui-bridge/pkg/llmconfig"
)

// KeyLocations is the show_api_key_locations response.
type KeyLocations struct {
	Success   bool          `json:"success"`
	Locations LocationsInfo `json:"locations"`
}

// LocationsInfo lists every place the key resolver probes, so a user can
// decide where to put their key.
type LocationsInfo struct {
	Possible  PossibleLocations `json:"possible_locations"`
	EnvVars   []string          `json:"environment_variables"`
	WebUIPath string            `json:"web_ui_path"`
}

// PossibleLocations are the concrete candidate file paths. The Web UI
// entries are omitted when no installation was located.
type PossibleLocations struct {
	UserFile      string `json:"user_file"`
	WebUIConfig   string `json:"web_ui_config,omitempty"`
	WebUIEnv      string `json:"web_ui_env,omitempty"`
	UserConfig    string `json:"user_config"`
	WebUISettings string `json:"web_ui_tmp_settings,omitempty"`
}

// ShowKeyLocations reports every candidate API key location. Purely local;
// no call to the Web UI is made.
func (b *Bridge) ShowKeyLocations() KeyLocations {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	possible := PossibleLocations{
		UserFile:   filepath.Join(cwd, llmconfig.UserKeyFile),
		UserConfig: llmconfig.UserConfigPath(),
	}

	webUIPath := ""
	if b.HaveWebUI {
		webUIPath = b.WebUI.Root()
		possible.WebUIConfig = b.WebUI.ConfigPath()
		possible.WebUIEnv = b.WebUI.EnvPath()
		possible.WebUISettings = b.WebUI.SettingsDir()
	}

	return KeyLocations{
		Success: true,
		Locations: LocationsInfo{
			Possible:  possible,
			EnvVars:   llmconfig.KeyEnvVars,
			WebUIPath: webUIPath,
		},
	}
}
