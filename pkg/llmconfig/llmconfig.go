// Package llmconfig assembles the LLM settings the bridge forwards to the
// Web UI: provider, model, temperature, base URL, and API key. Values are
// merged from a fixed probing order of optional sources. Missing or
// malformed sources are skipped silently; the last source holding a value
// wins.
package llmconfig

import (
	"os"
	"path/filepath"

	"github.com/openoperator/webui-bridge/pkg/webuidir"
	"gopkg.in/yaml.v3"
)

// Defaults applied when no source provides a value.
const (
	DefaultProvider    = "openai"
	DefaultModel       = "gpt-4o"
	DefaultTemperature = 0.7
)

// Config is the merged LLM configuration record. The JSON field names match
// what the Web UI expects; the API key is deliberately excluded from JSON
// output.
type Config struct {
	Provider    string  `json:"llm_provider"`
	Model       string  `json:"llm_model_name"`
	Temperature float64 `json:"llm_temperature"`
	BaseURL     string  `json:"llm_base_url"`
	APIKey      string  `json:"-"`
}

// Default returns a Config holding only the defaults.
func Default() Config {
	return Config{
		Provider:    DefaultProvider,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
	}
}

// fileConfig is the overlay shape read from a single config file. Pointer
// fields distinguish an absent field from a zero value during merging.
type fileConfig struct {
	Provider    *string  `yaml:"llm_provider"`
	Model       *string  `yaml:"llm_model_name"`
	Temperature *float64 `yaml:"llm_temperature"`
	BaseURL     *string  `yaml:"llm_base_url"`
}

// Load merges the config files at the given paths over the defaults, in
// order. Environment variables referenced as ${VAR} or $VAR in a file are
// expanded before parsing, so secrets can live in the environment instead of
// on disk. Files that are missing or fail to parse are skipped.
func Load(paths []string) Config {
	cfg := Default()

	for _, path := range paths {
		overlay, err := readFile(path)
		if err != nil {
			continue
		}

		cfg.apply(overlay)
	}

	return cfg
}

func readFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}

	expanded := os.ExpandEnv(string(data))

	var overlay fileConfig
	if err := yaml.Unmarshal([]byte(expanded), &overlay); err != nil {
		return fileConfig{}, err
	}

	return overlay, nil
}

func (c *Config) apply(o fileConfig) {
	if o.Provider != nil {
		c.Provider = *o.Provider
	}
	if o.Model != nil {
		c.Model = *o.Model
	}
	if o.Temperature != nil {
		c.Temperature = *o.Temperature
	}
	if o.BaseURL != nil {
		c.BaseURL = *o.BaseURL
	}
}

// CandidatePaths returns the config files to merge, lowest priority first:
// the per-user config, the Web UI's own config, the working directory
// config, and finally an explicit path from the command line.
func CandidatePaths(webui webuidir.Dir, haveWebUI bool, explicit string) []string {
	var paths []string

	if p := UserConfigPath(); p != "" {
		paths = append(paths, p)
	}

	if haveWebUI {
		paths = append(paths, webui.ConfigPath())
	}

	paths = append(paths, "config.yaml")

	if explicit != "" {
		paths = append(paths, explicit)
	}

	return paths
}

// UserConfigPath returns the per-user config file path (~/.webui/config),
// or "" when the home directory cannot be determined.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".webui", "config")
}
