package llmconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openoperator/webui-bridge/pkg/llmconfig"
	"github.com/openoperator/webui-bridge/pkg/webuidir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

func TestDefault(t *testing.T) {
	cfg := llmconfig.Default()

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.InDelta(t, 0.7, cfg.Temperature, 0.0001)
	assert.Empty(t, cfg.BaseURL)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_MissingFilesKeepDefaults(t *testing.T) {
	cfg := llmconfig.Load([]string{filepath.Join(t.TempDir(), "nope.yaml")})

	assert.Equal(t, llmconfig.Default(), cfg)
}

func TestLoad_LastWriterWins(t *testing.T) {
	dir := t.TempDir()
	low := filepath.Join(dir, "low.yaml")
	high := filepath.Join(dir, "high.yaml")
	writeFile(t, low, "llm_provider: azure\nllm_model_name: gpt-3.5-turbo\nllm_temperature: 0.1\n")
	writeFile(t, high, "llm_model_name: gpt-4o-mini\n")

	cfg := llmconfig.Load([]string{low, high})

	assert.Equal(t, "azure", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.InDelta(t, 0.1, cfg.Temperature, 0.0001)
}

func TestLoad_ZeroTemperatureOverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "llm_temperature: 0\n")

	cfg := llmconfig.Load([]string{path})

	assert.Zero(t, cfg.Temperature)
}

func TestLoad_BadYAMLSkipped(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	good := filepath.Join(dir, "good.yaml")
	writeFile(t, bad, "{{{not yaml")
	writeFile(t, good, "llm_base_url: http://localhost:11434/v1\n")

	cfg := llmconfig.Load([]string{bad, good})

	assert.Equal(t, "http://localhost:11434/v1", cfg.BaseURL)
	assert.Equal(t, "openai", cfg.Provider)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("BRIDGE_TEST_MODEL", "gpt-4o-audio")

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "llm_model_name: ${BRIDGE_TEST_MODEL}\n")

	cfg := llmconfig.Load([]string{path})

	assert.Equal(t, "gpt-4o-audio", cfg.Model)
}

func TestCandidatePaths_ExplicitLast(t *testing.T) {
	webui := webuidir.New("/opt/web-ui")

	paths := llmconfig.CandidatePaths(webui, true, "/etc/bridge.yaml")

	require.NotEmpty(t, paths)
	assert.Equal(t, "/etc/bridge.yaml", paths[len(paths)-1])
	assert.Contains(t, paths, "/opt/web-ui/config.yaml")
	assert.Contains(t, paths, "config.yaml")
}

func TestCandidatePaths_NoWebUI(t *testing.T) {
	paths := llmconfig.CandidatePaths(webuidir.Dir{}, false, "")

	assert.Equal(t, []string{llmconfig.UserConfigPath(), "config.yaml"}, paths)
}
