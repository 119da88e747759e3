package llmconfig_test

import (
	"path/filepath"
	"testing"

	"github.com/openoperator/webui-bridge/pkg/llmconfig"
	"github.com/openoperator/webui-bridge/pkg/webuidir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newInstall creates a valid Web UI installation directory.
func newInstall(t *testing.T) webuidir.Dir {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "webui.py"), "# app\n")

	return webuidir.New(root)
}

func TestValidKey(t *testing.T) {
	assert.True(t, llmconfig.ValidKey("sk-abc123"))
	assert.True(t, llmconfig.ValidKey("sk-proj_ABC-123"))
	assert.True(t, llmconfig.ValidKey("  sk-abc123  "))
	assert.False(t, llmconfig.ValidKey(""))
	assert.False(t, llmconfig.ValidKey("abc123"))
	assert.False(t, llmconfig.ValidKey("sk_abc"))
}

func TestResolveAPIKey_FromSettingsDir(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(llmconfig.KeyEnvVar, "")

	webui := newInstall(t)
	writeFile(t, filepath.Join(webui.SettingsDir(), "ui_settings"), `{"llm_api_key":"sk-settings"}`)

	key, source, ok := llmconfig.ResolveAPIKey(webui, true)
	require.True(t, ok)
	assert.Equal(t, "sk-settings", key)
	assert.Equal(t, "web UI settings", source)
}

func TestResolveAPIKey_FromUserFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(llmconfig.KeyEnvVar, "")

	writeFile(t, llmconfig.UserKeyFile, "sk-userfile\n")

	key, source, ok := llmconfig.ResolveAPIKey(webuidir.Dir{}, false)
	require.True(t, ok)
	assert.Equal(t, "sk-userfile", key)
	assert.Equal(t, ".api-key file", source)
}

func TestResolveAPIKey_UserFileCommentIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(llmconfig.KeyEnvVar, "sk-env")

	writeFile(t, llmconfig.UserKeyFile, "# paste your key here\n")

	key, source, ok := llmconfig.ResolveAPIKey(webuidir.Dir{}, false)
	require.True(t, ok)
	assert.Equal(t, "sk-env", key)
	assert.Equal(t, "environment", source)
}

func TestResolveAPIKey_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(llmconfig.KeyEnvVar, "sk-from-env")

	key, _, ok := llmconfig.ResolveAPIKey(webuidir.Dir{}, false)
	require.True(t, ok)
	assert.Equal(t, "sk-from-env", key)
}

func TestResolveAPIKey_InvalidEnvKeySkipped(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(llmconfig.KeyEnvVar, "not-a-key")

	_, _, ok := llmconfig.ResolveAPIKey(webuidir.Dir{}, false)
	assert.False(t, ok)
}

func TestResolveAPIKey_FromWebUIConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(llmconfig.KeyEnvVar, "")

	webui := newInstall(t)
	writeFile(t, webui.ConfigPath(), "llm_provider: openai\nllm_api_key: sk-from-config\n")

	key, source, ok := llmconfig.ResolveAPIKey(webui, true)
	require.True(t, ok)
	assert.Equal(t, "sk-from-config", key)
	assert.Equal(t, "web UI config.yaml", source)
}

func TestResolveAPIKey_FromWebUIDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(llmconfig.KeyEnvVar, "")

	webui := newInstall(t)
	writeFile(t, webui.EnvPath(), "OPENAI_API_KEY=sk-from-dotenv\n")

	key, source, ok := llmconfig.ResolveAPIKey(webui, true)
	require.True(t, ok)
	assert.Equal(t, "sk-from-dotenv", key)
	assert.Equal(t, "web UI .env", source)
}

func TestResolveAPIKey_SettingsBeatEverything(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(llmconfig.KeyEnvVar, "sk-env")

	webui := newInstall(t)
	writeFile(t, filepath.Join(webui.SettingsDir(), "ui_settings"), `{"llm_api_key":"sk-settings"}`)
	writeFile(t, llmconfig.UserKeyFile, "sk-userfile")

	key, _, ok := llmconfig.ResolveAPIKey(webui, true)
	require.True(t, ok)
	assert.Equal(t, "sk-settings", key)
}

func TestResolveAPIKey_NothingFound(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(llmconfig.KeyEnvVar, "")

	_, _, ok := llmconfig.ResolveAPIKey(webuidir.Dir{}, false)
	assert.False(t, ok)
}

func TestKeyEnvVars(t *testing.T) {
	assert.Contains(t, llmconfig.KeyEnvVars, llmconfig.KeyEnvVar)
}
