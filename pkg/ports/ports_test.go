package ports_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openoperator/webui-bridge/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Default(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.Equal(t, 7788, ports.Resolve("webui", 7788))
}

func TestResolve_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WEBUI_PORT", "9001")

	assert.Equal(t, 9001, ports.Resolve("webui", 7788))
}

func TestResolve_EnvNonNumericFallsThrough(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WEBUI_PORT", "not-a-port")

	assert.Equal(t, 7788, ports.Resolve("webui", 7788))
}

func TestResolve_PortFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".webui-port"), []byte("8123\n"), 0o600))

	assert.Equal(t, 8123, ports.Resolve("webui", 7788))
}

func TestResolve_EnvBeatsPortFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".webui-port"), []byte("8123"), 0o600))
	t.Setenv("WEBUI_PORT", "9001")

	assert.Equal(t, 9001, ports.Resolve("webui", 7788))
}

func TestResolve_GarbagePortFileSkipped(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".webui-port"), []byte("???"), 0o600))

	assert.Equal(t, 7788, ports.Resolve("webui", 7788))
}
