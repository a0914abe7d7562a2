package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("PDBKIT_CONFIG_DIR", t.TempDir())
	configStore = nil
	t.Cleanup(func() { configStore = nil })
}

func TestConfigCmd_SetThenGet(t *testing.T) {
	setupTestConfig(t)

	_, _, err := execute("config", "set", "split.window", "11")
	require.NoError(t, err)

	out, _, err := execute("config", "get", "split.window")
	require.NoError(t, err)
	assert.Contains(t, out, "11")
}

func TestConfigCmd_GetUnsetKey(t *testing.T) {
	setupTestConfig(t)

	out, _, err := execute("config", "get", "split.window")

	require.NoError(t, err)
	assert.Contains(t, out, "(not set)")
}

func TestConfigCmd_SetStringValue(t *testing.T) {
	setupTestConfig(t)

	_, _, err := execute("config", "set", "split.pattern", "*.ent")
	require.NoError(t, err)

	out, _, err := execute("config", "get", "split.pattern")
	require.NoError(t, err)
	assert.Contains(t, out, "*.ent")
}

func TestConfigCmd_Path(t *testing.T) {
	setupTestConfig(t)

	out, _, err := execute("config", "path")

	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")
}

func TestSettings_UsesConfigValues(t *testing.T) {
	setupTestConfig(t)

	_, _, err := execute("config", "set", "split.window", "12")
	require.NoError(t, err)
	_, _, err = execute("config", "set", "workers", "3")
	require.NoError(t, err)

	s := settings()

	assert.Equal(t, 12, s.WindowSize)
	assert.Equal(t, 3, s.Workers)
}
