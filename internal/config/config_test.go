package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG directory at a fresh temp dir
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	for _, key := range []string{"VNCARDS_ASSETS_DIR", "VNCARDS_MAX_HANDS", "VNCARDS_INITIAL_PRICE_LIMIT", "VNCARDS_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return root
}

func TestPaths(t *testing.T) {
	root := isolate(t)

	assert.Equal(t, filepath.Join(root, "config", "vncards", "config.toml"), GetConfigFilePath())
	assert.Equal(t, filepath.Join(root, "data", "vncards", "assets"), GetAssetsPath())
	assert.Equal(t, filepath.Join(root, "cache", "vncards"), GetCacheDir())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	root := isolate(t)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.Equal(t, filepath.Join(root, "data", "vncards", "assets"), config.AssetsDir)
	assert.Equal(t, 5, config.MaxHands)
	assert.Equal(t, uint16(30), config.InitialPriceLimit)

	data, err := os.ReadFile(GetConfigFilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_hands = 5")
}

func TestSaveAndLoadConfig(t *testing.T) {
	isolate(t)

	config := Default()
	config.MaxHands = 8
	config.LogLevel = "debug"
	require.NoError(t, SaveConfig(config))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)

	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("max_hands = 3\n"), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, config.MaxHands)
	assert.Equal(t, "info", config.LogLevel)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("VNCARDS_MAX_HANDS", "9")
	t.Setenv("VNCARDS_ASSETS_DIR", "/srv/assets")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9, config.MaxHands)
	assert.Equal(t, "/srv/assets", config.AssetsDir)
}

func TestLoadConfigEnvError(t *testing.T) {
	isolate(t)
	t.Setenv("VNCARDS_MAX_HANDS", "many")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestLoadConfigBadFile(t *testing.T) {
	isolate(t)

	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("max_hands = [\n"), 0644))

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "error decoding config file")
}

func TestGetAssetsDir(t *testing.T) {
	root := isolate(t)

	dir, err := GetAssetsDir(root)
	require.NoError(t, err)
	assert.Equal(t, root, dir)

	_, err = GetAssetsDir(filepath.Join(root, "missing"))
	assert.Error(t, err)

	dir, err = GetAssetsDir("")
	require.NoError(t, err)
	assert.Equal(t, GetAssetsPath(), dir)
}
