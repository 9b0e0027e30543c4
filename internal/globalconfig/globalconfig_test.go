package globalconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPersistentConfig_Missing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadPersistentConfig()
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestSaveAndLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	manifest := filepath.Join(home, "work", "urlb.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(manifest), 0o755))
	require.NoError(t, os.WriteFile(manifest, []byte("endpoints: []\n"), 0o644))

	cfg := &PersistentConfig{ManifestFile: manifest}
	require.NoError(t, cfg.Save())
	assert.Equal(t, manifest, cfg.ManifestFile, "Save must not mutate the receiver")

	dir, err := GetConfigDir()
	require.NoError(t, err)
	raw, err := os.ReadFile(filepath.Join(dir, configFile))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "~/work/urlb.yml"), "stored path: %s", raw)

	loaded, err := LoadPersistentConfig()
	require.NoError(t, err)
	assert.Equal(t, manifest, loaded.ManifestFile)
}

func TestLoadPersistentConfig_DanglingManifest(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &PersistentConfig{ManifestFile: filepath.Join(home, "gone.yml")}
	require.NoError(t, cfg.Save())

	_, err := LoadPersistentConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
