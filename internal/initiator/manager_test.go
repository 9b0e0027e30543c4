package initiator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MrSnakeDoc/urlb/internal/globalconfig"
	"github.com/MrSnakeDoc/urlb/internal/logger"
	"github.com/MrSnakeDoc/urlb/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiator_CreatesSampleAndConfig(t *testing.T) {
	logger.UseTestMode()
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := filepath.Join(home, "project")

	path, err := New(work, false).Execute()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(work, manifest.DefaultFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, manifest.Sample, string(data))

	cfg, err := globalconfig.LoadPersistentConfig()
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ManifestFile)
}

func TestInitiator_KeepsExistingUnlessForced(t *testing.T) {
	logger.UseTestMode()
	home := t.TempDir()
	t.Setenv("HOME", home)

	custom := "endpoints:\n  - {name: mine, route: /r, endpoint: /e}\n"
	path := filepath.Join(home, manifest.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	_, err := New(home, false).Execute()
	require.NoError(t, err)
	data, _ := os.ReadFile(path)
	assert.Equal(t, custom, string(data))

	_, err = New(home, true).Execute()
	require.NoError(t, err)
	data, _ = os.ReadFile(path)
	assert.Equal(t, manifest.Sample, string(data))
}

func TestInitiator_RejectsBrokenExistingManifest(t *testing.T) {
	logger.UseTestMode()
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, manifest.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("endpoints: [{route: /x}]\n"), 0o644))

	_, err := New(home, false).Execute()
	assert.ErrorIs(t, err, manifest.ErrNoName)
}
