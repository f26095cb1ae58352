package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnio/learnio/internal/config"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)

	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.WithEnvFile("").Load()
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Database.Host)
	assert.Equal(t, 1, cfg.Database.Port)
	assert.Equal(t, UnreachableAddr, cfg.Redis.Addr)
	assert.False(t, cfg.Reminder.Enabled)
}

func TestSetupBrokenConfigFile(t *testing.T) {
	got := SetupBrokenConfigFile(t)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "{{invalid yaml content", string(content))

	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	_, err = loader.WithEnvFile("").Load()
	assert.Error(t, err)
}
