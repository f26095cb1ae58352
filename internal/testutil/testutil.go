// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// UnreachableAddr refuses TCP connections immediately on any host.
const UnreachableAddr = "127.0.0.1:1"

// SetupTestConfig writes a config file whose MySQL and Redis addresses refuse
// connections, so commands fail fast after configuration succeeds.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	return writeConfig(t, tmpDir, fmt.Sprintf(`server:
  port: 18080
database:
  host: 127.0.0.1
  port: 1
  database: learnio_test
  username: learnio
redis:
  addr: %s
reminder:
  enabled: false
`, UnreachableAddr))
}

// SetupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func SetupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	return writeConfig(t, t.TempDir(), "{{invalid yaml content")
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	cfgPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}
