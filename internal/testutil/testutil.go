// Package testutil provides shared test helpers for creating config and seed files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

// SetupTestConfig creates a config file pointing the client at baseURL with a seed file next to it.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	seedPath := CreateSeedFile(t, tmpDir, []dictionary.Entry{
		{Word: "book", Definition: "a written work"},
	})

	configContent := fmt.Sprintf(`server:
  host: 127.0.0.1
  port: 0
dictionary:
  seed_file: %s
client:
  base_url: %s
  api: partner
  retry_attempts: 0
  timeout_seconds: 5
`,
		seedPath,
		baseURL,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CreateSeedFile writes entries as a YAML seed file in dir and returns its path.
func CreateSeedFile(t *testing.T, dir string, entries []dictionary.Entry) string {
	t.Helper()

	content, err := yaml.Marshal(entries)
	require.NoError(t, err)

	seedPath := filepath.Join(dir, "seed.yml")
	require.NoError(t, os.WriteFile(seedPath, content, 0644))
	return seedPath
}
