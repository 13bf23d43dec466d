//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang-netshare/internal/adapter/infrastructure/shell"
	"golang-netshare/internal/pkg/logging"
	"golang-netshare/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("ValidConfig", func(t *testing.T) {
		configContent := `logging:
  level: debug
  format: compact
  output: stdout

profile: windows11

shell:
  path: cmd.exe
  args: ["/C"]
  timeout: 30s

report:
  color: false
`
		configFile := filepath.Join(tempDir, "valid.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		config, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Equal(t, "compact", config.Logging.Format)
		assert.Equal(t, "stdout", config.Logging.Output)
		assert.Equal(t, "windows11", config.Profile)
		assert.Equal(t, "cmd.exe", config.Shell.Path)
		assert.Equal(t, []string{"/C"}, config.Shell.Args)
		assert.Equal(t, 30*time.Second, config.Shell.Timeout)
		assert.False(t, config.Report.Color)
	})

	t.Run("PartialConfigKeepsDefaults", func(t *testing.T) {
		configContent := `profile: windows10
`
		configFile := filepath.Join(tempDir, "partial.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		config, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "windows10", config.Profile)
		assert.Equal(t, "warn", config.Logging.Level)
		assert.Equal(t, shell.DefaultConfig(), config.Shell)
		assert.True(t, config.Report.Color)
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		configContent := `invalid: yaml: content: [
`
		configFile := filepath.Join(tempDir, "invalid.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		_, err = Load(configFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	t.Run("ExplicitProfile", func(t *testing.T) {
		config := Default()
		config.Profile = "Windows 10"
		assert.NoError(t, config.Validate())
	})

	t.Run("UnsupportedProfile", func(t *testing.T) {
		config := Default()
		config.Profile = "windows7"

		err := config.Validate()
		assert.Error(t, err)
		assert.ErrorIs(t, err, types.ErrUnsupportedProfile)
	})

	t.Run("MissingShellPath", func(t *testing.T) {
		config := &Config{
			Logging: logging.LogConfig{},
			Profile: "auto",
			Shell:   shell.Config{Path: " "},
		}

		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "shell: path is required")
	})

	t.Run("NegativeTimeout", func(t *testing.T) {
		config := Default()
		config.Shell.Timeout = -time.Second

		err := config.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "timeout must not be negative")
	})
}

func TestConfig_ProfileSelector(t *testing.T) {
	config := Default()
	config.Profile = ""
	assert.Equal(t, "auto", config.ProfileSelector())

	config.Profile = "windows11"
	assert.Equal(t, "windows11", config.ProfileSelector())
}
