package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.AppPort)
	assert.Equal(t, TransportREST, cfg.Transport)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, 20, cfg.PollMaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.WaitTimeout)
	assert.Equal(t, ".env.local", cfg.EnvOverrideFile)
	assert.Equal(t, "*", cfg.CORSAllowedOrigins)
}

func TestLoadEnvFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	content := "DATABRICKS_GENIE_SPACE_ID=space-from-file\nGENIE_TRANSPORT=SDK\nGENIE_POLL_INTERVAL=250ms\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	t.Setenv("GENIE_POLL_MAX_ATTEMPTS", "7")
	t.Setenv("DATABRICKS_HOST", "adb-1.azuredatabricks.net")

	cfg, err := load(dir)
	require.NoError(t, err)

	assert.Equal(t, "space-from-file", cfg.GenieSpaceID)
	assert.Equal(t, TransportSDK, cfg.Transport, "transport is normalized to lower case")
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 7, cfg.PollMaxAttempts)
	assert.Equal(t, "adb-1.azuredatabricks.net", cfg.DatabricksHost)
}

func TestLoadEnvironmentWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABRICKS_GENIE_SPACE_ID=from-file\n"), 0o600))
	t.Setenv("DATABRICKS_GENIE_SPACE_ID", "from-env")

	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.GenieSpaceID)
}

func TestReadEnvFile(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		values, err := ReadEnvFile(filepath.Join(t.TempDir(), ".env.local"))
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("Keys are upper-cased", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env.local")
		require.NoError(t, os.WriteFile(path, []byte("# local\nDATABRICKS_TOKEN=dapi-local\n"), 0o600))

		values, err := ReadEnvFile(path)
		require.NoError(t, err)
		assert.Equal(t, "dapi-local", values["DATABRICKS_TOKEN"])
	})
}

func TestLoadOverrideFile(t *testing.T) {
	t.Run("Override file wins over .env", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABRICKS_GENIE_SPACE_ID=space-shared\nGENIE_TRANSPORT=rest\n"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("DATABRICKS_GENIE_SPACE_ID=space-local\nGENIE_TRANSPORT=mock\nGENIE_POLL_MAX_ATTEMPTS=4\n"), 0o600))

		cfg, err := load(dir)
		require.NoError(t, err)

		assert.Equal(t, "space-local", cfg.GenieSpaceID)
		assert.Equal(t, TransportMock, cfg.Transport)
		assert.Equal(t, 4, cfg.PollMaxAttempts)
	})

	t.Run("Only override file present", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("DATABRICKS_GENIE_SPACE_ID=space-local\n"), 0o600))

		cfg, err := load(dir)
		require.NoError(t, err)
		assert.Equal(t, "space-local", cfg.GenieSpaceID)
	})

	t.Run("Environment wins over override file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("DATABRICKS_GENIE_SPACE_ID=space-local\n"), 0o600))
		t.Setenv("DATABRICKS_GENIE_SPACE_ID", "space-env")

		cfg, err := load(dir)
		require.NoError(t, err)
		assert.Equal(t, "space-env", cfg.GenieSpaceID)
	})

	t.Run("Custom override path", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "team.env"), []byte("DATABRICKS_GENIE_SPACE_ID=space-team\n"), 0o600))
		t.Setenv("GENIE_ENV_OVERRIDE_FILE", "team.env")

		cfg, err := load(dir)
		require.NoError(t, err)
		assert.Equal(t, "space-team", cfg.GenieSpaceID)
	})
}

func TestLoadRejectsNonPositivePolling(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"GENIE_POLL_MAX_ATTEMPTS", "0", "GENIE_POLL_MAX_ATTEMPTS"},
		{"GENIE_POLL_MAX_ATTEMPTS", "-3", "GENIE_POLL_MAX_ATTEMPTS"},
		{"GENIE_POLL_INTERVAL", "0s", "GENIE_POLL_INTERVAL"},
		{"GENIE_POLL_INTERVAL", "-1s", "GENIE_POLL_INTERVAL"},
		{"GENIE_WAIT_TIMEOUT", "0s", "GENIE_WAIT_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := load(t.TempDir())
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
