package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_TYPE", "")
	t.Setenv("DB_DATABASE", "octofit.db")
	t.Setenv("PORT", "")
	t.Setenv("SEED_ON_START", "")
	t.Setenv("DB_CONNECTION_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.False(t, cfg.SeedOnStart)
}

func TestLoadRequiresDatabase(t *testing.T) {
	t.Setenv("DB_DATABASE", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_DATABASE")
}

func TestLoadRequiresUserForServerDatabases(t *testing.T) {
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_DATABASE", "octofit")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PORT", "")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_USER")

	t.Setenv("DB_USER", "octofit")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5432", cfg.DBPort)
}

func TestLoadParsesFlags(t *testing.T) {
	t.Setenv("DB_DATABASE", "octofit.db")
	t.Setenv("SEED_ON_START", "true")
	t.Setenv("DB_CONNECTION_LIMIT", "not-a-number")
	t.Setenv("BASE_URL", "http://localhost:8000/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("OCTOFIT_TEST_ENV_VALUE=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("OCTOFIT_TEST_ENV_VALUE") })

	require.NoError(t, LoadEnvFile(envFile))
	assert.Equal(t, "loaded", os.Getenv("OCTOFIT_TEST_ENV_VALUE"))

	assert.Error(t, LoadEnvFile(filepath.Join(dir, "missing.env")))
}
