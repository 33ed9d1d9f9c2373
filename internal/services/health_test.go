package services_test

import (
	"testing"

	"github.com/localnerve/octofit-tracker/internal/config"
	"github.com/localnerve/octofit-tracker/internal/database"
	"github.com/localnerve/octofit-tracker/internal/services"
	"github.com/localnerve/octofit-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckSQLite(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, err := services.Reset(db)
	require.NoError(t, err)

	cfg := &config.Config{DBType: "sqlite-pure", DBDatabase: ":memory:"}
	result := services.HealthCheck(cfg, db)

	assert.True(t, result.Healthy(), result.ErrorMessage)
	assert.Equal(t, "ok", result.Database)
	assert.Empty(t, result.DatabaseHost)
	require.NotNil(t, result.Counts)
	assert.Equal(t, int64(6), result.Counts.Users)
}

func TestHealthCheckClosedDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, database.Close(db))

	cfg := &config.Config{DBType: "sqlite-pure", DBDatabase: ":memory:"}
	result := services.HealthCheck(cfg, db)

	assert.False(t, result.Healthy())
	assert.Equal(t, "unreachable", result.Database)
	assert.NotEmpty(t, result.ErrorMessage)
}

func TestHealthCheckUnreachableHost(t *testing.T) {
	db := testutil.NewTestDB(t)

	cfg := &config.Config{DBType: "mariadb", DBHost: "127.0.0.1", DBPort: "1", DBDatabase: "octofit_db"}
	result := services.HealthCheck(cfg, db)

	assert.False(t, result.Healthy())
	assert.Equal(t, "unreachable", result.DatabaseHost)
	assert.Contains(t, result.Details, "database_host_error")
}
