package database

import (
	"path/filepath"
	"testing"

	"github.com/localnerve/octofit-tracker/internal/config"
	"github.com/localnerve/octofit-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectorSelection(t *testing.T) {
	cases := map[string]string{
		"mysql":       "mysql",
		"mariadb":     "mysql",
		"postgres":    "postgres",
		"postgresql":  "postgres",
		"sqlite":      "sqlite",
		"sqlite-pure": "sqlite",
		"sqlserver":   "sqlserver",
		"mssql":       "sqlserver",
	}

	for dbType, name := range cases {
		t.Run(dbType, func(t *testing.T) {
			d, err := Dialector(&config.Config{DBType: dbType, DBDatabase: "octofit", DBHost: "localhost", DBPort: "1"})
			require.NoError(t, err)
			assert.Equal(t, name, d.Name())
		})
	}

	_, err := Dialector(&config.Config{DBType: "oracle"})
	assert.ErrorContains(t, err, "unsupported database type")
}

func TestConnectAndMigrateSQLiteFile(t *testing.T) {
	cfg := &config.Config{
		DBType:            "sqlite-pure",
		DBDatabase:        filepath.Join(t.TempDir(), "octofit.db"),
		DBConnectionLimit: 5,
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"users", "teams", "team_members", "activities", "leaderboard", "workouts"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	assert.True(t, db.Migrator().HasIndex(&models.User{}, "idx_users_email"))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestWithQuery(t *testing.T) {
	assert.Equal(t, "a.db?x=1", withQuery("a.db", "x=1"))
	assert.Equal(t, "file::memory:?cache=shared&x=1", withQuery("file::memory:?cache=shared", "x=1"))
}
