package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/localnerve/octofit-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flag values live in package vars and survive between Execute calls
func resetFlags() {
	envFilename, fixturePath, migrate, jsonOutput = "", "", true, false
}

func TestPopulateTwice(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite-pure")
	t.Setenv("DB_DATABASE", filepath.Join(t.TempDir(), "octofit.db"))
	t.Setenv("LOG_LEVEL", "error")

	for range 2 {
		resetFlags()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"--json"})
		require.NoError(t, rootCmd.Execute())

		var counts services.Counts
		require.NoError(t, json.Unmarshal(out.Bytes(), &counts))
		assert.Equal(t, services.Counts{Users: 6, Teams: 2, Activities: 6, Leaderboard: 6, Workouts: 3}, counts)
	}
}

func TestPopulateFromFixtureFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_TYPE", "sqlite-pure")
	t.Setenv("DB_DATABASE", filepath.Join(dir, "octofit.db"))
	t.Setenv("LOG_LEVEL", "error")

	fixture := filepath.Join(dir, "fixture.json")
	require.NoError(t, os.WriteFile(fixture, []byte(`{
		"users": [{"username": "Flash", "email": "flash@dc.com", "password": "x"}],
		"workouts": [{"name": "Sprint", "description": "Go fast", "exercises": ["Sprint"]}]
	}`), 0o600))

	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--fixture", fixture})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Users: 1")
	assert.Contains(t, out.String(), "Workouts: 1")
}
