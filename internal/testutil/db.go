// Package testutil holds shared fixtures for package tests and the dev container command.
package testutil

import (
	"testing"

	glebarez "github.com/glebarez/sqlite"
	"github.com/localnerve/octofit-tracker/internal/database"
	"github.com/localnerve/octofit-tracker/internal/models"
	"gorm.io/gorm"
)

// NewTestDB opens a private in-memory SQLite database with the schema migrated.
// The database lives on a single connection and is closed when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(glebarez.Open("file::memory:?_pragma=foreign_keys(1)"), false)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// CreateUser inserts a user directly, bypassing the store checks
func CreateUser(t *testing.T, db *gorm.DB, username, email string) models.User {
	t.Helper()
	user := models.User{Username: username, Email: email, Password: "secret"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

// CreateTeam inserts a team with the given members
func CreateTeam(t *testing.T, db *gorm.DB, name string, members ...models.User) models.Team {
	t.Helper()
	team := models.Team{Name: name, Members: members}
	if err := db.Create(&team).Error; err != nil {
		t.Fatalf("Failed to create team %s: %v", name, err)
	}
	return team
}

// CountRows returns the row count of a table
func CountRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
