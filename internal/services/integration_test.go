package services_test

import (
	"testing"

	"github.com/localnerve/octofit-tracker/internal/models"
	"github.com/localnerve/octofit-tracker/internal/services"
	"github.com/localnerve/octofit-tracker/internal/testutil"
	"github.com/localnerve/octofit-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWithServers runs the fixture load and the constraint checks against real database servers
func TestWithServers(t *testing.T) {
	for _, dbType := range []string{"mariadb", "postgres"} {
		t.Run(dbType, func(t *testing.T) {
			db, cfg := testutil.NewContainerDB(t, dbType)

			counts, err := services.Reset(db)
			require.NoError(t, err)
			assert.Equal(t, heroCounts, counts)

			// second run must leave the same data
			counts, err = services.Reset(db)
			require.NoError(t, err)
			assert.Equal(t, heroCounts, counts)

			dup := models.User{Username: "Thor", Email: "thor@marvel.com", Password: "x"}
			assert.ErrorIs(t, services.CreateUser(db, &dup), types.ErrDuplicate)

			err = db.Omit("User").Create(&models.Activity{UserID: 9999, ActivityType: "Flying", Duration: 10, Date: models.NewDate(2025, 2, 20)}).Error
			assert.Error(t, err, "database must enforce the activity user reference")

			workouts, err := services.ListWorkouts(db)
			require.NoError(t, err)
			require.Len(t, workouts, 3)
			assert.NotEmpty(t, workouts[0].Exercises)

			result := services.HealthCheck(cfg, db)
			assert.True(t, result.Healthy(), result.ErrorMessage)
			assert.Equal(t, "ok", result.DatabaseHost)
		})
	}
}
