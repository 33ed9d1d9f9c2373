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

func TestActivityRequiresExistingUser(t *testing.T) {
	db := testutil.NewTestDB(t)

	err := services.CreateActivity(db, &models.Activity{
		UserID: 12, ActivityType: "Running", Duration: 30, Date: models.NewDate(2025, 2, 20),
	})
	assert.ErrorIs(t, err, types.ErrForeignKey)
	assert.Zero(t, testutil.CountRows(t, db, "activities"))
}

func TestActivityRejectsNegativeDuration(t *testing.T) {
	db := testutil.NewTestDB(t)
	u := testutil.CreateUser(t, db, "Hulk", "hulk@marvel.com")

	err := services.CreateActivity(db, &models.Activity{
		UserID: u.ID, ActivityType: "Smashing", Duration: -1, Date: models.NewDate(2025, 2, 20),
	})
	assert.ErrorIs(t, err, types.ErrValidation)

	zero := models.Activity{UserID: u.ID, ActivityType: "Resting", Duration: 0, Date: models.NewDate(2025, 2, 20)}
	require.NoError(t, services.CreateActivity(db, &zero))

	got, err := services.GetActivity(db, zero.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-20", got.DateString())
	assert.Equal(t, u.ID, got.UserID)
}

func TestUpdateActivity(t *testing.T) {
	db := testutil.NewTestDB(t)
	u := testutil.CreateUser(t, db, "Hulk", "hulk@marvel.com")
	a := models.Activity{UserID: u.ID, ActivityType: "Running", Duration: 30, Date: models.NewDate(2025, 2, 20)}
	require.NoError(t, services.CreateActivity(db, &a))

	minutes := 45.5
	got, err := services.UpdateActivity(db, a.ID, services.ActivityPatch{Duration: &minutes})
	require.NoError(t, err)
	assert.Equal(t, 45.5, got.Duration)

	negative := -3.0
	_, err = services.UpdateActivity(db, a.ID, services.ActivityPatch{Duration: &negative})
	assert.ErrorIs(t, err, types.ErrValidation)

	missing := uint64(404)
	_, err = services.UpdateActivity(db, a.ID, services.ActivityPatch{UserID: &missing})
	assert.ErrorIs(t, err, types.ErrForeignKey)

	require.NoError(t, services.DeleteActivity(db, a.ID))
	assert.ErrorIs(t, services.DeleteActivity(db, a.ID), types.ErrNotFound)
}

func TestLeaderboardEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	u := testutil.CreateUser(t, db, "Thor", "thor@marvel.com")

	err := services.CreateLeaderboardEntry(db, &models.Leaderboard{UserID: 31, Score: 10})
	assert.ErrorIs(t, err, types.ErrForeignKey)

	entry := models.Leaderboard{UserID: u.ID}
	require.NoError(t, services.CreateLeaderboardEntry(db, &entry))

	got, err := services.GetLeaderboardEntry(db, entry.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Score)

	score := int64(990)
	got, err = services.UpdateLeaderboardEntry(db, entry.ID, services.LeaderboardPatch{Score: &score})
	require.NoError(t, err)
	assert.Equal(t, int64(990), got.Score)

	n, err := services.DeleteAllLeaderboard(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestWorkoutExercisesRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)

	w := models.Workout{
		Name:        "Hero Core",
		Description: "Core work",
		Exercises:   models.Exercises{models.SetsReps("Crunches", 3, 20), models.NamedExercise("Plank"), models.Timed("Hollow Hold", 3, 45)},
	}
	require.NoError(t, services.CreateWorkout(db, &w))

	got, err := services.GetWorkout(db, w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.Exercises, got.Exercises)

	empty := models.Workout{Name: "Rest Day"}
	require.NoError(t, services.CreateWorkout(db, &empty))
	got, err = services.GetWorkout(db, empty.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Exercises)
	assert.Empty(t, got.Exercises)

	replacement := models.Exercises{models.NamedExercise("Stretch")}
	got, err = services.UpdateWorkout(db, w.ID, services.WorkoutPatch{Exercises: &replacement})
	require.NoError(t, err)
	assert.Equal(t, replacement, got.Exercises)

	require.NoError(t, services.DeleteWorkout(db, w.ID))
	_, err = services.GetWorkout(db, w.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
