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

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)

	first := models.User{Username: "Flash", Email: "flash@dc.com", Password: "speedforce"}
	require.NoError(t, services.CreateUser(db, &first))
	assert.NotZero(t, first.ID)

	second := models.User{Username: "Barry", Email: " flash@dc.com ", Password: "x"}
	err := services.CreateUser(db, &second)
	assert.ErrorIs(t, err, types.ErrDuplicate)

	users, err := services.ListUsers(db)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestEmailUniquenessIgnoresCase(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, "Barry", "barry@jla.com")
	wally := testutil.CreateUser(t, db, "Wally", "wally@jla.com")

	err := services.CreateUser(db, &models.User{Username: "Flash", Email: "BARRY@jla.com", Password: "x"})
	assert.ErrorIs(t, err, types.ErrDuplicate)

	upper := "Barry@JLA.com"
	_, err = services.UpdateUser(db, wally.ID, services.UserPatch{Email: &upper})
	assert.ErrorIs(t, err, types.ErrDuplicate)

	// a user may change the case of its own email
	own := "WALLY@jla.com"
	got, err := services.UpdateUser(db, wally.ID, services.UserPatch{Email: &own})
	require.NoError(t, err)
	assert.Equal(t, "WALLY@jla.com", got.Email)
}

func TestUniqueIndexBacksEmailCheck(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, "Flash", "flash@dc.com")

	err := db.Create(&models.User{Username: "Other", Email: "flash@dc.com", Password: "x"}).Error
	assert.Error(t, err)
}

func TestGetUserNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := services.GetUser(db, 99)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	flash := testutil.CreateUser(t, db, "Flash", "flash@dc.com")
	testutil.CreateUser(t, db, "Batman", "batman@dc.com")

	name := "The Flash"
	updated, err := services.UpdateUser(db, flash.ID, services.UserPatch{Username: &name})
	require.NoError(t, err)
	assert.Equal(t, "The Flash", updated.Username)
	assert.Equal(t, "flash@dc.com", updated.Email)

	taken := "batman@dc.com"
	_, err = services.UpdateUser(db, flash.ID, services.UserPatch{Email: &taken})
	assert.ErrorIs(t, err, types.ErrDuplicate)

	same := "flash@dc.com"
	_, err = services.UpdateUser(db, flash.ID, services.UserPatch{Email: &same})
	assert.NoError(t, err)

	_, err = services.UpdateUser(db, 42, services.UserPatch{Username: &name})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	flash := testutil.CreateUser(t, db, "Flash", "flash@dc.com")
	batman := testutil.CreateUser(t, db, "Batman", "batman@dc.com")
	team := testutil.CreateTeam(t, db, "Team DC", flash, batman)

	require.NoError(t, services.CreateActivity(db, &models.Activity{
		UserID: flash.ID, ActivityType: "Running", Duration: 30, Date: models.NewDate(2025, 2, 20),
	}))
	entry := models.Leaderboard{UserID: flash.ID, Score: 1000}
	require.NoError(t, services.CreateLeaderboardEntry(db, &entry))

	require.NoError(t, services.DeleteUser(db, flash.ID))

	_, err := services.GetLeaderboardEntry(db, entry.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	activities, err := services.ListActivities(db)
	require.NoError(t, err)
	assert.Empty(t, activities)

	got, err := services.GetTeam(db, team.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{batman.ID}, got.MemberIDs())

	assert.ErrorIs(t, services.DeleteUser(db, flash.ID), types.ErrNotFound)
}

func TestDeleteAllUsers(t *testing.T) {
	db := testutil.NewTestDB(t)
	flash := testutil.CreateUser(t, db, "Flash", "flash@dc.com")
	testutil.CreateTeam(t, db, "Team DC", flash)

	n, err := services.DeleteAllUsers(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Zero(t, testutil.CountRows(t, db, "team_members"))
	assert.Equal(t, int64(1), testutil.CountRows(t, db, "teams"))
}
