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

func TestCreateTeamWithMembers(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "Superman", "superman@dc.com")
	b := testutil.CreateUser(t, db, "Batman", "batman@dc.com")

	team := models.Team{Name: "Team DC"}
	require.NoError(t, services.CreateTeam(db, &team, []uint64{b.ID, a.ID, b.ID}))

	got, err := services.GetTeam(db, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Team DC", got.Name)
	assert.Equal(t, []uint64{a.ID, b.ID}, got.MemberIDs())
}

func TestCreateTeamWithoutMembers(t *testing.T) {
	db := testutil.NewTestDB(t)

	team := models.Team{Name: "Solo"}
	require.NoError(t, services.CreateTeam(db, &team, nil))

	got, err := services.GetTeam(db, team.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Members)
}

func TestCreateTeamUnknownMemberWritesNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "Superman", "superman@dc.com")

	team := models.Team{Name: "Team DC"}
	err := services.CreateTeam(db, &team, []uint64{a.ID, 77})
	assert.ErrorIs(t, err, types.ErrForeignKey)
	assert.Contains(t, err.Error(), "77")

	assert.Zero(t, testutil.CountRows(t, db, "teams"))
	assert.Zero(t, testutil.CountRows(t, db, "team_members"))
}

func TestSetMembersIsAtomic(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "Superman", "superman@dc.com")
	b := testutil.CreateUser(t, db, "Batman", "batman@dc.com")
	team := testutil.CreateTeam(t, db, "Team DC", a)

	_, err := services.SetMembers(db, team.ID, []uint64{b.ID, 500})
	assert.ErrorIs(t, err, types.ErrForeignKey)

	got, err := services.GetTeam(db, team.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a.ID}, got.MemberIDs())

	got, err = services.SetMembers(db, team.ID, []uint64{b.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint64{b.ID}, got.MemberIDs())

	got, err = services.SetMembers(db, team.ID, []uint64{})
	require.NoError(t, err)
	assert.Empty(t, got.Members)

	_, err = services.SetMembers(db, 999, []uint64{a.ID})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateAndDeleteTeam(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := testutil.CreateUser(t, db, "Superman", "superman@dc.com")
	team := testutil.CreateTeam(t, db, "Team DC", a)

	name := "Justice League"
	got, err := services.UpdateTeam(db, team.ID, services.TeamPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Justice League", got.Name)
	assert.Equal(t, []uint64{a.ID}, got.MemberIDs())

	blank := "  "
	_, err = services.UpdateTeam(db, team.ID, services.TeamPatch{Name: &blank})
	assert.ErrorIs(t, err, types.ErrValidation)

	require.NoError(t, services.DeleteTeam(db, team.ID))
	assert.Zero(t, testutil.CountRows(t, db, "team_members"))

	_, err = services.GetUser(db, a.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, services.DeleteTeam(db, team.ID), types.ErrNotFound)
}

func TestListTeamsOrdered(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateTeam(t, db, "Team Marvel")
	testutil.CreateTeam(t, db, "Team DC")

	teams, err := services.ListTeams(db)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Team Marvel", teams[0].Name)
	assert.Equal(t, "Team DC", teams[1].Name)
}
