// seed.go
//
// OctoFit Tracker data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of octofit-tracker.
// octofit-tracker is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// octofit-tracker is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with octofit-tracker.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"encoding/json"
	"fmt"

	"github.com/localnerve/octofit-tracker/data"
	"github.com/localnerve/octofit-tracker/internal/models"
	"github.com/localnerve/octofit-tracker/internal/types"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Fixture is a demo dataset. Teams, activities and leaderboard entries refer to users by username.
type Fixture struct {
	Users []struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"users"`
	Teams []struct {
		Name    string   `json:"name"`
		Members []string `json:"members"`
	} `json:"teams"`
	Activities []struct {
		User         string  `json:"user"`
		ActivityType string  `json:"activity_type"`
		Duration     float64 `json:"duration"`
		Date         string  `json:"date"`
	} `json:"activities"`
	Leaderboard []struct {
		User  string `json:"user"`
		Score int64  `json:"score"`
	} `json:"leaderboard"`
	Workouts []struct {
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Exercises   models.Exercises `json:"exercises"`
	} `json:"workouts"`
}

// ParseFixture decodes a fixture document
func ParseFixture(raw []byte) (*Fixture, error) {
	var fx Fixture
	if err := json.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &fx, nil
}

// Reset wipes every collection and loads the superhero dataset
func Reset(db *gorm.DB) (Counts, error) {
	return resetFrom(db, data.Heroes)
}

// resetFrom parses raw and loads it; a parse failure counts as a failed run
func resetFrom(db *gorm.DB, raw []byte) (Counts, error) {
	fx, err := ParseFixture(raw)
	if err != nil {
		err = seedError("parse fixture", err)
		recordSeed(Counts{}, err)
		return Counts{}, err
	}
	return ResetWith(db, fx)
}

// ResetWith wipes every collection and loads fx.
//
// The run is not one transaction. Each step commits on its own and the first
// failure stops the run with a SeedError, leaving whatever was already written.
func ResetWith(db *gorm.DB, fx *Fixture) (counts Counts, err error) {
	log := logrus.WithField("component", "fixtures")
	defer func() { recordSeed(counts, err) }()

	log.Info("Clearing existing data...")
	wipes := []struct {
		step string
		fn   func(*gorm.DB) (int64, error)
	}{
		// children before parents; workouts stand alone
		{"clear leaderboard", DeleteAllLeaderboard},
		{"clear activities", DeleteAllActivities},
		{"clear teams", DeleteAllTeams},
		{"clear users", DeleteAllUsers},
		{"clear workouts", DeleteAllWorkouts},
	}
	for _, w := range wipes {
		n, err := w.fn(db)
		if err != nil {
			return Counts{}, seedError(w.step, err)
		}
		log.WithFields(logrus.Fields{"step": w.step, "rows": n}).Debug("cleared")
	}

	log.Info("Creating users...")
	users := make(map[string]uint64, len(fx.Users))
	for _, u := range fx.Users {
		user := models.User{Username: u.Username, Email: u.Email, Password: u.Password}
		if err := CreateUser(db, &user); err != nil {
			return Counts{}, seedError("create user "+u.Username, err)
		}
		users[u.Username] = user.ID
	}

	lookup := func(username string) (uint64, error) {
		id, ok := users[username]
		if !ok {
			return 0, fmt.Errorf("unknown fixture user %q", username)
		}
		return id, nil
	}

	log.Info("Creating teams...")
	for _, t := range fx.Teams {
		ids := make([]uint64, 0, len(t.Members))
		for _, name := range t.Members {
			id, err := lookup(name)
			if err != nil {
				return Counts{}, seedError("create team "+t.Name, err)
			}
			ids = append(ids, id)
		}
		team := models.Team{Name: t.Name}
		if err := CreateTeam(db, &team, ids); err != nil {
			return Counts{}, seedError("create team "+t.Name, err)
		}
	}

	log.Info("Creating activities...")
	for _, a := range fx.Activities {
		step := fmt.Sprintf("create activity %s for %s", a.ActivityType, a.User)
		userID, err := lookup(a.User)
		if err != nil {
			return Counts{}, seedError(step, err)
		}
		date, err := models.ParseDate(a.Date)
		if err != nil {
			return Counts{}, seedError(step, err)
		}
		activity := models.Activity{UserID: userID, ActivityType: a.ActivityType, Duration: a.Duration, Date: date}
		if err := CreateActivity(db, &activity); err != nil {
			return Counts{}, seedError(step, err)
		}
	}

	log.Info("Creating leaderboard entries...")
	for _, l := range fx.Leaderboard {
		step := "create leaderboard entry for " + l.User
		userID, err := lookup(l.User)
		if err != nil {
			return Counts{}, seedError(step, err)
		}
		entry := models.Leaderboard{UserID: userID, Score: l.Score}
		if err := CreateLeaderboardEntry(db, &entry); err != nil {
			return Counts{}, seedError(step, err)
		}
	}

	log.Info("Creating workouts...")
	for _, w := range fx.Workouts {
		workout := models.Workout{Name: w.Name, Description: w.Description, Exercises: w.Exercises}
		if err := CreateWorkout(db, &workout); err != nil {
			return Counts{}, seedError("create workout "+w.Name, err)
		}
	}

	counts, err = CountAll(db)
	if err != nil {
		return Counts{}, seedError("count", err)
	}

	log.WithFields(logrus.Fields{
		"users":       counts.Users,
		"teams":       counts.Teams,
		"activities":  counts.Activities,
		"leaderboard": counts.Leaderboard,
		"workouts":    counts.Workouts,
	}).Info("Successfully populated database with superhero test data")

	return counts, nil
}

func seedError(step string, err error) error {
	logrus.WithFields(logrus.Fields{"component": "fixtures", "step": step}).
		WithError(err).
		Error("Fixture load stopped; store left partially seeded")
	return types.Seed(step, err)
}
