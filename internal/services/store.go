// store.go
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
	"errors"
	"fmt"
	"strconv"

	"github.com/localnerve/octofit-tracker/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// Kind names one entity collection. The values double as the URL segment and metric label.
type Kind string

const (
	KindUsers       Kind = "users"
	KindTeams       Kind = "teams"
	KindActivities  Kind = "activities"
	KindLeaderboard Kind = "leaderboard"
	KindWorkouts    Kind = "workouts"
)

// Kinds lists every collection in discovery order.
var Kinds = []Kind{KindUsers, KindTeams, KindActivities, KindLeaderboard, KindWorkouts}

// singular names used in error messages
var singular = map[Kind]string{
	KindUsers:       "user",
	KindTeams:       "team",
	KindActivities:  "activity",
	KindLeaderboard: "leaderboard entry",
	KindWorkouts:    "workout",
}

// quiet returns a session that does not log SQL, used for reads
func quiet(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})
}

// tagged labels the generated SELECT so slow query logs show which store read issued it
func tagged(db *gorm.DB, kind Kind, op string) *gorm.DB {
	return db.Clauses(hints.CommentBefore("select", fmt.Sprintf("octofit:%s:%s", kind, op)))
}

func get[T any](db *gorm.DB, kind Kind, id uint64, preloads ...string) (*T, error) {
	var out T
	query := tagged(quiet(db), kind, "get")
	for _, p := range preloads {
		query = query.Preload(p)
	}
	if err := query.First(&out, id).Error; err != nil {
		return nil, translate(err, kind, id)
	}
	return &out, nil
}

func list[T any](db *gorm.DB, kind Kind, preloads ...string) ([]T, error) {
	out := []T{}
	query := tagged(quiet(db), kind, "list")
	for _, p := range preloads {
		query = query.Preload(p)
	}
	if err := query.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func count[T any](db *gorm.DB) (int64, error) {
	var n int64
	err := quiet(db).Model(new(T)).Count(&n).Error
	return n, err
}

func deleteAll[T any](tx *gorm.DB) (int64, error) {
	result := tx.Where("1 = 1").Delete(new(T))
	return result.RowsAffected, result.Error
}

// translate maps GORM and driver errors onto the store error taxonomy
func translate(err error, kind Kind, id uint64) error {
	var custom *types.CustomError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &custom):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return types.NotFound("%s %d not found", singular[kind], id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return types.Duplicate("%s violates a unique constraint", singular[kind])
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return types.ForeignKey("%s references a missing record", singular[kind])
	}
	return err
}

// write runs fn in a transaction, translates its error and records the outcome
func write(db *gorm.DB, kind Kind, op string, id uint64, fn func(tx *gorm.DB) error) error {
	err := translate(db.Transaction(fn), kind, id)
	recordWrite(kind, op, err)
	return err
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// requireUser fails with a ForeignKeyError when the user id does not exist
func requireUser(tx *gorm.DB, userID uint64) error {
	if userID == 0 {
		return types.ForeignKey("user is required")
	}
	var n int64
	if err := quiet(tx).Table("users").Where("id = ?", userID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return types.ForeignKey("user %d does not exist", userID)
	}
	return nil
}

// Counts reports the number of rows per collection
type Counts struct {
	Users       int64 `json:"users"`
	Teams       int64 `json:"teams"`
	Activities  int64 `json:"activities"`
	Leaderboard int64 `json:"leaderboard"`
	Workouts    int64 `json:"workouts"`
}

// CountAll counts every collection
func CountAll(db *gorm.DB) (Counts, error) {
	var c Counts
	var err error
	if c.Users, err = countUsers(db); err != nil {
		return c, err
	}
	if c.Teams, err = countTeams(db); err != nil {
		return c, err
	}
	if c.Activities, err = countActivities(db); err != nil {
		return c, err
	}
	if c.Leaderboard, err = countLeaderboard(db); err != nil {
		return c, err
	}
	if c.Workouts, err = countWorkouts(db); err != nil {
		return c, err
	}
	return c, nil
}
