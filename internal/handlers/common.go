// common.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/octofit-tracker/internal/types"
	"github.com/localnerve/octofit-tracker/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler serves the five collections over one database handle
type Handler struct {
	DB *gorm.DB
	// BaseURL overrides the scheme and host used in discovery links
	BaseURL string
}

// Routes mounts the collection routes on r
func (h *Handler) Routes(r fiber.Router) {
	r.Get("/", h.Root)

	r.Get("/users", h.ListUsers)
	r.Post("/users", h.CreateUser)
	r.Get("/users/:id", h.GetUser)

	r.Get("/teams", h.ListTeams)
	r.Post("/teams", h.CreateTeam)
	r.Get("/teams/:id", h.GetTeam)

	r.Get("/activities", h.ListActivities)
	r.Post("/activities", h.CreateActivity)
	r.Get("/activities/:id", h.GetActivity)

	r.Get("/leaderboard", h.ListLeaderboard)
	r.Post("/leaderboard", h.CreateLeaderboardEntry)
	r.Get("/leaderboard/:id", h.GetLeaderboardEntry)

	r.Get("/workouts", h.ListWorkouts)
	r.Post("/workouts", h.CreateWorkout)
	r.Get("/workouts/:id", h.GetWorkout)
}

// pathID parses the :id route parameter
func pathID(c *fiber.Ctx) (uint64, error) {
	return types.ParseID(c.Params("id"))
}

// parseBody decodes and validates a request body
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return types.Validation("Invalid input: %v", err)
	}
	return utils.ValidateStruct(out)
}

// fail renders err and logs anything outside the 4xx taxonomy
func fail(c *fiber.Ctx, op string, err error) error {
	resp := utils.StoreErrorResponse(c, err)
	if c.Response().StatusCode() >= fiber.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"op":         op,
			"url":        c.OriginalURL(),
			"request_id": c.Locals("requestid"),
		}).WithError(err).Error("request failed")
	}
	return resp
}
