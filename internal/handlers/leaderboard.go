package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/octofit-tracker/internal/models"
	"github.com/localnerve/octofit-tracker/internal/services"
	"github.com/localnerve/octofit-tracker/internal/types"
)

// LeaderboardRequest is the body of POST /leaderboard; score defaults to 0
type LeaderboardRequest struct {
	User  types.FlexUint64 `json:"user" validate:"required"`
	Score *int64           `json:"score"`
}

// LeaderboardResponse is the wire form of a leaderboard entry
type LeaderboardResponse struct {
	ID    uint64 `json:"id"`
	User  uint64 `json:"user"`
	Score int64  `json:"score"`
}

func toLeaderboardResponse(l models.Leaderboard) LeaderboardResponse {
	return LeaderboardResponse{ID: l.ID, User: l.UserID, Score: l.Score}
}

// ListLeaderboard handles GET /leaderboard
// @Summary List leaderboard entries
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} LeaderboardResponse
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /leaderboard/ [get]
func (h *Handler) ListLeaderboard(c *fiber.Ctx) error {
	entries, err := services.ListLeaderboard(h.DB)
	if err != nil {
		return fail(c, "listLeaderboard", err)
	}
	out := make([]LeaderboardResponse, 0, len(entries))
	for _, l := range entries {
		out = append(out, toLeaderboardResponse(l))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// GetLeaderboardEntry handles GET /leaderboard/:id
// @Summary Get a leaderboard entry
// @Tags Leaderboard
// @Produce json
// @Param id path int true "Leaderboard entry ID"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /leaderboard/{id}/ [get]
func (h *Handler) GetLeaderboardEntry(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, "getLeaderboardEntry", err)
	}
	entry, err := services.GetLeaderboardEntry(h.DB, id)
	if err != nil {
		return fail(c, "getLeaderboardEntry", err)
	}
	return c.Status(fiber.StatusOK).JSON(toLeaderboardResponse(*entry))
}

// CreateLeaderboardEntry handles POST /leaderboard
// @Summary Record a score
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param body body LeaderboardRequest true "Leaderboard entry"
// @Success 201 {object} LeaderboardResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /leaderboard/ [post]
func (h *Handler) CreateLeaderboardEntry(c *fiber.Ctx) error {
	var req LeaderboardRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, "createLeaderboardEntry", err)
	}

	entry := models.Leaderboard{UserID: req.User.Uint64()}
	if req.Score != nil {
		entry.Score = *req.Score
	}
	if err := services.CreateLeaderboardEntry(h.DB, &entry); err != nil {
		return fail(c, "createLeaderboardEntry", err)
	}
	return c.Status(fiber.StatusCreated).JSON(toLeaderboardResponse(entry))
}
