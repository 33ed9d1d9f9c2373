package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/octofit-tracker/internal/models"
	"github.com/localnerve/octofit-tracker/internal/services"
	"github.com/localnerve/octofit-tracker/internal/types"
)

// ActivityRequest is the body of POST /activities
type ActivityRequest struct {
	User         types.FlexUint64 `json:"user" validate:"required"`
	ActivityType string           `json:"activity_type" validate:"required,notblank,max=100"`
	Duration     *float64         `json:"duration" validate:"required,gte=0"`
	Date         string           `json:"date" validate:"required,datetime=2006-01-02"`
}

// ActivityResponse is the wire form of an activity; duration is in minutes
type ActivityResponse struct {
	ID           uint64  `json:"id"`
	User         uint64  `json:"user"`
	ActivityType string  `json:"activity_type"`
	Duration     float64 `json:"duration"`
	Date         string  `json:"date"`
}

func toActivityResponse(a models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID,
		User:         a.UserID,
		ActivityType: a.ActivityType,
		Duration:     a.Duration,
		Date:         a.DateString(),
	}
}

// ListActivities handles GET /activities
// @Summary List activities
// @Tags Activities
// @Produce json
// @Success 200 {array} ActivityResponse
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /activities/ [get]
func (h *Handler) ListActivities(c *fiber.Ctx) error {
	activities, err := services.ListActivities(h.DB)
	if err != nil {
		return fail(c, "listActivities", err)
	}
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// GetActivity handles GET /activities/:id
// @Summary Get an activity
// @Tags Activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /activities/{id}/ [get]
func (h *Handler) GetActivity(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, "getActivity", err)
	}
	activity, err := services.GetActivity(h.DB, id)
	if err != nil {
		return fail(c, "getActivity", err)
	}
	return c.Status(fiber.StatusOK).JSON(toActivityResponse(*activity))
}

// CreateActivity handles POST /activities
// @Summary Log an activity
// @Description The user must exist and duration must not be negative
// @Tags Activities
// @Accept json
// @Produce json
// @Param body body ActivityRequest true "Activity"
// @Success 201 {object} ActivityResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /activities/ [post]
func (h *Handler) CreateActivity(c *fiber.Ctx) error {
	var req ActivityRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, "createActivity", err)
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return fail(c, "createActivity", types.Validation("date must be a date formatted as YYYY-MM-DD"))
	}

	activity := models.Activity{
		UserID:       req.User.Uint64(),
		ActivityType: req.ActivityType,
		Duration:     *req.Duration,
		Date:         date,
	}
	if err := services.CreateActivity(h.DB, &activity); err != nil {
		return fail(c, "createActivity", err)
	}
	return c.Status(fiber.StatusCreated).JSON(toActivityResponse(activity))
}
