package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/octofit-tracker/internal/models"
	"github.com/localnerve/octofit-tracker/internal/services"
	"github.com/localnerve/octofit-tracker/internal/types"
)

// WorkoutRequest is the body of POST /workouts. Exercises may mix objects and bare names.
type WorkoutRequest struct {
	Name        string           `json:"name" validate:"required,notblank,max=100"`
	Description string           `json:"description"`
	Exercises   models.Exercises `json:"exercises" swaggertype:"array,object"`
}

// WorkoutResponse is the wire form of a workout
type WorkoutResponse struct {
	ID          uint64           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Exercises   models.Exercises `json:"exercises" swaggertype:"array,object"`
}

func toWorkoutResponse(w models.Workout) WorkoutResponse {
	exercises := w.Exercises
	if exercises == nil {
		exercises = models.Exercises{}
	}
	return WorkoutResponse{ID: w.ID, Name: w.Name, Description: w.Description, Exercises: exercises}
}

// ListWorkouts handles GET /workouts
// @Summary List workouts
// @Tags Workouts
// @Produce json
// @Success 200 {array} WorkoutResponse
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /workouts/ [get]
func (h *Handler) ListWorkouts(c *fiber.Ctx) error {
	workouts, err := services.ListWorkouts(h.DB)
	if err != nil {
		return fail(c, "listWorkouts", err)
	}
	out := make([]WorkoutResponse, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, toWorkoutResponse(w))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// GetWorkout handles GET /workouts/:id
// @Summary Get a workout
// @Tags Workouts
// @Produce json
// @Param id path int true "Workout ID"
// @Success 200 {object} WorkoutResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /workouts/{id}/ [get]
func (h *Handler) GetWorkout(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, "getWorkout", err)
	}
	workout, err := services.GetWorkout(h.DB, id)
	if err != nil {
		return fail(c, "getWorkout", err)
	}
	return c.Status(fiber.StatusOK).JSON(toWorkoutResponse(*workout))
}

// CreateWorkout handles POST /workouts
// @Summary Create a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param body body WorkoutRequest true "Workout"
// @Success 201 {object} WorkoutResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /workouts/ [post]
func (h *Handler) CreateWorkout(c *fiber.Ctx) error {
	var req WorkoutRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, "createWorkout", err)
	}
	for i, e := range req.Exercises {
		if e.Name == "" {
			return fail(c, "createWorkout", types.Validation("exercises[%d] needs a name", i))
		}
	}

	workout := models.Workout{Name: req.Name, Description: req.Description, Exercises: req.Exercises}
	if err := services.CreateWorkout(h.DB, &workout); err != nil {
		return fail(c, "createWorkout", err)
	}
	return c.Status(fiber.StatusCreated).JSON(toWorkoutResponse(workout))
}
