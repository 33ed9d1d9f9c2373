package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/octofit-tracker/internal/models"
	"github.com/localnerve/octofit-tracker/internal/services"
)

// UserRequest is the body of POST /users
type UserRequest struct {
	Username string `json:"username" validate:"required,notblank,max=100"`
	Email    string `json:"email" validate:"required,mailformat,max=254"`
	Password string `json:"password" validate:"required,notblank,max=255"`
}

// UserResponse is the wire form of a user
type UserResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, Password: u.Password}
}

// ListUsers handles GET /users
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/ [get]
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers(h.DB)
	if err != nil {
		return fail(c, "listUsers", err)
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// GetUser handles GET /users/:id
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/ [get]
func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return fail(c, "getUser", err)
	}
	user, err := services.GetUser(h.DB, id)
	if err != nil {
		return fail(c, "getUser", err)
	}
	return c.Status(fiber.StatusOK).JSON(toUserResponse(*user))
}

// CreateUser handles POST /users
// @Summary Create a user
// @Description Email must be well formed and unique across users
// @Tags Users
// @Accept json
// @Produce json
// @Param body body UserRequest true "User"
// @Success 201 {object} UserResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users/ [post]
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req UserRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, "createUser", err)
	}

	user := models.User{Username: req.Username, Email: req.Email, Password: req.Password}
	if err := services.CreateUser(h.DB, &user); err != nil {
		return fail(c, "createUser", err)
	}
	return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
}
