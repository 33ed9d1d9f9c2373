package utils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/octofit-tracker/internal/types"
)

// ErrorResponse renders the error envelope shared by every failing route
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(ErrorResponseStruct{
		Status:    status,
		Message:   message,
		Ok:        false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
		Type:      errorType,
	})
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, types.TypeNotFound)
}

// StoreErrorResponse renders a store error with the status of its taxonomy type.
// Anything outside the taxonomy is an internal error.
func StoreErrorResponse(c *fiber.Ctx, err error) error {
	var custom *types.CustomError
	if errors.As(err, &custom) {
		return ErrorResponse(c, custom.Message, custom.Code, custom.Type)
	}
	return ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "internal")
}

type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}
