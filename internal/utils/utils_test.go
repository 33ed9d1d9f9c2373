package utils

import (
	"errors"
	"net"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/octofit-tracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string   `json:"username" validate:"required,notblank,max=5"`
	Email    string   `json:"email" validate:"required,mailformat"`
	Minutes  *float64 `json:"minutes" validate:"required,gte=0"`
	Day      string   `json:"day" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateStruct(t *testing.T) {
	ok := 3.0
	assert.NoError(t, ValidateStruct(&signup{Username: "bat", Email: "batman@dc.com", Minutes: &ok, Day: "2025-02-20"}))

	neg := -1.0
	err := ValidateStruct(&signup{Username: "  ", Email: "batman", Minutes: &neg, Day: "20/02/2025"})
	assert.ErrorIs(t, err, types.ErrValidation)
	msg := err.Error()
	assert.Contains(t, msg, "username is required")
	assert.Contains(t, msg, "email must be a valid email")
	assert.Contains(t, msg, "minutes must be at least 0")
	assert.Contains(t, msg, "day must be a date")

	err = ValidateStruct(&signup{Username: "toolong", Email: "a@b.co"})
	assert.Contains(t, err.Error(), "username must be at most 5 characters")
	assert.Contains(t, err.Error(), "minutes is required")
}

func TestStoreErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/fk", func(c *fiber.Ctx) error {
		return StoreErrorResponse(c, types.ForeignKey("user %d does not exist", 9))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return StoreErrorResponse(c, errors.New("disk on fire"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/fk", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestPingDatabase(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	assert.NoError(t, PingDatabase(host, port))
	assert.Error(t, PingDatabase(host, ""))
}
