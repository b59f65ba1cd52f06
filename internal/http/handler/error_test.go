package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusapi/internal/http/middleware"
)

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})
	app.Use(middleware.RequestID())

	app.Get("/teapot", func(c *fiber.Ctx) error {
		return NewHTTPError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/wrapped", func(c *fiber.Ctx) error {
		return fmt.Errorf("lookup: %w", NewHTTPError(fiber.StatusForbidden, "forbidden thing"))
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad input")
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return errors.New("db password is hunter2")
	})

	t.Run("handler raised error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"detail":"short and stout","status_code":418}`, string(raw))
	})

	t.Run("wrapped handler raised error", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/wrapped", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"detail":"forbidden thing","status_code":403}`, string(raw))
	})

	t.Run("fiber error keeps status and message", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/fiber", nil)
		req.Header.Set(middleware.RequestIDHeader, "rid-1")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "rid-1", res.RequestID)
		assert.Equal(t, "BAD_REQUEST", res.Error.Code)
		assert.Equal(t, "bad input", res.Error.Message)
	})

	t.Run("plain error is hidden", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/plain", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "hunter2")

		var res errorPayload
		require.NoError(t, json.Unmarshal(raw, &res))
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
	})
}

func TestNewHTTPError(t *testing.T) {
	e := NewHTTPError(fiber.StatusNotFound, "")
	assert.Equal(t, "Not Found", e.Detail)
	assert.Equal(t, fiber.StatusNotFound, e.StatusCode())
	assert.Equal(t, "404: Not Found", e.Error())
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "CLIENT_ERROR", errorCode(fiber.StatusConflict))
	assert.Equal(t, "INTERNAL_ERROR", errorCode(fiber.StatusBadGateway))
	assert.Equal(t, "PAYLOAD_TOO_LARGE", errorCode(fiber.StatusRequestEntityTooLarge))
}
