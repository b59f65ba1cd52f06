package handler

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"statusapi/internal/model"
)

const (
	serviceStatus  = "online"
	serviceVersion = "1.0"
)

// availableEndpoints are the labels advertised by the root descriptor.
var availableEndpoints = []string{
	"/",
	"/healthz",
	"/test (GET)",
	"/test (POST)",
}

// Root godoc
// @Summary Service descriptor
// @Description Static description of the service and its endpoints.
// @Tags status
// @Produce json
// @Success 200 {object} model.ServiceDescriptor
// @Router / [get]
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		endpoints := make([]string, len(availableEndpoints))
		copy(endpoints, availableEndpoints)
		return c.JSON(model.ServiceDescriptor{
			Status:             serviceStatus,
			Version:            serviceVersion,
			AvailableEndpoints: endpoints,
		})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Description Succeeds whenever the process is serving requests.
// @Tags status
// @Produce json
// @Success 200 {object} model.HealthStatus
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.HealthStatus{Status: "healthy"})
	}
}

// TestGet godoc
// @Summary Connectivity test (GET)
// @Tags test
// @Produce json
// @Success 200 {object} model.TestMessage
// @Router /test [get]
func TestGet() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.TestMessage{Message: "GET request successful"})
	}
}

// TestPost godoc
// @Summary Connectivity test (POST)
// @Description Echoes the JSON object from the request body unmodified.
// @Tags test
// @Accept json
// @Produce json
// @Param data body object true "Any JSON object"
// @Success 200 {object} model.EchoResponse
// @Failure 415 {object} handler.errorPayload
// @Failure 422 {object} handler.errorPayload
// @Router /test [post]
func TestPost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !c.Is("json") {
			return fiber.NewError(fiber.StatusUnsupportedMediaType, "content type must be application/json")
		}

		payload, err := decodeObject(c)
		if err != nil {
			return err
		}

		return c.JSON(model.EchoResponse{
			Message: "POST request successful",
			Data:    payload,
		})
	}
}

// decodeObject checks that the request body is a JSON object and returns it
// compacted, with its original key order. Malformed JSON, null and non-object
// values are rejected with 422.
func decodeObject(c *fiber.Ctx) (json.RawMessage, error) {
	body := c.Body()

	var shape map[string]json.RawMessage
	if err := c.App().Config().JSONDecoder(body, &shape); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errNotAnObject
		}
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "malformed JSON body")
	}
	if shape == nil {
		return nil, errNotAnObject
	}

	// Compact copies the bytes; Fiber reuses the request buffer.
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "malformed JSON body")
	}
	return buf.Bytes(), nil
}

var errNotAnObject = fiber.NewError(fiber.StatusUnprocessableEntity, "request body must be a JSON object")
