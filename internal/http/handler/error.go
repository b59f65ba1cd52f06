package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"statusapi/internal/http/middleware"
)

// HTTPError is an error raised explicitly by a handler. The error handler
// renders it as {"detail": ..., "status_code": ...}.
type HTTPError struct {
	Code   int    `json:"status_code"`
	Detail string `json:"detail"`
}

// NewHTTPError creates an HTTPError; an empty detail defaults to the status text.
func NewHTTPError(code int, detail string) *HTTPError {
	if detail == "" {
		detail = utils.StatusMessage(code)
	}
	return &HTTPError{Code: code, Detail: detail}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Detail)
}

// StatusCode reports the HTTP status carried by the error.
func (e *HTTPError) StatusCode() int {
	return e.Code
}

// errorPayload is the framework-level error envelope used for everything that
// is not an HTTPError (routing failures, body parsing, unexpected errors).
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes the framework-level JSON error envelope without leaking
// internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "NOT_FOUND", "UNPROCESSABLE_ENTITY")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// ErrorHandler returns a Fiber global error handler.
//
// HTTPError values keep their own status and detail. Fiber errors keep their
// status and message. Anything else becomes a 500 without details.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var he *HTTPError
		if errors.As(err, &he) {
			return c.Status(he.Code).JSON(he)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return writeError(c, fe.Code, errorCode(fe.Code), fe.Message)
		}

		return writeError(c, fiber.StatusInternalServerError, errorCode(fiber.StatusInternalServerError), "internal server error")
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusUnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE"
	case fiber.StatusUnprocessableEntity:
		return "UNPROCESSABLE_ENTITY"
	case fiber.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return "CLIENT_ERROR"
}
