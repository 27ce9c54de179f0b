package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"blogsphere/internal/domain"
	"blogsphere/internal/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// ErrorHandler renders fiber errors and the domain error taxonomy as
// {code, message, trace_id}. Unknown errors become a 500 with a generic
// message and are logged.
func ErrorHandler(log logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"
		errorCode := "INTERNAL_ERROR"

		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			code = fe.Code
			message = fe.Message
			errorCode = codeForStatus(code)
		case errors.Is(err, domain.ErrValidation):
			code, errorCode, message = fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error()
		case errors.Is(err, domain.ErrPermission):
			code, errorCode, message = fiber.StatusForbidden, "FORBIDDEN", err.Error()
		case errors.Is(err, domain.ErrNotFound):
			code, errorCode, message = fiber.StatusNotFound, "NOT_FOUND", err.Error()
		case errors.Is(err, domain.ErrUnauthorized):
			code, errorCode, message = fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error()
		}

		traceID, _ := c.Locals(logger.RequestIDKey).(string)
		if traceID == "" {
			traceID = uuid.New().String()[:8]
		}

		if code >= fiber.StatusInternalServerError {
			log.Error(c.Context(), "request failed",
				"method", c.Method(), "path", c.Path(), "error", err)
		}

		return c.Status(code).JSON(ErrorResponse{
			Code:    errorCode,
			Message: message,
			TraceID: traceID,
		})
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusServiceUnavailable:
		return "UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Unavailable(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusServiceUnavailable, message)
}
