package serverutils

import (
	"errors"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/apperror"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Internal server error"

// StatusFor maps an error onto the HTTP status and message returned to the caller.
func StatusFor(err error) (int, string) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindNotFound, apperror.KindNotFoundOrUnauthorized:
			return fiber.StatusNotFound, appErr.Message
		case apperror.KindMalformed:
			return fiber.StatusBadRequest, appErr.Message
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, internalErrorMessage
}

// ErrorHandlerMiddleware renders errors returned by later handlers as {"error": "..."}.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, log, err)
	}
}

// ErrorHandler is the same mapping in fiber.Config form, for errors raised
// before the middleware chain runs (body limit, unknown routes).
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		return WriteError(ctx, log, err)
	}
}

func WriteError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	status, message := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Error("http", "Request failed", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
	}
	return ctx.Status(status).JSON(ErrorResponse(message))
}
