package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"dr-dine-be/pkg/document"
	"dr-dine-be/pkg/health"
	"dr-dine-be/pkg/suitability"
)

// ErrorHandlerMiddleware converts errors escaping a handler into the standard
// envelope, mapping the domain error taxonomy onto HTTP status codes.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErrs validator.ValidationErrors
		var invalidInput *health.InvalidInputError
		var unreadable *document.UnreadableError
		var unavailable *suitability.UnavailableError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &validationErrs), errors.As(err, &invalidInput):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(400, err.Error()))
		case errors.As(err, &unreadable):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(422, err.Error()))
		case errors.As(err, &unavailable):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse(503, err.Error()))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, err.Error()))
		}
	}
}
