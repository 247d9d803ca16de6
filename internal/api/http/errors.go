package http

import (
	"errors"

	"futuresbot/internal/usecasees/structs"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler renders every failure as {"detail": reason}.
func ErrorHandler(l *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var (
			vErr *structs.ValidationError
			iErr *structs.InternalError
			fErr *fiber.Error
		)

		switch {
		case errors.As(err, &vErr):
			code = fiber.StatusBadRequest
			if vErr.Malformed {
				code = fiber.StatusUnprocessableEntity
			}
		case errors.As(err, &iErr):
			l.WithField("method", c.Path()).WithError(iErr.Err).Error(iErr.Op)
		case errors.As(err, &fErr):
			code = fErr.Code
		default:
			l.WithField("method", c.Path()).WithError(err).Error("unhandled error")
		}

		if code == fiber.StatusUnauthorized {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		}

		return c.Status(code).JSON(fiber.Map{"detail": err.Error()})
	}
}
