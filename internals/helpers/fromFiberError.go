package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FromFiberError turns an error coming out of a service/transaction into the
// JSON error envelope. *fiber.Error keeps its code, record-not-found → 404,
// unique violation → 409, anything else → 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return JsonError(c, fe.Code, fe.Message)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return JsonError(c, fiber.StatusNotFound, "Data not found")
	case IsUniqueViolation(err):
		return JsonError(c, fiber.StatusConflict, "Data already exists")
	default:
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
