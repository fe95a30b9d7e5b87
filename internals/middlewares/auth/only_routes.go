package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRolesSlice gates a route group on a predeclared role group (constants.AdminAndAbove etc).
func OnlyRolesSlice(message string, allowedRoles []string) fiber.Handler {
	return RoleMiddlewareWithCustomError(allowedRoles, message)
}
