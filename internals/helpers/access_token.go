package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const AccessTokenCookie = "access_token"

// GetRawAccessToken reads "Authorization: Bearer <t>", falling back to the access_token cookie.
func GetRawAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if f := strings.Fields(auth); len(f) == 2 && strings.EqualFold(f[0], "Bearer") {
		return strings.Trim(f[1], "\"'")
	}
	return strings.TrimSpace(c.Cookies(AccessTokenCookie))
}
