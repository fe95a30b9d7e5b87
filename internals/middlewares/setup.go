package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"aptads_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain (order matters: recover first).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
