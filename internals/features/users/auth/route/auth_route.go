// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "aptads_backend/internals/features/users/auth/controller"
	rateLimiter "aptads_backend/internals/middlewares"
	authMiddleware "aptads_backend/internals/middlewares/auth"
)

// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/logout", authController.Logout)

	requireAuth := authMiddleware.AuthJWTWithDB(db)
	baseAuth.Get("/me", requireAuth, authController.Me)
	baseAuth.Post("/change-password", requireAuth, authController.ChangePassword)
}
