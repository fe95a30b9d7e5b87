package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptads_backend/internals/constants"
	SectionRoutes "aptads_backend/internals/features/home/sections/route"
	authMiddleware "aptads_backend/internals/middlewares/auth"
)

// Example: /api/public/home-sections
func HomePublicRoutes(api fiber.Router, db *gorm.DB) {
	SectionRoutes.HomeSectionPublicRoutes(api, db)
}

// Example: /api/a/home-sections
func HomeAdminRoutes(api fiber.Router, db *gorm.DB) {
	api.Use("/home-sections", authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("home sections"), constants.AdminAndAbove))
	SectionRoutes.HomeSectionAdminRoutes(api, db)
}
