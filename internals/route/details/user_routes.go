package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ManagerRoutes "aptads_backend/internals/features/users/managers/route"
	UserRoutes "aptads_backend/internals/features/users/users/route"
)

// Role gates live inside each feature route (users: superadmin, managers: admin+).
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	UserRoutes.UserAdminRoutes(api, db)
	ManagerRoutes.ManagerAdminRoutes(api, db)
}
