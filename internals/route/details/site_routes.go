package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ApartmentRoutes "aptads_backend/internals/features/apartments/apartments/route"
	DeviceRoutes "aptads_backend/internals/features/devices/devices/route"
)

// Apartments and their devices; any staff role. Example: /api/a/apartments/:id/devices/tree
func SiteAdminRoutes(api fiber.Router, db *gorm.DB) {
	ApartmentRoutes.ApartmentAdminRoutes(api, db)
	DeviceRoutes.DeviceAdminRoutes(api, db)
}
