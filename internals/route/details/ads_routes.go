package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptads_backend/internals/constants"
	AdvertisementRoutes "aptads_backend/internals/features/ads/advertisements/route"
	BannerRoutes "aptads_backend/internals/features/ads/banners/route"
	AdvertiserRoutes "aptads_backend/internals/features/advertisers/advertisers/route"
	authMiddleware "aptads_backend/internals/middlewares/auth"
)

// Public, no token. Example: /api/public/banners?position=home_top
func AdsPublicRoutes(api fiber.Router, db *gorm.DB) {
	BannerRoutes.BannerPublicRoutes(api, db)
}

// Admin and above. Example: /api/a/advertisements
func AdsAdminRoutes(api fiber.Router, db *gorm.DB) {
	adminOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("advertising"), constants.AdminAndAbove)
	for _, prefix := range []string{"/advertisements", "/banners", "/advertisers"} {
		api.Use(prefix, adminOnly)
	}

	AdvertisementRoutes.AdvertisementAdminRoutes(api, db)
	BannerRoutes.BannerAdminRoutes(api, db)
	AdvertiserRoutes.AdvertiserAdminRoutes(api, db)
}
