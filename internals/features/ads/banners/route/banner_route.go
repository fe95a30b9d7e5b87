package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bannerCtl "aptads_backend/internals/features/ads/banners/controller"
	"aptads_backend/internals/helpers/storage"
)

func newController(db *gorm.DB) *bannerCtl.BannerController {
	blob, err := storage.NewOSSBlobServiceFromEnv("uploads")
	if err != nil {
		log.Printf("⚠️ [BANNER] OSS disabled: %v", err)
		return bannerCtl.NewBannerController(db, nil)
	}
	return bannerCtl.NewBannerController(db, blob)
}

// Mounted under /api/a (auth already applied)
func BannerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newController(db)

	g := r.Group("/banners")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/image", ctl.UploadImage)
}

// Mounted under /api/public
func BannerPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := bannerCtl.NewBannerController(db, nil)
	r.Get("/banners", ctl.PublicList)
}
