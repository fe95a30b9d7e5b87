package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adCtl "aptads_backend/internals/features/ads/advertisements/controller"
	advCtl "aptads_backend/internals/features/advertisers/advertisers/controller"
)

// Mounted under /api/a (auth already applied)
func AdvertiserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := advCtl.NewAdvertiserController(db)
	ads := adCtl.NewAdvertisementController(db)

	g := r.Group("/advertisers")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Post("/search-tags/rebuild", ctl.RebuildAllTags)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/search-tags/rebuild", ctl.RebuildTags)
	g.Get("/:id/advertisements", ads.ListByAdvertiser)
}
