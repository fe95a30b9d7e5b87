package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adCtl "aptads_backend/internals/features/ads/advertisements/controller"
)

// Mounted under /api/a (auth already applied)
func AdvertisementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := adCtl.NewAdvertisementController(db)

	g := r.Group("/advertisements")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
