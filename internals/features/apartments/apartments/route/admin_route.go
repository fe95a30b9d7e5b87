package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aptCtl "aptads_backend/internals/features/apartments/apartments/controller"
)

// Mounted under /api/a (auth already applied)
func ApartmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := aptCtl.NewApartmentController(db)

	g := r.Group("/apartments")
	g.Get("/", ctl.List)
	g.Get("/nearby", ctl.Nearby)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
