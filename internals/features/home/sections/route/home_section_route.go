package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	secCtl "aptads_backend/internals/features/home/sections/controller"
)

// Mounted under /api/a
func HomeSectionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := secCtl.NewHomeSectionController(db)

	g := r.Group("/home-sections")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/order", ctl.Reorder)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

// Mounted under /api/public
func HomeSectionPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := secCtl.NewHomeSectionController(db)
	r.Get("/home-sections", ctl.PublicList)
}
