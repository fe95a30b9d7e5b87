package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	devCtl "aptads_backend/internals/features/devices/devices/controller"
)

// Mounted under /api/a (auth already applied)
func DeviceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := devCtl.NewDeviceController(db)

	g := r.Group("/devices")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)

	r.Get("/apartments/:id/devices/tree", ctl.Tree)
}
