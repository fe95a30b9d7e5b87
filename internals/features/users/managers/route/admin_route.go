package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptads_backend/internals/constants"
	mgrCtl "aptads_backend/internals/features/users/managers/controller"
	authMiddleware "aptads_backend/internals/middlewares/auth"
)

// Mounted under /api/a; admin and above.
func ManagerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := mgrCtl.NewManagerController(db)

	g := r.Group("/managers",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("manager management"), constants.AdminAndAbove),
	)
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
