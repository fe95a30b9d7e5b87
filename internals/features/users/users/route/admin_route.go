package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptads_backend/internals/constants"
	userCtl "aptads_backend/internals/features/users/users/controller"
	authMiddleware "aptads_backend/internals/middlewares/auth"
)

// Mounted under /api/a; superadmin only.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db)

	g := r.Group("/users",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorSuperAdmin("user management"), constants.SuperAdminOnly),
	)
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
