// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptads_backend/internals/constants"
	authMiddleware "aptads_backend/internals/middlewares/auth"
	routeDetails "aptads_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC (no token) =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.AdsPublicRoutes(public, db)
	routeDetails.HomePublicRoutes(public, db)

	// ===================== ADMIN (token + staff role) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWTWithDB(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("the admin console"), constants.AllRoles),
	)

	log.Println("[INFO] Mounting admin routes...")
	routeDetails.AdsAdminRoutes(admin, db)
	routeDetails.SiteAdminRoutes(admin, db)
	routeDetails.HomeAdminRoutes(admin, db)
	routeDetails.UserAdminRoutes(admin, db)
}
