// middlewares/cors_middleware.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"aptads_backend/internals/configs"
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// AllowedOrigins reads CORS_ALLOW_ORIGINS (comma separated) or falls back to local dev origins.
func AllowedOrigins() string {
	raw := strings.TrimSpace(configs.GetEnv("CORS_ALLOW_ORIGINS"))
	if raw == "" {
		return strings.Join(defaultOrigins, ", ")
	}
	parts := make([]string, 0)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimRight(strings.TrimSpace(p), "/"); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     AllowedOrigins(),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: true,
	})
}
