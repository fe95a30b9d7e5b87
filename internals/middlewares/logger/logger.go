package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"aptads_backend/internals/configs"
)

// LoggerMiddleware logs every request in the app timezone.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   configs.GetEnv("APP_TIMEZONE", "Asia/Seoul"),
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency} - ${locals:reqid}\n",
	})
}
