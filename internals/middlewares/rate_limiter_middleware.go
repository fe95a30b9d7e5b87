package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"aptads_backend/internals/configs"
	helper "aptads_backend/internals/helpers"
)

func limitReached(msg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusTooManyRequests, msg)
	}
}

// Global limiter: all endpoints, per IP.
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          configs.GetEnvInt("RATE_LIMIT_PER_MIN", 300),
		Expiration:   1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: limitReached("Too many requests. Please try again later."),
	})
}

// Login limiter: stricter, per IP.
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          5,
		Expiration:   1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string { return c.IP() },
		LimitReached: limitReached("Too many login attempts. Please wait a moment."),
	})
}
