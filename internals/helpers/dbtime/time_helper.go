// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"aptads_backend/internals/configs"
)

// Locals key; a middleware or test may pin "now" for a request.
const LocNow = "now"

// AppLocation is the zone used for calendar-day math (end-of-day, date filters).
func AppLocation() *time.Location {
	return configs.Location()
}

// Now returns the request's "now" in the app timezone.
// A time.Time stored in c.Locals("now") wins (used by tests/preview).
func Now(c *fiber.Ctx) time.Time {
	if c != nil {
		if v, ok := c.Locals(LocNow).(time.Time); ok && !v.IsZero() {
			return v.In(AppLocation())
		}
	}
	return time.Now().In(AppLocation())
}

// ToAppTime converts a DB time (UTC) into the app timezone. Zero stays zero.
func ToAppTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(AppLocation())
}

// StartOfDay is 00:00 of t's calendar day in the app timezone.
func StartOfDay(t time.Time) time.Time {
	t = t.In(AppLocation())
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, AppLocation())
}
