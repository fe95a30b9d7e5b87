package dbtime

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowPrefersLocals(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Asia/Seoul")
	pinned := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	app := fiber.New()
	var got time.Time
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(LocNow, pinned)
		got = Now(c)
		return nil
	})
	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.True(t, got.Equal(pinned))
	assert.Equal(t, 9, got.Hour())
}

func TestStartOfDay(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Asia/Seoul")
	// 2026-05-01 20:00 UTC = 2026-05-02 05:00 KST
	got := StartOfDay(time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, 2, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.True(t, ToAppTime(time.Time{}).IsZero())
}
