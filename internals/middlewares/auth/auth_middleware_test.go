package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aptads_backend/internals/constants"
	authService "aptads_backend/internals/features/users/auth/service"
	helper "aptads_backend/internals/helpers"
)

const secret = "middleware-test-secret"

type fakeStore struct {
	blacklisted map[string]bool
	inactive    map[uuid.UUID]bool
	missing     map[uuid.UUID]bool
}

func newApp(t *testing.T, st *fakeStore, now time.Time) *fiber.App {
	t.Helper()
	app := fiber.New()
	mw := AuthJWT(AuthJWTOpts{
		Secret: func() (string, error) { return secret, nil },
		BlacklistChecker: func(_ context.Context, tok string) (bool, error) {
			return st.blacklisted[tok], nil
		},
		UserActive: func(_ context.Context, id uuid.UUID) error {
			if st.missing[id] {
				return gorm.ErrRecordNotFound
			}
			if st.inactive[id] {
				return ErrUserInactive
			}
			return nil
		},
		Now: func() time.Time { return now },
	})
	app.Get("/whoami", mw, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Locals(helper.LocUserID), "role": c.Locals(helper.LocUserRole)})
	})
	app.Get("/admin", mw, OnlyRolesSlice("admins only", constants.AdminAndAbove), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func issue(t *testing.T, id uuid.UUID, role string, now time.Time) string {
	t.Helper()
	tok, _, err := authService.IssueAccessToken(id, role, secret, now, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(t *testing.T, app *fiber.App, path string, setup func(r *http.Request)) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if setup != nil {
		setup(req)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body
}

func bearer(tok string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }
}

func TestAuthJWT(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()
	st := &fakeStore{blacklisted: map[string]bool{}, inactive: map[uuid.UUID]bool{}, missing: map[uuid.UUID]bool{}}
	app := newApp(t, st, now)
	tok := issue(t, id, constants.RoleManager, now)

	t.Run("no token", func(t *testing.T) {
		code, _ := do(t, app, "/whoami", nil)
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("bearer header", func(t *testing.T) {
		code, body := do(t, app, "/whoami", bearer(tok))
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, id.String(), body["id"])
		assert.Equal(t, constants.RoleManager, body["role"])
	})

	t.Run("cookie fallback", func(t *testing.T) {
		code, _ := do(t, app, "/whoami", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: helper.AccessTokenCookie, Value: tok})
		})
		assert.Equal(t, fiber.StatusOK, code)
	})

	t.Run("bad signature", func(t *testing.T) {
		other, _, err := authService.IssueAccessToken(id, "admin", "another-secret", now, time.Hour)
		require.NoError(t, err)
		code, _ := do(t, app, "/whoami", bearer(other))
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("expired beyond skew", func(t *testing.T) {
		old := issue(t, id, constants.RoleManager, now.Add(-2*time.Hour))
		code, body := do(t, app, "/whoami", bearer(old))
		assert.Equal(t, fiber.StatusUnauthorized, code)
		assert.Contains(t, body["message"], "expired")
	})

	t.Run("blacklisted", func(t *testing.T) {
		listed := issue(t, id, constants.RoleManager, now.Add(-time.Minute))
		st.blacklisted[listed] = true
		code, body := do(t, app, "/whoami", bearer(listed))
		assert.Equal(t, fiber.StatusUnauthorized, code)
		assert.Contains(t, body["message"], "blacklisted")
	})

	t.Run("inactive user", func(t *testing.T) {
		uid := uuid.New()
		st.inactive[uid] = true
		code, _ := do(t, app, "/whoami", bearer(issue(t, uid, constants.RoleAdmin, now)))
		assert.Equal(t, fiber.StatusForbidden, code)
	})

	t.Run("unknown user", func(t *testing.T) {
		uid := uuid.New()
		st.missing[uid] = true
		code, _ := do(t, app, "/whoami", bearer(issue(t, uid, constants.RoleAdmin, now)))
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})
}

func TestOnlyRolesSlice(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	st := &fakeStore{blacklisted: map[string]bool{}, inactive: map[uuid.UUID]bool{}, missing: map[uuid.UUID]bool{}}
	app := newApp(t, st, now)

	code, body := do(t, app, "/admin", bearer(issue(t, uuid.New(), constants.RoleManager, now)))
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "admins only", body["message"])

	code, _ = do(t, app, "/admin", bearer(issue(t, uuid.New(), constants.RoleSuperAdmin, now)))
	assert.Equal(t, fiber.StatusOK, code)
}
