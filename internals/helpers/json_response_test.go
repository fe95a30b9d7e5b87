package helper

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type createReq struct {
	Title string `json:"title" validate:"required,min=2"`
}

func decode(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestBindAndValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var req createReq
		if err := BindAndValidate(c, &req); err != nil {
			return RespondBindError(c, err)
		}
		return JsonCreated(c, "", req)
	})

	code, body := decode(t, app, "POST", "/", `{"title":"ok title"}`)
	assert.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "created", body["message"])

	code, body = decode(t, app, "POST", "/", `{"title":""}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	errs := body["errors"].(map[string]any)
	assert.Equal(t, []any{"required"}, errs["title"])

	code, _ = decode(t, app, "POST", "/", `{"title":`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestFromFiberError(t *testing.T) {
	app := fiber.New()
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusConflict, "dup"))
	})
	app.Get("/notfound", func(c *fiber.Ctx) error {
		return FromFiberError(c, gorm.ErrRecordNotFound)
	})

	code, body := decode(t, app, "GET", "/fiber", "")
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, "dup", body["message"])
	assert.Equal(t, "CONFLICT", body["error_code"])

	code, body = decode(t, app, "GET", "/notfound", "")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
}

func TestJsonListWithMeta(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		rows, meta := PageSlice([]string{"a", "b", "c"}, Params{Page: 1, PerPage: 2})
		return JsonList(c, "", rows, meta)
	})
	code, body := decode(t, app, "GET", "/", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, []any{"a", "b"}, body["data"])
	pg := body["pagination"].(map[string]any)
	assert.Equal(t, float64(3), pg["total"])
	assert.Equal(t, float64(2), pg["next_page"])
}
