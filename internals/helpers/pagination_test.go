package helper

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseWith(t *testing.T, target string, opt Options) Params {
	t.Helper()
	app := fiber.New()
	var got Params
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "created_at", "desc", opt)
		return c.SendStatus(fiber.StatusNoContent)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	_, _ = io.ReadAll(resp.Body)
	return got
}

func TestParseFiber(t *testing.T) {
	p := parseWith(t, "/?page=3&per_page=10&sort_by=title&order=ASC", DefaultOpts)
	assert.Equal(t, Params{Page: 3, PerPage: 10, SortBy: "title", SortOrder: "asc"}, p)
	assert.Equal(t, 20, p.Offset())

	p = parseWith(t, "/?page=-1&limit=9999", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultOpts.MaxPerPage, p.PerPage)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)

	p = parseWith(t, "/?page=4&per_page=all", AdminOpts)
	assert.True(t, p.All)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, AdminOpts.AllHardCap, p.PerPage)
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{"created_at": "ad_created_at", "title": "ad_title"}

	got, err := Params{SortBy: "title", SortOrder: "asc"}.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ad_title ASC", got)

	got, err = Params{SortBy: "1;drop table", SortOrder: "x"}.SafeOrderClause(allowed, "created_at")
	require.NoError(t, err)
	assert.Equal(t, "ad_created_at DESC", got)

	_, err = Params{}.SafeOrderClause(allowed, "missing")
	assert.Error(t, err)
}

func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := PageSlice(items, Params{Page: 2, PerPage: 2})
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	assert.Equal(t, 2, meta.Count)

	page, meta = PageSlice(items, Params{Page: 9, PerPage: 2})
	assert.Empty(t, page)
	assert.False(t, meta.HasNext)
}
