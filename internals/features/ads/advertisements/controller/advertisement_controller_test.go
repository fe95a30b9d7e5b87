package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aptads_backend/internals/helpers/dbtime"
)

const listSQL = `FROM advertisements AS a LEFT JOIN advertisers AS adv ON adv\.advertiser_id = a\.advertisement_advertiser_id WHERE a\.advertisement_deleted_at IS NULL`

var rowColumns = []string{
	"advertisement_id", "advertisement_advertiser_id", "advertisement_title",
	"advertisement_image_url", "advertisement_link_url", "advertisement_apartment_ids",
	"advertisement_is_active", "advertisement_start_date", "advertisement_end_date",
	"advertisement_created_at", "advertisement_updated_at",
	"advertiser_business_name", "advertiser_is_active", "advertiser_contract_end_date",
	"advertiser_deleted_at",
}

type listBody struct {
	Success bool `json:"success"`
	Data    struct {
		Items []struct {
			Title  string `json:"advertisement_title"`
			Status string `json:"advertisement_status"`
		} `json:"items"`
		StatusCounts map[string]int `json:"status_counts"`
	} `json:"data"`
	Pagination struct {
		Total   int64 `json:"total"`
		HasNext bool  `json:"has_next"`
	} `json:"pagination"`
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newApp(ctl *AdvertisementController, now time.Time) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(dbtime.LocNow, now)
		return c.Next()
	})
	app.Get("/advertisements", ctl.List)
	app.Get("/advertisers/:id/advertisements", ctl.ListByAdvertiser)
	return app
}

func decodeList(t *testing.T, app *fiber.App, target string) listBody {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var out listBody
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func utc(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestList_CountsBeforeStatusFilter(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2025, 3, 20, 3, 0, 0, 0, time.UTC)
	advID := uuid.New()
	name := "Bakery"

	mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows(rowColumns).
		AddRow(uuid.New().String(), advID.String(), "running", nil, nil, "{}",
			true, utc(2025, 3, 1), utc(2025, 12, 31), utc(2025, 3, 4), utc(2025, 3, 4),
			name, true, nil, nil).
		AddRow(uuid.New().String(), advID.String(), "later", nil, nil, "{}",
			true, utc(2025, 4, 1), utc(2025, 4, 30), utc(2025, 3, 3), utc(2025, 3, 3),
			name, true, nil, nil).
		AddRow(uuid.New().String(), advID.String(), "draft", nil, nil, "{}",
			false, utc(2025, 3, 1), utc(2025, 12, 31), utc(2025, 3, 2), utc(2025, 3, 2),
			name, true, nil, nil).
		AddRow(uuid.New().String(), uuid.New().String(), "orphaned", nil, nil, "{}",
			true, utc(2025, 3, 1), utc(2025, 12, 31), utc(2025, 3, 1), utc(2025, 3, 1),
			"Closed Shop", true, nil, utc(2025, 3, 10)))

	app := newApp(NewAdvertisementController(db), now)
	out := decodeList(t, app, "/advertisements?status=active&per_page=1")

	assert.True(t, out.Success)
	require.Len(t, out.Data.Items, 1)
	assert.Equal(t, "running", out.Data.Items[0].Title)
	assert.Equal(t, "active", out.Data.Items[0].Status)
	assert.Equal(t, map[string]int{"pending": 1, "scheduled": 1, "active": 1, "ended": 1}, out.Data.StatusCounts)
	assert.Equal(t, int64(1), out.Pagination.Total)
	assert.False(t, out.Pagination.HasNext)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DeletedAdvertiserEndsItsAds(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2025, 3, 20, 3, 0, 0, 0, time.UTC)

	mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows(rowColumns).
		AddRow(uuid.New().String(), uuid.New().String(), "orphaned", nil, nil, "{}",
			true, utc(2025, 3, 1), utc(2025, 12, 31), utc(2025, 3, 1), utc(2025, 3, 1),
			"Closed Shop", true, nil, utc(2025, 3, 10)))

	app := newApp(NewAdvertisementController(db), now)
	out := decodeList(t, app, "/advertisements?status=active")

	assert.Empty(t, out.Data.Items)
	assert.Equal(t, 1, out.Data.StatusCounts["ended"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByAdvertiser_FiveStateLabels(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2025, 3, 20, 3, 0, 0, 0, time.UTC)
	advID := uuid.New()
	contractEnd := utc(2025, 4, 10)

	mock.ExpectQuery(listSQL + ` AND a\.advertisement_advertiser_id = \$1`).
		WithArgs(advID.String()).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(uuid.New().String(), advID.String(), "spring", nil, nil, "{}",
				true, utc(2025, 3, 1), utc(2025, 12, 31), utc(2025, 3, 2), utc(2025, 3, 2),
				"Bakery", true, contractEnd, nil).
			AddRow(uuid.New().String(), advID.String(), "winter", nil, nil, "{}",
				true, utc(2025, 1, 1), utc(2025, 2, 28), utc(2025, 1, 1), utc(2025, 1, 1),
				"Bakery", true, contractEnd, nil))

	app := newApp(NewAdvertisementController(db), now)
	out := decodeList(t, app, "/advertisers/"+advID.String()+"/advertisements")

	require.Len(t, out.Data.Items, 2)
	assert.Equal(t, "spring", out.Data.Items[0].Title)
	assert.Equal(t, "expiring", out.Data.Items[0].Status)
	assert.Equal(t, "expired", out.Data.Items[1].Status)
	assert.Equal(t, map[string]int{"pending": 0, "scheduled": 0, "active": 0, "expiring": 1, "expired": 1}, out.Data.StatusCounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_UnknownStatus(t *testing.T) {
	app := newApp(NewAdvertisementController(nil), time.Now())
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/advertisements?status=expiring", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
