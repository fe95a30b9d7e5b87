package controller

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aptads_backend/internals/helpers/storage"
)

const bannerID = "3f1c1a52-6f7c-4f59-9a57-8d1c2c7e8a10"

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

func imageRequest(t *testing.T) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", "spring.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("not-really-a-png"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/banners/"+bannerID+"/image", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func expectBanner(mock sqlmock.Sqlmock) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "banners" WHERE banner_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{
			"banner_id", "banner_title", "banner_position", "banner_is_active",
			"banner_start_date", "banner_end_date",
			"banner_image_object_key", "banner_thumbnail_object_key",
		}).AddRow(bannerID, "Spring", "home_top", true, start, start.AddDate(0, 1, 0),
			"uploads/banners/old.webp", "uploads/banners/thumbs/old.webp"))
}

func newUpload() storage.ImageUpload {
	return storage.ImageUpload{
		URL:          "https://cdn.example.com/uploads/banners/new.webp",
		Key:          "uploads/banners/new.webp",
		ThumbnailURL: "https://cdn.example.com/uploads/banners/thumbs/new.webp",
		ThumbnailKey: "uploads/banners/thumbs/new.webp",
	}
}

func TestUploadImage_StorageDisabled(t *testing.T) {
	app := fiber.New()
	ctl := NewBannerController(nil, nil)
	app.Post("/banners/:id/image", ctl.UploadImage)

	req := httptest.NewRequest(fiber.MethodPost, "/banners/"+bannerID+"/image", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"success":false`)
}

func TestUploadImage_ReplacesOldObjects(t *testing.T) {
	db, mock := newMockDB(t)
	expectBanner(mock)
	mock.ExpectExec(`UPDATE "banners" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM banners AS b LEFT JOIN advertisers AS adv`).
		WillReturnRows(sqlmock.NewRows([]string{
			"banner_id", "banner_title", "banner_position", "banner_is_active",
			"banner_start_date", "banner_end_date", "banner_image_url",
		}).AddRow(bannerID, "Spring", "home_top", true,
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			newUpload().URL))

	blob := &storage.MockBlobService{
		UploadImageFn: func(_ context.Context, dir string, fh *multipart.FileHeader) (storage.ImageUpload, error) {
			assert.Equal(t, uploadDir, dir)
			assert.Equal(t, "spring.png", fh.Filename)
			return newUpload(), nil
		},
	}
	app := fiber.New()
	app.Post("/banners/:id/image", NewBannerController(db, blob).UploadImage)

	resp, err := app.Test(imageRequest(t))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), newUpload().URL)

	assert.Equal(t, []string{"uploads/banners/old.webp", "uploads/banners/thumbs/old.webp"}, blob.Deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadImage_DBFailureDropsNewObjects(t *testing.T) {
	db, mock := newMockDB(t)
	expectBanner(mock)
	mock.ExpectExec(`UPDATE "banners" SET`).WillReturnError(errors.New("connection reset"))

	blob := &storage.MockBlobService{
		UploadImageFn: func(context.Context, string, *multipart.FileHeader) (storage.ImageUpload, error) {
			return newUpload(), nil
		},
		// a failing delete is logged, never surfaced
		DeleteByKeyFn: func(context.Context, string) error { return errors.New("oss down") },
	}
	app := fiber.New()
	app.Post("/banners/:id/image", NewBannerController(db, blob).UploadImage)

	resp, err := app.Test(imageRequest(t))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, []string{newUpload().Key, newUpload().ThumbnailKey}, blob.Deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadImage_UnsupportedFormat(t *testing.T) {
	db, mock := newMockDB(t)
	expectBanner(mock)

	blob := &storage.MockBlobService{
		UploadImageFn: func(context.Context, string, *multipart.FileHeader) (storage.ImageUpload, error) {
			return storage.ImageUpload{}, fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)")
		},
	}
	app := fiber.New()
	app.Post("/banners/:id/image", NewBannerController(db, blob).UploadImage)

	resp, err := app.Test(imageRequest(t))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Empty(t, blob.Deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
