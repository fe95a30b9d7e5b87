// file: internals/helpers/storage/blob_service.go
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = int64(5 * 1024 * 1024)

// ImageUpload is what controllers persist after an upload.
type ImageUpload struct {
	URL          string `json:"url"`
	Key          string `json:"key"`
	ThumbnailURL string `json:"thumbnail_url"`
	ThumbnailKey string `json:"thumbnail_key"`
}

// BlobService is the upload/delete facade used by controllers.
type BlobService interface {
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (ImageUpload, error)
	DeleteByKey(ctx context.Context, key string) error
}

// --------------------------------------------------
// OSS implementation
// --------------------------------------------------

type OSSBlobService struct {
	svc  *OSSService
	opts WebPOptions
}

func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s, opts: WebPOptionsFromEnv()}, nil
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (ImageUpload, error) {
	all, err := ReadFormFile(fh)
	if err != nil {
		return ImageUpload{}, err
	}
	main, thumb, err := ConvertImage(all, fh.Filename, b.opts)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			return ImageUpload{}, fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)")
		}
		return ImageUpload{}, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	now := time.Now()
	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := ObjectKey(b.svc.Prefix, dir, base, ".webp", now)
	thumbKey := ObjectKey(b.svc.Prefix, dir+"/thumbs", base, ".webp", now)

	if err := b.svc.Put(ctx, key, bytes.NewReader(main), "image/webp"); err != nil {
		return ImageUpload{}, fiber.NewError(fiber.StatusBadGateway, "Failed to upload to OSS")
	}
	if err := b.svc.Put(ctx, thumbKey, bytes.NewReader(thumb), "image/webp"); err != nil {
		_ = b.svc.Delete(ctx, key)
		return ImageUpload{}, fiber.NewError(fiber.StatusBadGateway, "Failed to upload thumbnail to OSS")
	}

	return ImageUpload{
		URL:          b.svc.PublicURL(key),
		Key:          key,
		ThumbnailURL: b.svc.PublicURL(thumbKey),
		ThumbnailKey: thumbKey,
	}, nil
}

func (b *OSSBlobService) DeleteByKey(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	if err := b.svc.Delete(ctx, key); err != nil {
		return fmt.Errorf("oss delete %s: %w", key, err)
	}
	return nil
}

// ReadFormFile reads a multipart file with the upload size guard.
func ReadFormFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File not found")
	}
	if fh.Size > maxUploadSize {
		return nil, fiber.NewError(fiber.StatusRequestEntityTooLarge, fmt.Sprintf("File too large (max %d bytes)", maxUploadSize))
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer src.Close()
	return io.ReadAll(io.LimitReader(src, maxUploadSize+1))
}

// --------------------------------------------------
// Controller helpers
// --------------------------------------------------

func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

var defaultImageFields = []string{"image", "file", "photo"}

// GetImageFile finds the upload among common field names; (nil, nil) when absent.
func GetImageFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Use multipart/form-data")
	}
	names := fieldNames
	if len(names) == 0 {
		names = defaultImageFields
	}
	for _, fn := range names {
		if fh, err := c.FormFile(fn); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, nil
}

// --------------------------------------------------
// Mock for unit tests
// --------------------------------------------------

type MockBlobService struct {
	UploadImageFn func(ctx context.Context, dir string, fh *multipart.FileHeader) (ImageUpload, error)
	DeleteByKeyFn func(ctx context.Context, key string) error
	Deleted       []string
}

func (m *MockBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (ImageUpload, error) {
	if m.UploadImageFn == nil {
		return ImageUpload{}, errors.New("not implemented")
	}
	return m.UploadImageFn(ctx, dir, fh)
}

func (m *MockBlobService) DeleteByKey(ctx context.Context, key string) error {
	m.Deleted = append(m.Deleted, key)
	if m.DeleteByKeyFn == nil {
		return nil
	}
	return m.DeleteByKeyFn(ctx, key)
}
