package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestConvertImage(t *testing.T) {
	opts := WebPOptions{MaxW: 100, MaxH: 100, Quality: 75, ThumbW: 40, ThumbH: 20}
	main, thumb, err := ConvertImage(pngBytes(t, 200, 120), "banner.png", opts)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(main))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 60, cfg.Height)

	cfg, err = webp.DecodeConfig(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
}

func TestDecodeImage_Unsupported(t *testing.T) {
	_, err := DecodeImage([]byte("GIF89a not really"), "x.gif")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = DecodeImage(nil, "x.png")
	assert.Error(t, err)
}

func TestDownscaleKeepsSmallImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	assert.Same(t, img, Downscale(img, 100, 100).(*image.RGBA))
}

func TestObjectKeyAndPublicURL(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	key := ObjectKey("uploads", "banners", "Summer Sale!", ".webp", now)
	assert.Regexp(t, `^uploads/banners/summer-sale_20260102_030405_[0-9a-f]{6}\.webp$`, key)

	assert.Equal(t, "https://cdn.example.com/a/b.webp", PublicURL("https://cdn.example.com", "bkt", "oss-ap.aliyuncs.com", "a/b.webp"))
	assert.Equal(t, "https://bkt.oss-ap.aliyuncs.com/a/b.webp", PublicURL("", "bkt", "https://oss-ap.aliyuncs.com", "a/b.webp"))
	assert.Equal(t, "", PublicURL("", "bkt", "e", ""))
}
