// file: internals/helpers/storage/image.go
package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"aptads_backend/internals/configs"
)

var ErrUnsupportedFormat = fmt.Errorf("unsupported image format")

/* =======================================================================
   WebP config (ENV driven)
======================================================================= */

type WebPOptions struct {
	MaxW     int     // keep-aspect resize bound
	MaxH     int
	TargetKB int     // 0 = single pass at Quality
	Quality  float32 // default quality / initial guess
	MinQ     float32
	MaxQ     float32

	ThumbW int // thumbnail box (center crop)
	ThumbH int
}

func WebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:     configs.GetEnvInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:     configs.GetEnvInt("IMAGE_WEBP_MAX_H", 1600),
		TargetKB: configs.GetEnvInt("IMAGE_WEBP_TARGET_KB", 0),
		Quality:  float32(configs.GetEnvInt("IMAGE_WEBP_QUALITY", 80)),
		MinQ:     45,
		MaxQ:     85,
		ThumbW:   configs.GetEnvInt("IMAGE_THUMB_W", 320),
		ThumbH:   configs.GetEnvInt("IMAGE_THUMB_H", 180),
	}
}

/* =======================================================================
   Decode (jpeg/png/webp) by sniffing, then extension
======================================================================= */

func DecodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	format := ""
	switch {
	case strings.Contains(ct, "jpeg"):
		format = "jpeg"
	case strings.Contains(ct, "png"):
		format = "png"
	case strings.Contains(ct, "webp"):
		format = "webp"
	default:
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".jpg", ".jpeg":
			format = "jpeg"
		case ".png":
			format = "png"
		case ".webp":
			format = "webp"
		}
	}

	r := bytes.NewReader(all)
	switch format {
	case "jpeg":
		return jpeg.Decode(r)
	case "png":
		return png.Decode(r)
	case "webp":
		return webp.Decode(r)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ct)
}

// Downscale keeps aspect ratio within maxW x maxH (CatmullRom).
func Downscale(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// EncodeWebP encodes once at Quality, or binary-searches quality when TargetKB > 0.
func EncodeWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	encodeQ := func(q float32) ([]byte, error) {
		buf := new(bytes.Buffer)
		if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	if opt.TargetKB <= 0 {
		q := opt.Quality
		if q <= 0 {
			q = 80
		}
		return encodeQ(q)
	}

	target := opt.TargetKB * 1024
	low, high := opt.MinQ, opt.MaxQ
	if low <= 0 {
		low = 45
	}
	if high <= 0 {
		high = 85
	}
	var best []byte
	for i := 0; i < 7; i++ {
		q := (low + high) / 2
		data, err := encodeQ(q)
		if err != nil {
			return nil, err
		}
		if len(data) <= target {
			best = data
			low = q // fits → try better quality
		} else {
			high = q
		}
	}
	if best == nil {
		return encodeQ(opt.MinQ)
	}
	return best, nil
}

// Thumbnail center-crops to w x h (imaging.Fill, Lanczos).
func Thumbnail(img image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
}

// ConvertImage decodes raw bytes and returns (webp, thumbnail webp).
func ConvertImage(all []byte, filename string, opt WebPOptions) ([]byte, []byte, error) {
	img, err := DecodeImage(all, filename)
	if err != nil {
		return nil, nil, err
	}
	main, err := EncodeWebP(Downscale(img, opt.MaxW, opt.MaxH), opt)
	if err != nil {
		return nil, nil, fmt.Errorf("encode webp: %w", err)
	}
	thumb, err := EncodeWebP(Thumbnail(img, opt.ThumbW, opt.ThumbH), WebPOptions{Quality: opt.Quality})
	if err != nil {
		return nil, nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return main, thumb, nil
}
