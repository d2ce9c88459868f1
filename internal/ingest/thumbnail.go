package ingest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"daily-journal/internal/apperr"
)

const (
	DefaultMaxEdge = 800
	DefaultQuality = 80

	// MaxSourcePixels bounds the decoded size of a source image.
	MaxSourcePixels = 40_000_000
)

// Thumbnailer shrinks images so the longest edge is at most MaxEdge pixels
// and re-encodes them as JPEG. Images are never upscaled.
type Thumbnailer struct {
	MaxEdge int
	Quality int
}

func NewThumbnailer(maxEdge, quality int) *Thumbnailer {
	if maxEdge <= 0 {
		maxEdge = DefaultMaxEdge
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Thumbnailer{MaxEdge: maxEdge, Quality: quality}
}

// Make decodes data (jpeg, png, gif, webp) and returns the JPEG thumbnail.
// Images declaring more than MaxSourcePixels are refused before decoding.
func (t *Thumbnailer) Make(data []byte) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return nil, apperr.UnsupportedFormat(format,
			fmt.Errorf("image is %dx%d, limit is %d pixels", cfg.Width, cfg.Height, MaxSourcePixels))
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	w, h := scaledSize(src.Bounds().Dx(), src.Bounds().Dy(), t.MaxEdge)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// JPEG has no alpha channel; composite transparent sources over white.
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: t.Quality}); err != nil {
		return nil, fmt.Errorf("encode %s thumbnail: %w", format, err)
	}
	return buf.Bytes(), nil
}

func scaledSize(w, h, maxEdge int) (int, int) {
	if w <= maxEdge && h <= maxEdge {
		return max(w, 1), max(h, 1)
	}
	if w >= h {
		return maxEdge, max(h*maxEdge/w, 1)
	}
	return max(w*maxEdge/h, 1), maxEdge
}
