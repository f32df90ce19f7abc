package output

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Format is an output image encoding
type Format int

const (
	PPM Format = iota
	PNG
	WebP
)

// ErrUnsupportedFormat is returned for unknown output extensions
var ErrUnsupportedFormat = errors.New("unsupported output format")

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case WebP:
		return "webp"
	default:
		return "ppm"
	}
}

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return PPM, nil
	case ".png":
		return PNG, nil
	case ".webp":
		return WebP, nil
	default:
		return PPM, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ToImage converts the framebuffer to an opaque 8-bit image
func ToImage(fb *core.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x, p := range fb.Row(y) {
			r, g, b := ToRGB8(p)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Scale resamples img by factor using Catmull-Rom filtering.
// A factor of 1 (or less than or equal to 0) returns img unchanged.
func Scale(img *image.RGBA, factor float64) *image.RGBA {
	if factor <= 0 || factor == 1 {
		return img
	}

	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*factor+0.5))
	h := max(1, int(float64(b.Dy())*factor+0.5))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Encode writes the framebuffer in the given format, resampled by scale (PNG and WebP only)
func Encode(w io.Writer, fb *core.Framebuffer, format Format, scale float64) error {
	switch format {
	case PNG:
		if err := png.Encode(w, Scale(ToImage(fb), scale)); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
		return nil
	case WebP:
		if err := nativewebp.Encode(w, Scale(ToImage(fb), scale), nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
		return nil
	default:
		return WritePPM(w, fb)
	}
}

// Save writes the framebuffer to path, choosing the format from its extension
func Save(path string, fb *core.Framebuffer, scale float64) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, fb, format, scale); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}
