package loaders

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrUnsupportedImage is returned for files whose extension has no decoder
var ErrUnsupportedImage = errors.New("unsupported image format")

// decoders maps lower-case file extensions to decoders. The tga package registers
// an empty magic string with the image package, so image.Decode cannot sniff formats here.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
	".tga":  tga.Decode,
}

// ImageData is a decoded texture image stored as opaque 8-bit RGBA.
// It satisfies material.ImageSource.
type ImageData struct {
	pixels *image.RGBA
}

// NewImageData flattens any image onto an opaque black background
func NewImageData(src image.Image) *ImageData {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return &ImageData{pixels: dst}
}

// LoadImage loads a PNG, JPEG, BMP, TIFF, WebP or TGA image.
// The decoder is selected by the file extension.
func LoadImage(filename string) (*ImageData, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (%s)", ErrUnsupportedImage, ext, filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	return NewImageData(img), nil
}

// Width returns the image width in pixels
func (d *ImageData) Width() int {
	return d.pixels.Bounds().Dx()
}

// Height returns the image height in pixels
func (d *ImageData) Height() int {
	return d.pixels.Bounds().Dy()
}

// PixelRGB8 returns the pixel at (x, y), clamped to the image bounds; row 0 is the top
func (d *ImageData) PixelRGB8(x, y int) (r, g, b uint8) {
	x = min(max(x, 0), d.Width()-1)
	y = min(max(y, 0), d.Height()-1)
	c := d.pixels.RGBAAt(x, y)
	return c.R, c.G, c.B
}

// LoadImageTexture loads an image texture from disk.
// On failure it logs a warning and returns a texture that renders as the cyan debug color.
func LoadImageTexture(filename string, logger log.Logger) *material.ImageTexture {
	data, err := LoadImage(filename)
	if err != nil {
		if logger != nil {
			logger.Warningf("texture %s unavailable, using fallback: %v", filename, err)
		}
		return material.NewImageTexture(nil)
	}
	return material.NewImageTexture(data)
}
