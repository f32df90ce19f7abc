package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageSource is a 2D grid of 8-bit RGB samples
type ImageSource interface {
	Width() int
	Height() int
	PixelRGB8(x, y int) (r, g, b uint8)
}

// imageGamma converts stored sRGB-ish bytes back to linear
const imageGamma = 2.2

// missingTextureColor is returned when no image data is available
var missingTextureColor = core.NewColor(0, 1, 1)

// ImageTexture provides color from a 2D image using nearest-neighbor lookup
type ImageTexture struct {
	Image ImageSource
}

// NewImageTexture creates a new image texture. A nil image renders as cyan.
func NewImageTexture(image ImageSource) *ImageTexture {
	return &ImageTexture{Image: image}
}

// Value samples the texture at the given UV coordinates
func (t *ImageTexture) Value(u, v float32, p core.Point3) core.Color {
	if t.Image == nil || t.Image.Width() <= 0 || t.Image.Height() <= 0 {
		return missingTextureColor
	}

	unit := core.NewInterval(0, 1)
	u = unit.Clamp(u)
	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	v = 1 - unit.Clamp(v)

	x := int(u * float32(t.Image.Width()-1))
	y := int(v * float32(t.Image.Height()-1))

	r, g, b := t.Image.PixelRGB8(x, y)
	return core.NewColor(linearize(r), linearize(g), linearize(b))
}

func linearize(c uint8) float32 {
	return core.Pow(float32(c)/255, imageGamma)
}
