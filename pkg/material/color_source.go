package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and 3D point p.
	// UV is used for image textures, the point for procedural textures
	Value(u, v float32, p core.Point3) core.Color
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float32, p core.Point3) core.Color {
	return s.Color
}

// CheckerTexture alternates between two textures in a 3D grid of cubes
type CheckerTexture struct {
	invScale float32
	Even     Texture
	Odd      Texture
}

// NewCheckerTexture creates a checker with cubes of edge length scale
func NewCheckerTexture(scale float32, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{invScale: 1 / scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker between two solid colors
func NewCheckerColors(scale float32, even, odd core.Color) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value picks Even or Odd by the parity of the cell containing p
func (c *CheckerTexture) Value(u, v float32, p core.Point3) core.Color {
	x := int(core.Floor(c.invScale * p.X()))
	y := int(core.Floor(c.invScale * p.Y()))
	z := int(core.Floor(c.invScale * p.Z()))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
