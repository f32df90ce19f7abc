package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background supplies radiance for rays that escape the scene
type Background interface {
	Value(ray core.Ray) core.Color
}

// SolidBackground is a uniform environment color
type SolidBackground struct {
	Color core.Color
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Color) *SolidBackground {
	return &SolidBackground{Color: color}
}

// Value returns the constant color
func (b *SolidBackground) Value(ray core.Ray) core.Color {
	return b.Color
}

// GradientBackground blends vertically from Bottom (looking down) to Top (looking up)
type GradientBackground struct {
	Bottom core.Color
	Top    core.Color
}

// NewSkyBackground creates the white-to-blue sky gradient
func NewSkyBackground() *GradientBackground {
	return &GradientBackground{
		Bottom: core.NewColor(1, 1, 1),
		Top:    core.NewColor(0.5, 0.7, 1),
	}
}

// Value interpolates on the normalized ray direction's Y component
func (b *GradientBackground) Value(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y() + 1)
	return b.Bottom.Lerp(b.Top, a)
}
