package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NoiseTexture is a marble-like procedural texture driven by Perlin turbulence
type NoiseTexture struct {
	Scale float32
	noise *Perlin
}

// NewNoiseTexture creates a noise texture; sampler seeds the Perlin tables
func NewNoiseTexture(scale float32, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{Scale: scale, noise: NewPerlin(sampler)}
}

// Value returns a gray level in [0,1] with stripes along z
func (n *NoiseTexture) Value(u, v float32, p core.Point3) core.Color {
	gray := 0.5 * (1 + core.Sin(n.Scale*p.Z()+10*n.noise.Turbulence(p, 7)))
	return core.NewColor(gray, gray, gray)
}

// UVDebugTexture shows surface coordinates as colors.
// U maps to red channel, V maps to green channel
type UVDebugTexture struct{}

// Value returns (u, v, 0)
func (UVDebugTexture) Value(u, v float32, p core.Point3) core.Color {
	return core.NewColor(u, v, 0)
}
