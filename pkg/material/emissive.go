package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting surface
type DiffuseLight struct {
	Emit Texture // Emitted radiance
}

// NewDiffuseLight creates a new emitter from a texture
func NewDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// NewDiffuseLightColor creates an emitter with a fixed radiance
func NewDiffuseLightColor(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewDiffuseLightIntensity creates an emitter whose brightest channel equals intensity.
// The color only sets the hue; a near-zero color is treated as white.
func NewDiffuseLightIntensity(color core.Color, intensity float32) *DiffuseLight {
	if color.NearZero() || color.MaxComponent() <= 0 {
		color = core.NewColor(1, 1, 1)
	}
	return NewDiffuseLightColor(color.Multiply(intensity / color.MaxComponent()))
}

// Scatter implements the Material interface for emissive materials.
// Emitters absorb every incoming ray.
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emitted light for front-facing hits
func (e *DiffuseLight) Emitted(rayIn core.Ray, hit *HitRecord) core.Color {
	if !hit.FrontFace {
		return core.Color{}
	}
	return e.Emit.Value(hit.U, hit.V, hit.Point)
}
