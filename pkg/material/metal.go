package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	noEmission
	Albedo core.Color // Metal color
	Fuzz   float32    // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material.
// A fuzz outside [0,1] is forced to 1.
func NewMetal(albedo core.Color, fuzz float32) *Metal {
	if !core.NewInterval(0, 1).Contains(fuzz) {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal).Normalize()
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))
	}

	scattered := core.NewRayWithTime(hit.Point, reflected, rayIn.Time)

	// Directions pointing into the surface are absorbed
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}
