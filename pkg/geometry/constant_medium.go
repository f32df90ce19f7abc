package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// exitEpsilon separates the exit search from the entry hit
const exitEpsilon = 0.0001

// ConstantMedium is a homogeneous participating medium bounded by a convex shape
type ConstantMedium struct {
	Boundary      Shape
	negInvDensity float32
	PhaseFunction material.Material
}

// NewConstantMedium creates a medium with an isotropic phase function driven by a texture
func NewConstantMedium(boundary Shape, density float32, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// NewConstantMediumColor creates a medium with a solid-color isotropic phase function
func NewConstantMediumColor(boundary Shape, density float32, albedo core.Color) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// Hit samples a free-flight distance inside the boundary and reports a scattering event
// if it lands before the ray leaves the medium
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.UniverseInterval, sampler)
	if !ok {
		return material.HitRecord{}, false
	}
	exit, ok := m.Boundary.Hit(ray, core.NewInterval(entry.T+exitEpsilon, core.Inf()), sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	tEntry := max(entry.T, rayT.Min)
	tExit := min(exit.T, rayT.Max)
	if tEntry >= tExit {
		return material.HitRecord{}, false
	}
	tEntry = max(tEntry, 0)

	rayLength := ray.Direction.Length()
	distanceInside := (tExit - tEntry) * rayLength
	hitDistance := m.negInvDensity * core.Log(sampler.Get1D())
	if hitDistance > distanceInside {
		return material.HitRecord{}, false
	}

	t := tEntry + hitDistance/rayLength
	return material.HitRecord{
		T:     t,
		Point: ray.At(t),
		// The medium has no surface; normal and face are arbitrary
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
