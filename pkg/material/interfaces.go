package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material decides how light scatters off, and is emitted from, a surface
type Material interface {
	// Scatter returns the continuation of rayIn at hit, or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the radiance the surface emits toward rayIn (black for non-emitters)
	Emitted(rayIn core.Ray, hit *HitRecord) core.Color
}

// ScatterResult contains the result of material scattering.
// PDF is reserved for importance-sampling integrators; the path integrator only
// uses it to tell specular from diffuse scattering.
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
	PDF         float32    // Sampling density of Scattered (0 for specular materials)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.PDF <= 0
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Surface normal, always facing against the incoming ray
	T         float32     // Parameter t along the ray
	U, V      float32     // Surface coordinates
	FrontFace bool        // Whether ray hit the front face
	Material  Material    // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// noEmission is embedded by materials that do not emit light
type noEmission struct{}

// Emitted returns black
func (noEmission) Emitted(rayIn core.Ray, hit *HitRecord) core.Color {
	return core.Color{}
}
