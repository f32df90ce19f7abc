package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseSampling selects how Lambertian picks scatter directions
type DiffuseSampling int

const (
	// CosineONB samples exactly cosine-weighted directions in a basis aligned with the normal
	CosineONB DiffuseSampling = iota
	// NormalPlusUnitVector samples normal + random unit vector
	NormalPlusUnitVector
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	noEmission
	Albedo   Texture // Base color/reflectance (can be solid or textured)
	Sampling DiffuseSampling
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	var direction core.Vec3
	switch l.Sampling {
	case NormalPlusUnitVector:
		direction = hit.Normal.Add(core.RandomUnitVector(sampler))
		// Catch degenerate scatter direction
		if direction.NearZero() {
			direction = hit.Normal
		}
	default:
		direction = core.NewONB(hit.Normal).Transform(core.RandomCosineDirection(sampler))
		if direction.NearZero() {
			direction = hit.Normal
		}
	}

	// PDF: cos(θ) / π where θ is angle from normal
	cosTheta := max(direction.Normalize().Dot(hit.Normal), 0)

	return ScatterResult{
		Scattered:   core.NewRayWithTime(hit.Point, direction, rayIn.Time),
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         cosTheta / core.Pi,
	}, true
}
