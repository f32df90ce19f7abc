package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters uniformly in all directions
type Isotropic struct {
	noEmission
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function from a texture
func NewIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// NewIsotropicColor creates an isotropic phase function with a solid color
func NewIsotropicColor(albedo core.Color) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Scatter implements the Material interface for isotropic scattering
func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayWithTime(hit.Point, core.RandomUnitVector(sampler), rayIn.Time),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
		PDF:         1 / (4 * core.Pi),
	}, true
}
