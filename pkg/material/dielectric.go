package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	noEmission
	RefractiveIndex float32 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float32) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Entering the material divides by the index, exiting multiplies
	refractionRatio := d.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := core.NewInterval(-1, 1).Clamp(unitDirection.Negate().Dot(hit.Normal))
	sinTheta := core.Sqrt(1 - cosTheta*cosTheta)

	var direction core.Vec3
	if CannotRefract(refractionRatio, sinTheta) || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRayWithTime(hit.Point, direction, rayIn.Time),
		Attenuation: core.NewColor(1, 1, 1),
	}, true
}

// CannotRefract reports total internal reflection for the given ratio and incidence sine
func CannotRefract(refractionRatio, sinTheta float32) bool {
	return refractionRatio*sinTheta > 1
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float32) float32 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*core.Pow(1-cosine, 5)
}
