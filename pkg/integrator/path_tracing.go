package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// shadowAcneEpsilon keeps scattered rays from re-hitting the surface they left
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
type PathTracingIntegrator struct {
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A nil background renders escaped rays black.
func NewPathTracingIntegrator(background Background) *PathTracingIntegrator {
	if background == nil {
		background = NewSolidBackground(core.Color{})
	}
	return &PathTracingIntegrator{Background: background}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(shadowAcneEpsilon, core.Inf()), sampler)
	if !isHit {
		return pt.Background.Value(ray)
	}

	colorEmitted := hit.Material.Emitted(ray, &hit)

	scatter, didScatter := hit.Material.Scatter(ray, &hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth-1))

	return colorEmitted.Add(colorScattered)
}
