package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from world,
	// following at most depth bounces
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Color
}
