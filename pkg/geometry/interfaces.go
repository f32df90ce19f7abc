package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Implementations are immutable after construction and safe for concurrent use.
type Shape interface {
	// Hit returns the nearest intersection with t inside rayT.
	// The sampler is only consumed by probabilistic shapes such as participating media.
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool)
	BoundingBox() core.AABB
}
