package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDisk creates an ellipse centered at center with semi-axes u and v
// (a circle when u and v are perpendicular and of equal length)
func NewDisk(center, u, v core.Vec3, mat material.Material) *Quad {
	return newQuad(center, u, v, mat, kindDisk)
}

// diskBoundingBox bounds the parallelogram center ± u ± v that circumscribes the disk
func diskBoundingBox(center, u, v core.Vec3) core.AABB {
	box := core.NewAABBFromPoints(center.Subtract(u).Subtract(v), center.Add(u).Add(v))
	return box.Union(core.NewAABBFromPoints(center.Add(u).Subtract(v), center.Subtract(u).Add(v)))
}
