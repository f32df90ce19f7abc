package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTriangle creates the triangle with vertices q, q+u and q+v.
// Hits report barycentric (alpha, beta) as UV.
func NewTriangle(q, u, v core.Vec3, mat material.Material) *Quad {
	return newQuad(q, u, v, mat, kindTriangle)
}

// NewTriangleFromVertices creates a triangle from three points
func NewTriangleFromVertices(v0, v1, v2 core.Point3, mat material.Material) *Quad {
	return NewTriangle(v0, v1.Subtract(v0), v2.Subtract(v0), mat)
}
