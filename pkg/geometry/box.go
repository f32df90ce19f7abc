package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBox returns the closed box with opposite corners a and b as six outward-facing quads
func NewBox(a, b core.Point3, mat material.Material) *HittableList {
	lo := core.NewVec3(min(a.X(), b.X()), min(a.Y(), b.Y()), min(a.Z(), b.Z()))
	hi := core.NewVec3(max(a.X(), b.X()), max(a.Y(), b.Y()), max(a.Z(), b.Z()))

	dx := core.NewVec3(hi.X()-lo.X(), 0, 0)
	dy := core.NewVec3(0, hi.Y()-lo.Y(), 0)
	dz := core.NewVec3(0, 0, hi.Z()-lo.Z())

	return NewHittableList(
		NewQuad(core.NewVec3(lo.X(), lo.Y(), hi.Z()), dx, dy, mat),          // front
		NewQuad(core.NewVec3(hi.X(), lo.Y(), hi.Z()), dz.Negate(), dy, mat), // right
		NewQuad(core.NewVec3(hi.X(), lo.Y(), lo.Z()), dx.Negate(), dy, mat), // back
		NewQuad(core.NewVec3(lo.X(), lo.Y(), lo.Z()), dz, dy, mat),          // left
		NewQuad(core.NewVec3(lo.X(), hi.Y(), hi.Z()), dx, dz.Negate(), mat), // top
		NewQuad(core.NewVec3(lo.X(), lo.Y(), lo.Z()), dx, dz, mat),          // bottom
	)
}
