package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// parallelEpsilon rejects rays nearly parallel to the plane
const parallelEpsilon = 1e-8

// quadKind selects the interior test applied in the plane
type quadKind int

const (
	kindRectangle quadKind = iota
	kindTriangle
	kindDisk
)

// Quad is a planar primitive spanned by a corner Q and two edge vectors U and V.
// The same plane intersection serves rectangles, triangles and disks.
type Quad struct {
	Q        core.Point3 // Corner (or center for disks)
	U        core.Vec3   // First edge vector
	V        core.Vec3   // Second edge vector
	Normal   core.Vec3   // Unit normal (U × V normalized)
	Material material.Material
	d        float32   // Plane equation constant: normal · p = d
	w        core.Vec3 // Cached n / (n·n) for planar coordinates
	kind     quadKind
	bbox     core.AABB
}

func newQuad(q, u, v core.Vec3, mat material.Material, kind quadKind) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	quad := &Quad{
		Q:        q,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		d:        normal.Dot(q),
		w:        n.Divide(n.Dot(n)),
		kind:     kind,
	}

	if kind == kindDisk {
		quad.bbox = diskBoundingBox(q, u, v)
	} else {
		quad.bbox = core.NewAABBFromPoints(q, q.Add(u).Add(v)).
			Union(core.NewAABBFromPoints(q.Add(u), q.Add(v)))
	}
	return quad
}

// NewQuad creates a parallelogram from a corner point and two edge vectors
func NewQuad(q, u, v core.Vec3, mat material.Material) *Quad {
	return newQuad(q, u, v, mat, kindRectangle)
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if core.Abs(denominator) < parallelEpsilon {
		return material.HitRecord{}, false
	}

	t := (q.d - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return material.HitRecord{}, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Q)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))

	u, v, inside := q.interior(alpha, beta)
	if !inside {
		return material.HitRecord{}, false
	}

	hit := material.HitRecord{
		T:        t,
		Point:    hitPoint,
		U:        u,
		V:        v,
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// interior reports whether planar coordinates fall inside the shape and returns its UV there
func (q *Quad) interior(alpha, beta float32) (u, v float32, ok bool) {
	switch q.kind {
	case kindTriangle:
		if alpha <= 0 || beta <= 0 || alpha+beta >= 1 {
			return 0, 0, false
		}
		return alpha, beta, true
	case kindDisk:
		if alpha*alpha+beta*beta > 1 {
			return 0, 0, false
		}
		return alpha/2 + 0.5, beta/2 + 0.5, true
	default:
		unit := core.NewInterval(0, 1)
		if !unit.Contains(alpha) || !unit.Contains(beta) {
			return 0, 0, false
		}
		return alpha, beta, true
	}
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
