package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a shape by a fixed offset
type Translate struct {
	Object Shape
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears displaced by offset
func NewTranslate(object Shape, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Offset(offset),
	}
}

// Hit intersects the ray in object space and moves the hit back
func (tr *Translate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	offsetRay := core.NewRayWithTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, ok := tr.Object.Hit(offsetRay, rayT, sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the translated box
func (tr *Translate) BoundingBox() core.AABB {
	return tr.bbox
}

// mat3 is a row-major 3x3 matrix
type mat3 [3]core.Vec3

func (m mat3) apply(v core.Vec3) core.Vec3 {
	return core.NewVec3(m[0].Dot(v), m[1].Dot(v), m[2].Dot(v))
}

func (m mat3) multiply(o mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

func (m mat3) transpose() mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

func rotationX(theta float32) mat3 {
	s, c := core.Sin(theta), core.Cos(theta)
	return mat3{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

func rotationY(theta float32) mat3 {
	s, c := core.Sin(theta), core.Cos(theta)
	return mat3{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
}

func rotationZ(theta float32) mat3 {
	s, c := core.Sin(theta), core.Cos(theta)
	return mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

// Rotate turns a shape about the origin by Euler angles
type Rotate struct {
	Object        Shape
	objectToWorld mat3
	worldToObject mat3
	bbox          core.AABB
}

// NewRotate rotates object by angles (in degrees) about X, Y and Z.
// Z is applied first, then Y, then X.
func NewRotate(object Shape, angles core.Vec3) *Rotate {
	toWorld := rotationX(core.DegreesToRadians(angles.X())).
		multiply(rotationY(core.DegreesToRadians(angles.Y()))).
		multiply(rotationZ(core.DegreesToRadians(angles.Z())))

	r := &Rotate{
		Object:        object,
		objectToWorld: toWorld,
		worldToObject: toWorld.transpose(),
	}

	inner := object.BoundingBox()
	lo := core.NewVec3(core.Inf(), core.Inf(), core.Inf())
	hi := lo.Negate()
	for i := 0; i < 8; i++ {
		p := toWorld.apply(inner.Corner(i))
		for axis := 0; axis < 3; axis++ {
			lo[axis] = min(lo[axis], p[axis])
			hi[axis] = max(hi[axis], p[axis])
		}
	}
	r.bbox = core.NewAABBFromPoints(lo, hi)

	return r
}

// NewRotateY rotates object about the Y axis
func NewRotateY(object Shape, degrees float32) *Rotate {
	return NewRotate(object, core.NewVec3(0, degrees, 0))
}

// Hit intersects the ray in object space and rotates the hit back
func (r *Rotate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	rotated := core.NewRayWithTime(
		r.worldToObject.apply(ray.Origin),
		r.worldToObject.apply(ray.Direction),
		ray.Time,
	)

	hit, ok := r.Object.Hit(rotated, rayT, sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	hit.Point = r.objectToWorld.apply(hit.Point)
	hit.Normal = r.objectToWorld.apply(hit.Normal)
	return hit, true
}

// BoundingBox returns the world-space box of the rotated shape
func (r *Rotate) BoundingBox() core.AABB {
	return r.bbox
}
