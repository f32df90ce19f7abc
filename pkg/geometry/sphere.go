package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly over the shutter interval
type Sphere struct {
	Center   core.Ray // Center at time 0 plus displacement per unit time
	Radius   float32
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Point3, radius float32, mat material.Material) *Sphere {
	radius = max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   core.NewRay(center, core.Vec3{}),
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere whose center moves from center1 at time 0 to center2 at time 1
func NewMovingSphere(center1, center2 core.Point3, radius float32, mat material.Material) *Sphere {
	radius = max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))
	return &Sphere{
		Center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   radius,
		Material: mat,
		bbox:     box1.Union(box2),
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	center := s.Center.At(ray.Time)
	oc := center.Subtract(ray.Origin)

	// Quadratic equation coefficients with b = -2h
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}
	sqrtD := core.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return material.HitRecord{}, false
		}
	}

	hit := material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = SphereUV(outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// SphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the Y axis starting at -X, v runs from the south pole (0) to the north pole (1)
func SphereUV(p core.Point3) (u, v float32) {
	theta := core.Acos(-p.Y())
	phi := core.Atan2(-p.Z(), p.X()) + core.Pi
	return phi / (2 * core.Pi), theta / core.Pi
}
