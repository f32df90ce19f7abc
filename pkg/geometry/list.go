package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is a linear aggregate of shapes
type HittableList struct {
	Objects []Shape
	bbox    core.AABB
}

// NewHittableList creates a list containing the given shapes
func NewHittableList(objects ...Shape) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, o := range objects {
		list.Add(o)
	}
	return list
}

// Add appends a shape and grows the bounding box
func (l *HittableList) Add(object Shape) {
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

// Len returns the number of shapes in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all shapes
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the union of all member boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
