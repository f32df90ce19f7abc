package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is an interior node of a Bounding Volume Hierarchy.
// Children are either other nodes or leaf shapes.
type BVHNode struct {
	Left  Shape
	Right Shape
	bbox  core.AABB
}

// NewBVH constructs a BVH from a slice of shapes.
// The input slice is not modified.
func NewBVH(shapes []Shape) *BVHNode {
	if len(shapes) == 0 {
		return &BVHNode{bbox: core.EmptyAABB}
	}

	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return buildBVH(shapesCopy)
}

// NewBVHFromList builds a BVH over the members of a list
func NewBVHFromList(list *HittableList) *BVHNode {
	return NewBVH(list.Objects)
}

// buildBVH recursively builds the tree by median split along the longest axis.
// shapes is reordered in place.
func buildBVH(shapes []Shape) *BVHNode {
	bbox := core.EmptyAABB
	for _, s := range shapes {
		bbox = bbox.Union(s.BoundingBox())
	}
	axis := bbox.LongestAxis()

	var left, right Shape
	switch len(shapes) {
	case 1:
		left, right = shapes[0], shapes[0]
	case 2:
		left, right = shapes[0], shapes[1]
	default:
		sort.SliceStable(shapes, func(i, j int) bool {
			return shapes[i].BoundingBox().AxisInterval(axis).Min < shapes[j].BoundingBox().AxisInterval(axis).Min
		})
		mid := len(shapes) / 2
		left = buildBVH(shapes[:mid])
		right = buildBVH(shapes[mid:])
	}

	return &BVHNode{
		Left:  left,
		Right: right,
		bbox:  left.BoundingBox().Union(right.BoundingBox()),
	}
}

// Hit tests if a ray intersects any shape in the BVH
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	if n == nil || n.Left == nil {
		return material.HitRecord{}, false
	}
	if !n.bbox.Hit(ray, rayT) {
		return material.HitRecord{}, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)

	// The right subtree only needs to beat the left's result
	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, rightT, sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the overall bounding box of the subtree
func (n *BVHNode) BoundingBox() core.AABB {
	if n == nil {
		return core.EmptyAABB
	}
	return n.bbox
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	Nodes    int // Interior nodes
	Leaves   int // Distinct leaf slots (a single-shape node counts once)
	MaxDepth int
}

// Stats walks the tree and collects structural statistics
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	if n == nil || n.Left == nil {
		return
	}
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	children := []Shape{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}
