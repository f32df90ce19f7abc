package core

// minAxisThickness is the smallest extent an AABB axis may have after construction
const minAxisThickness float32 = 1e-4

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing and is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from per-axis intervals, padding thin axes
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// NewAABBFromPoints creates an AABB with a and b as opposite corners, padding thin axes
func NewAABBFromPoints(a, b Point3) AABB {
	return AABB{
		X: NewInterval(min(a[0], b[0]), max(a[0], b[0])),
		Y: NewInterval(min(a[1], b[1]), max(a[1], b[1])),
		Z: NewInterval(min(a[2], b[2]), max(a[2], b[2])),
	}.padToMinimums()
}

func (aabb AABB) padToMinimums() AABB {
	if aabb.X.Size() < minAxisThickness {
		aabb.X = aabb.X.Expand(minAxisThickness)
	}
	if aabb.Y.Size() < minAxisThickness {
		aabb.Y = aabb.Y.Expand(minAxisThickness)
	}
	if aabb.Z.Size() < minAxisThickness {
		aabb.Z = aabb.Z.Expand(minAxisThickness)
	}
	return aabb
}

// AxisInterval returns the interval for axis n (1=Y, 2=Z, anything else X)
func (aabb AABB) AxisInterval(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Ray is parallel to this slab
		if direction == 0 {
			if origin < ax.Min || origin > ax.Max {
				return false
			}
			continue
		}

		invDirection := 1 / direction
		t0 := (ax.Min - origin) * invDirection
		t1 := (ax.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another.
// Axes are not re-padded.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: aabb.X.Union(other.X),
		Y: aabb.Y.Union(other.Y),
		Z: aabb.Z.Union(other.Z),
	}
}

// Offset translates the box by v
func (aabb AABB) Offset(v Vec3) AABB {
	return AABB{
		X: aabb.X.Offset(v[0]),
		Y: aabb.Y.Offset(v[1]),
		Z: aabb.Z.Offset(v[2]),
	}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
// X must strictly beat Y and Z; Y must strictly beat Z; otherwise Z wins.
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() {
		if aabb.X.Size() > aabb.Z.Size() {
			return 0
		}
		return 2
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}

// Corner returns one of the 8 corners, selected by the low three bits of i (bit 0=X, 1=Y, 2=Z)
func (aabb AABB) Corner(i int) Point3 {
	pick := func(iv Interval, bit int) float32 {
		if i&bit != 0 {
			return iv.Max
		}
		return iv.Min
	}
	return NewVec3(pick(aabb.X, 1), pick(aabb.Y, 2), pick(aabb.Z, 4))
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Point3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)/2,
		(aabb.Y.Min+aabb.Y.Max)/2,
		(aabb.Z.Min+aabb.Z.Max)/2,
	)
}

// IsEmpty reports whether any axis interval is empty
func (aabb AABB) IsEmpty() bool {
	return aabb.X.Min > aabb.X.Max || aabb.Y.Min > aabb.Y.Max || aabb.Z.Min > aabb.Z.Max
}
