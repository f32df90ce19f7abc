package core

import (
	"golang.org/x/image/math/f32"
)

// Vec2 represents a 2D vector
type Vec2 f32.Vec2

// NewVec2 creates a new Vec2
func NewVec2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Vec3 represents a 3D vector of single-precision components
type Vec3 f32.Vec3

// Point3 is a position in space
type Point3 = Vec3

// Color is a linear RGB color. Components are nominally in [0,inf) before tone mapping.
type Color = Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// NewColor creates a new linear RGB color
func NewColor(r, g, b float32) Color {
	return Vec3{r, g, b}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

// Axis returns the component for axis n (0=X, 1=Y, 2=Z).
// Any other index falls back to X, matching AABB.AxisInterval.
func (v Vec3) Axis(n int) float32 {
	switch n {
	case 1:
		return v[1]
	case 2:
		return v[2]
	default:
		return v[0]
	}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float32) Vec3 {
	return Vec3{v[0] * scalar, v[1] * scalar, v[2] * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float32) Vec3 {
	return v.Multiply(1 / scalar)
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return v.Multiply(1 / length)
}

// NearZero reports whether every component is within 1e-4 of zero
func (v Vec3) NearZero() bool {
	const s = 1e-4
	return Abs(v[0]) < s && Abs(v[1]) < s && Abs(v[2]) < s
}

// Reflect mirrors v about the normal n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector v through a surface with normal n using Snell's law.
// etaiOverEtat is the ratio of refractive indices.
func (v Vec3) Refract(n Vec3, etaiOverEtat float32) Vec3 {
	cosTheta := Min(v.Negate().Dot(n), 1)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-Sqrt(Abs(1 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Lerp linearly interpolates between v (t=0) and other (t=1)
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return v.Multiply(1 - t).Add(other.Multiply(t))
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float32) Vec3 {
	return Vec3{
		max(minVal, min(maxVal, v[0])),
		max(minVal, min(maxVal, v[1])),
		max(minVal, min(maxVal, v[2])),
	}
}

// MaxComponent returns the largest component
func (v Vec3) MaxComponent() float32 {
	return max(v[0], v[1], v[2])
}

// Sanitize replaces NaN and infinite components with zero
func (v Vec3) Sanitize() Vec3 {
	for i := range v {
		if IsNaN(v[i]) || IsInf(v[i]) {
			v[i] = 0
		}
	}
	return v
}
