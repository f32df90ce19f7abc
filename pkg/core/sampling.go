package core

import (
	"math/rand"
)

// Sampler provides uniform random draws in [0, 1).
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float32
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler from a fixed seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get2D returns two random float32 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float32(), r.random.Float32())
}

// Get3D returns three random float32 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float32(), r.random.Float32(), r.random.Float32())
}

// RandomRange returns a random float32 in [min, max)
func RandomRange(sampler Sampler, min, max float32) float32 {
	return min + (max-min)*sampler.Get1D()
}

// RandomInt returns a random integer in [min, max]
func RandomInt(sampler Sampler, min, max int) int {
	n := min + int(sampler.Get1D()*float32(max-min+1))
	// Get1D can round up to 1.0 in float32
	if n > max {
		n = max
	}
	return n
}

// RandomVec3 returns a vector with each component uniform in [min, max)
func RandomVec3(sampler Sampler, min, max float32) Vec3 {
	return NewVec3(
		RandomRange(sampler, min, max),
		RandomRange(sampler, min, max),
		RandomRange(sampler, min, max),
	)
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomVec3(sampler, -1, 1)
		lensq := p.LengthSquared()
		// Reject points too close to the center to normalize safely
		if 1e-30 < lensq && lensq <= 1 {
			return p.Multiply(1 / Sqrt(lensq))
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk on the XY plane (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(RandomRange(sampler, -1, 1), RandomRange(sampler, -1, 1), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted direction about +Z
func RandomCosineDirection(sampler Sampler) Vec3 {
	r1 := sampler.Get1D()
	r2 := sampler.Get1D()

	phi := 2 * Pi * r1
	x := Cos(phi) * Sqrt(r2)
	y := Sin(phi) * Sqrt(r2)
	z := Sqrt(1 - r2)

	return NewVec3(x, y, z)
}

// ONB is an orthonormal basis whose W axis is aligned with a given direction
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis around n
func NewONB(n Vec3) ONB {
	w := n.Normalize()
	a := NewVec3(1, 0, 0)
	if Abs(w[0]) > 0.9 {
		a = NewVec3(0, 1, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Transform maps a local-frame vector into world space
func (o ONB) Transform(v Vec3) Vec3 {
	return o.U.Multiply(v[0]).Add(o.V.Multiply(v[1])).Add(o.W.Multiply(v[2]))
}
