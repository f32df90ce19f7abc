package core

// Ray represents a ray with an origin, a direction and a time sample in [0,1]
type Ray struct {
	Origin    Point3
	Direction Vec3
	Time      float32
}

// NewRay creates a new ray at time zero
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayWithTime creates a new ray at the given time
func NewRayWithTime(origin Point3, direction Vec3, time float32) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
