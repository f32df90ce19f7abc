package core

// Interval is a closed range [Min, Max] over float32
type Interval struct {
	Min, Max float32
}

var (
	// EmptyInterval contains nothing and is the identity for Union
	EmptyInterval = Interval{Min: Inf(), Max: -Inf()}
	// UniverseInterval spans every real number
	UniverseInterval = Interval{Min: -Inf(), Max: Inf()}
)

// NewInterval creates a new interval
func NewInterval(min, max float32) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns Max - Min
func (i Interval) Size() float32 {
	return i.Max - i.Min
}

// Contains reports whether x lies in [Min, Max]
func (i Interval) Contains(x float32) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies in (Min, Max)
func (i Interval) Surrounds(x float32) bool {
	return i.Min < x && x < i.Max
}

// Clamp limits x to the interval
func (i Interval) Clamp(x float32) float32 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand pads the interval by delta/2 on each side
func (i Interval) Expand(delta float32) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// Union returns the smallest interval containing both intervals
func (i Interval) Union(other Interval) Interval {
	return Interval{Min: min(i.Min, other.Min), Max: max(i.Max, other.Max)}
}

// Offset shifts both ends by displacement
func (i Interval) Offset(displacement float32) Interval {
	return Interval{Min: i.Min + displacement, Max: i.Max + displacement}
}
