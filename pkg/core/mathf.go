package core

import "math"

// Single-precision wrappers around the math package.

// Pi as a float32
const Pi float32 = math.Pi

// Inf returns positive infinity as a float32
func Inf() float32 {
	return float32(math.Inf(1))
}

func Sqrt(x float32) float32     { return float32(math.Sqrt(float64(x))) }
func Abs(x float32) float32      { return float32(math.Abs(float64(x))) }
func Min(a, b float32) float32   { return min(a, b) }
func Max(a, b float32) float32   { return max(a, b) }
func Floor(x float32) float32    { return float32(math.Floor(float64(x))) }
func Sin(x float32) float32      { return float32(math.Sin(float64(x))) }
func Cos(x float32) float32      { return float32(math.Cos(float64(x))) }
func Tan(x float32) float32      { return float32(math.Tan(float64(x))) }
func Acos(x float32) float32     { return float32(math.Acos(float64(x))) }
func Atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }
func Log(x float32) float32      { return float32(math.Log(float64(x))) }
func Pow(x, y float32) float32   { return float32(math.Pow(float64(x), float64(y))) }
func IsNaN(x float32) bool       { return x != x }
func IsInf(x float32) bool       { return math.IsInf(float64(x), 0) }

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float32) float32 {
	return degrees * Pi / 180
}
