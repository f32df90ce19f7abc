package output

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// intensity clamps gamma-corrected channels below 1 so that 256·x never reaches 256
var intensity = core.NewInterval(0, 0.999)

// linearToGamma applies gamma 2 correction
func linearToGamma(linear float32) float32 {
	if linear > 0 {
		return core.Sqrt(linear)
	}
	return 0
}

// ToRGB8 converts a linear color to 8-bit gamma-corrected channels
func ToRGB8(c core.Color) (r, g, b uint8) {
	return channel(c.X()), channel(c.Y()), channel(c.Z())
}

func channel(x float32) uint8 {
	if core.IsNaN(x) {
		x = 0
	}
	return uint8(int(256 * intensity.Clamp(linearToGamma(x))))
}
