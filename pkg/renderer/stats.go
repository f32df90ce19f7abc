package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	Workers         int           // Number of concurrent workers
	SamplesPerPixel int           // Primary rays traced per pixel
	RowsCompleted   int           // Scanlines fully rendered
	TotalSamples    int64         // Primary rays traced across the image
	Duration        time.Duration // Wall-clock render time
}

// RaysPerSecond returns the primary-ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// Complete reports whether every scanline was rendered
func (s RenderStats) Complete() bool {
	return s.RowsCompleted == s.Height
}

// Luminance returns the Rec. 709 relative luminance of a linear color
func Luminance(c core.Color) float32 {
	return 0.2126*c.X() + 0.7152*c.Y() + 0.0722*c.Z()
}

// AverageLuminance returns the mean linear luminance of the framebuffer
func AverageLuminance(fb *core.Framebuffer) float32 {
	if fb == nil || len(fb.Pixels) == 0 {
		return 0
	}

	// Accumulate in float64 to keep large images stable
	var total float64
	for _, p := range fb.Pixels {
		total += float64(Luminance(p))
	}
	return float32(total / float64(len(fb.Pixels)))
}
