package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCameraConfig_Validate(t *testing.T) {
	nan := float32(math.NaN())

	tests := []struct {
		name   string
		modify func(c *CameraConfig)
		err    error
	}{
		{"defaults are valid", func(c *CameraConfig) {}, nil},
		{"zero samples", func(c *CameraConfig) { c.SamplesPerPixel = 0 }, ErrInvalidSamples},
		{"negative samples", func(c *CameraConfig) { c.SamplesPerPixel = -4 }, ErrInvalidSamples},
		{"zero depth", func(c *CameraConfig) { c.MaxDepth = 0 }, ErrInvalidDepth},
		{"zero width", func(c *CameraConfig) { c.ImageWidth = 0 }, ErrInvalidWidth},
		{"zero aspect", func(c *CameraConfig) { c.AspectRatio = 0 }, ErrInvalidAspectRatio},
		{"NaN aspect", func(c *CameraConfig) { c.AspectRatio = nan }, ErrInvalidAspectRatio},
		{"negative focus", func(c *CameraConfig) { c.FocusDist = -1 }, ErrInvalidFocusDistance},
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }, ErrInvalidFOV},
		{"straight angle fov", func(c *CameraConfig) { c.VFov = 180 }, ErrInvalidFOV},
		{"look at self", func(c *CameraConfig) { c.LookAt = c.LookFrom }, ErrDegenerateView},
		{"up parallel to view", func(c *CameraConfig) { c.VUp = core.NewVec3(0, 0, 3) }, ErrDegenerateView},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			tt.modify(&config)

			err := config.Validate()
			if !errors.Is(err, tt.err) {
				t.Errorf("Expected %v, got %v", tt.err, err)
			}

			_, camErr := NewCamera(config)
			if !errors.Is(camErr, tt.err) {
				t.Errorf("NewCamera: expected %v, got %v", tt.err, camErr)
			}
		})
	}
}

func TestCameraConfig_ImageHeight(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		aspect float32
		height int
	}{
		{"16:9", 400, 16.0 / 9.0, 225},
		{"square", 100, 1, 100},
		{"very wide clamps to one", 10, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.ImageWidth = tt.width
			config.AspectRatio = tt.aspect
			if got := config.ImageHeight(); got != tt.height {
				t.Errorf("Expected height %d, got %d", tt.height, got)
			}
		})
	}
}
