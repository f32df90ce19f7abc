package renderer

import (
	"errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Configuration errors reported before any rendering starts
var (
	ErrInvalidSamples       = errors.New("samples per pixel must be at least 1")
	ErrInvalidDepth         = errors.New("max depth must be at least 1")
	ErrInvalidWidth         = errors.New("image width must be at least 1")
	ErrInvalidAspectRatio   = errors.New("aspect ratio must be positive and finite")
	ErrInvalidFocusDistance = errors.New("focus distance must be positive and finite")
	ErrInvalidFOV           = errors.New("vertical field of view must be in (0, 180) degrees")
	ErrDegenerateView       = errors.New("look-from, look-at and up vectors do not define a view")
)

// CameraConfig contains all camera and image parameters
type CameraConfig struct {
	AspectRatio     float32               // Width / height
	ImageWidth      int                   // Rendered image width in pixels
	SamplesPerPixel int                   // Number of rays per pixel
	MaxDepth        int                   // Maximum ray bounce depth
	Background      integrator.Background // Radiance for rays that escape the scene
	VFov            float32               // Vertical field of view in degrees
	LookFrom        core.Point3           // Camera position
	LookAt          core.Point3           // Point the camera looks at
	VUp             core.Vec3             // Camera-relative "up" direction
	DefocusAngle    float32               // Variation angle of rays through each pixel, in degrees
	FocusDist       float32               // Distance from LookFrom to the plane of perfect focus
	Stratified      bool                  // Sample pixels on a sqrt(spp) x sqrt(spp) grid
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Background:      integrator.NewSolidBackground(core.NewColor(0.7, 0.8, 1)),
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
		Stratified:      true,
	}
}

// ImageHeight derives the image height from width and aspect ratio (minimum 1)
func (c CameraConfig) ImageHeight() int {
	return max(1, int(float32(c.ImageWidth)/c.AspectRatio))
}

// Validate reports the first invalid setting, if any
func (c CameraConfig) Validate() error {
	finite := func(x float32) bool { return !core.IsNaN(x) && !core.IsInf(x) }

	switch {
	case c.SamplesPerPixel < 1:
		return ErrInvalidSamples
	case c.MaxDepth < 1:
		return ErrInvalidDepth
	case c.ImageWidth < 1:
		return ErrInvalidWidth
	case !(c.AspectRatio > 0) || !finite(c.AspectRatio):
		return ErrInvalidAspectRatio
	case !(c.FocusDist > 0) || !finite(c.FocusDist):
		return ErrInvalidFocusDistance
	case !(c.VFov > 0 && c.VFov < 180):
		return ErrInvalidFOV
	}

	w := c.LookFrom.Subtract(c.LookAt)
	if w.LengthSquared() == 0 || c.VUp.Cross(w).LengthSquared() == 0 {
		return ErrDegenerateView
	}
	return nil
}
