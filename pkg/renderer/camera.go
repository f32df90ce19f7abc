package renderer

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Camera generates primary rays for rendering
type Camera struct {
	config       CameraConfig
	imageHeight  int
	center       core.Point3 // Camera center
	pixel00      core.Point3 // Location of pixel 0, 0
	pixelDeltaU  core.Vec3   // Offset to pixel to the right
	pixelDeltaV  core.Vec3   // Offset to pixel below
	u, v, w      core.Vec3   // Camera frame basis vectors
	defocusDiskU core.Vec3   // Defocus disk horizontal radius
	defocusDiskV core.Vec3   // Defocus disk vertical radius
	sqrtSpp      int         // Stratification grid size
	recipSqrtSpp float32
	sampleScale  float32 // Weight of each sample in the pixel average
}

// NewCamera validates config and precomputes the camera frame
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("camera config: %w", err)
	}

	c := &Camera{
		config:      config,
		imageHeight: config.ImageHeight(),
		center:      config.LookFrom,
	}

	// Viewport dimensions
	theta := core.DegreesToRadians(config.VFov)
	h := core.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDist
	viewportWidth := viewportHeight * float32(config.ImageWidth) / float32(c.imageHeight)

	// Orthonormal camera basis
	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.VUp.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Multiply(-viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float32(config.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float32(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDist * core.Tan(core.DegreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	c.sqrtSpp = max(1, int(core.Sqrt(float32(config.SamplesPerPixel))))
	c.recipSqrtSpp = 1 / float32(c.sqrtSpp)
	c.sampleScale = 1 / float32(c.SamplesPerPixel())

	return c, nil
}

// Config returns the validated configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.config.ImageWidth
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// SamplesPerPixel returns the number of rays actually traced per pixel.
// With stratification this is the largest square not above the configured count.
func (c *Camera) SamplesPerPixel() int {
	if c.config.Stratified {
		return c.sqrtSpp * c.sqrtSpp
	}
	return c.config.SamplesPerPixel
}

// SamplePixel estimates pixel (i, j) by averaging radiance over the pixel's samples.
// Non-finite sample components are dropped to zero before accumulation.
func (c *Camera) SamplePixel(i, j int, sampler core.Sampler, radiance func(core.Ray) core.Color) core.Color {
	var sum core.Color
	if c.config.Stratified {
		for sj := 0; sj < c.sqrtSpp; sj++ {
			for si := 0; si < c.sqrtSpp; si++ {
				offset := c.sampleSquareStratified(si, sj, sampler)
				sum = sum.Add(radiance(c.rayThrough(i, j, offset, sampler)).Sanitize())
			}
		}
	} else {
		for s := 0; s < c.config.SamplesPerPixel; s++ {
			offset := sampleSquare(sampler)
			sum = sum.Add(radiance(c.rayThrough(i, j, offset, sampler)).Sanitize())
		}
	}
	return sum.Multiply(c.sampleScale)
}

// GetRay returns a randomly jittered ray through pixel (i, j)
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	return c.rayThrough(i, j, sampleSquare(sampler), sampler)
}

// rayThrough builds a ray from the defocus disk toward pixel (i, j) displaced by offset
func (c *Camera) rayThrough(i, j int, offset core.Vec2, sampler core.Sampler) core.Ray {
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float32(i) + offset[0])).
		Add(c.pixelDeltaV.Multiply(float32(j) + offset[1]))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayWithTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// sampleSquareStratified returns a random offset inside grid cell (si, sj) of the unit square centered at 0
func (c *Camera) sampleSquareStratified(si, sj int, sampler core.Sampler) core.Vec2 {
	r := sampler.Get2D()
	return core.NewVec2(
		(float32(si)+r[0])*c.recipSqrtSpp-0.5,
		(float32(sj)+r[1])*c.recipSqrtSpp-0.5,
	)
}

// sampleSquare returns a random offset in [-0.5, 0.5)²
func sampleSquare(sampler core.Sampler) core.Vec2 {
	r := sampler.Get2D()
	return core.NewVec2(r[0]-0.5, r[1]-0.5)
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Point3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p[0])).Add(c.defocusDiskV.Multiply(p[1]))
}
