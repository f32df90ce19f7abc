package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewSpheresScene creates a field of small random spheres around three large ones.
// Diffuse spheres bounce upward during the shutter interval.
func NewSpheresScene(opts BuildOptions) *Scene {
	camera := renderer.DefaultCameraConfig()
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)
	camera.DefocusAngle = 0.6
	camera.FocusDist = 10

	sampler := opts.sampler()
	objects := geometry.NewHittableList()

	checker := material.NewCheckerColors(0.32, core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9))
	objects.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearance := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float32(a)+0.9*sampler.Get1D(), 0.2, float32(b)+0.9*sampler.Get1D())
			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center2 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				objects.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				objects.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	objects.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))))
	objects.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0)))

	return finish("spheres", objects, camera, opts)
}
