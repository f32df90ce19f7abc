package scene

import (
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewFinalScene combines every primitive, material and texture in one showcase
func NewFinalScene(opts BuildOptions) *Scene {
	camera := renderer.DefaultCameraConfig()
	camera.AspectRatio = 1
	camera.ImageWidth = 400
	camera.SamplesPerPixel = 250
	camera.MaxDepth = 40
	camera.Background = integrator.NewSolidBackground(core.NewColor(0, 0, 0))
	camera.VFov = 40
	camera.LookFrom = core.NewVec3(478, 278, -600)
	camera.LookAt = core.NewVec3(278, 278, 0)

	sampler := opts.sampler()
	objects := geometry.NewHittableList()

	// Ground: a 20x20 grid of boxes of random height
	ground := material.NewLambertian(core.NewColor(0.48, 0.83, 0.53))
	boxes := geometry.NewHittableList()
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := float32(100)
			x0 := -1000 + float32(i)*w
			z0 := -1000 + float32(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	objects.Add(geometry.NewBVHFromList(boxes))

	light := material.NewDiffuseLightColor(core.NewColor(7, 7, 7))
	objects.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	objects.Add(geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewColor(0.7, 0.3, 0.1))))

	objects.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	objects.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewColor(0.8, 0.8, 0.9), 1)))

	// Glass shell filled with blue subsurface haze
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	objects.Add(boundary)
	objects.Add(geometry.NewConstantMediumColor(boundary, 0.2, core.NewColor(0.2, 0.4, 0.9)))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	objects.Add(geometry.NewConstantMediumColor(mist, 0.0001, core.NewColor(1, 1, 1)))

	earth := loaders.LoadImageTexture(filepath.Join(opts.TextureDir, EarthTextureFile), opts.logger())
	objects.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)))

	noise := material.NewNoiseTexture(0.2, sampler)
	objects.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(noise)))

	// Cluster of small white spheres, rotated and moved as one object
	white := material.NewLambertian(core.NewColor(0.73, 0.73, 0.73))
	cluster := geometry.NewHittableList()
	for range 1000 {
		cluster.Add(geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	objects.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVHFromList(cluster), 15),
		core.NewVec3(-100, 270, 395),
	))

	return finish("final", objects, camera, opts)
}
