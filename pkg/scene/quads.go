package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewQuadsScene creates five colored planar shapes facing the camera from every side
func NewQuadsScene(opts BuildOptions) *Scene {
	camera := renderer.DefaultCameraConfig()
	camera.AspectRatio = 1
	camera.VFov = 80
	camera.LookFrom = core.NewVec3(0, 0, 9)
	camera.LookAt = core.NewVec3(0, 0, 0)

	leftRed := material.NewLambertian(core.NewColor(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewColor(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewColor(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewColor(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewColor(0.2, 0.8, 0.8))

	objects := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewTriangle(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewDisk(core.NewVec3(0, 3, 3), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -2), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	return finish("quads", objects, camera, opts)
}

// NewSimpleLightScene creates Perlin spheres lit only by a rectangle and a sphere light
func NewSimpleLightScene(opts BuildOptions) *Scene {
	camera := renderer.DefaultCameraConfig()
	camera.Background = integrator.NewSolidBackground(core.NewColor(0, 0, 0))
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)

	noise := material.NewTexturedLambertian(material.NewNoiseTexture(4, opts.sampler()))
	light := material.NewDiffuseLightIntensity(core.NewColor(1, 1, 1), 4)

	objects := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, noise),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, noise),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
	)

	return finish("simple-light", objects, camera, opts)
}
