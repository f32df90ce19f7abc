package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const cornellSize = 555

func cornellCamera() renderer.CameraConfig {
	camera := renderer.DefaultCameraConfig()
	camera.AspectRatio = 1
	camera.ImageWidth = 600
	camera.SamplesPerPixel = 200
	camera.Background = integrator.NewSolidBackground(core.NewColor(0, 0, 0))
	camera.VFov = 40
	camera.LookFrom = core.NewVec3(278, 278, -800)
	camera.LookAt = core.NewVec3(278, 278, 0)
	return camera
}

// cornellWalls adds the five walls of the box plus a ceiling light
func cornellWalls(objects *geometry.HittableList, light geometry.Shape) *material.Lambertian {
	red := material.NewLambertian(core.NewColor(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewColor(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewColor(0.12, 0.45, 0.15))

	s := float32(cornellSize)
	objects.Add(geometry.NewQuad(core.NewVec3(s, 0, 0), core.NewVec3(0, s, 0), core.NewVec3(0, 0, s), green))
	objects.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, s, 0), core.NewVec3(0, 0, s), red))
	objects.Add(light)
	objects.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(s, 0, 0), core.NewVec3(0, 0, s), white))   // floor
	objects.Add(geometry.NewQuad(core.NewVec3(s, s, s), core.NewVec3(-s, 0, 0), core.NewVec3(0, 0, -s), white)) // ceiling
	objects.Add(geometry.NewQuad(core.NewVec3(0, 0, s), core.NewVec3(s, 0, 0), core.NewVec3(0, s, 0), white))   // back
	return white
}

// cornellBoxes returns the tall and short boxes, rotated and moved into place
func cornellBoxes(mat material.Material) (tall, short geometry.Shape) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))
	return tall, short
}

// NewCornellScene creates the classic Cornell box
func NewCornellScene(opts BuildOptions) *Scene {
	objects := geometry.NewHittableList()

	light := material.NewDiffuseLightColor(core.NewColor(15, 15, 15))
	white := cornellWalls(objects, geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))

	tall, short := cornellBoxes(white)
	objects.Add(tall)
	objects.Add(short)

	return finish("cornell", objects, cornellCamera(), opts)
}

// NewCornellSmokeScene replaces the Cornell boxes with dark smoke and white fog
func NewCornellSmokeScene(opts BuildOptions) *Scene {
	objects := geometry.NewHittableList()

	light := material.NewDiffuseLightColor(core.NewColor(7, 7, 7))
	white := cornellWalls(objects, geometry.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light))

	tall, short := cornellBoxes(white)
	objects.Add(geometry.NewConstantMediumColor(tall, 0.01, core.NewColor(0, 0, 0)))
	objects.Add(geometry.NewConstantMediumColor(short, 0.01, core.NewColor(1, 1, 1)))

	return finish("cornell-smoke", objects, cornellCamera(), opts)
}
