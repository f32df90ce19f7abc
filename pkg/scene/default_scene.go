package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a small diffuse sphere resting on a large ground sphere
func NewDefaultScene(opts BuildOptions) *Scene {
	camera := renderer.DefaultCameraConfig()
	camera.Background = integrator.NewSkyBackground()
	camera.FocusDist = 1

	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))

	objects := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
	)

	return finish("default", objects, camera, opts)
}
