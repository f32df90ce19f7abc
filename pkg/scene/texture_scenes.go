package scene

import (
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// EarthTextureFile is the image looked up in BuildOptions.TextureDir by the earth scenes
const EarthTextureFile = "earthmap.jpg"

// texturedCamera is the shared viewpoint of the texture demo scenes
func texturedCamera() renderer.CameraConfig {
	camera := renderer.DefaultCameraConfig()
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)
	return camera
}

// NewCheckeredScene creates two large spheres sharing a spatial checker texture
func NewCheckeredScene(opts BuildOptions) *Scene {
	checker := material.NewCheckerColors(0.32, core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9))
	mat := material.NewTexturedLambertian(checker)

	objects := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, mat),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, mat),
	)

	return finish("checkered", objects, texturedCamera(), opts)
}

// NewEarthScene creates a globe wrapped in an equirectangular image
func NewEarthScene(opts BuildOptions) *Scene {
	camera := texturedCamera()
	camera.LookFrom = core.NewVec3(0, 0, 12)

	earth := loaders.LoadImageTexture(filepath.Join(opts.TextureDir, EarthTextureFile), opts.logger())
	objects := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earth)),
	)

	return finish("earth", objects, camera, opts)
}

// NewPerlinScene creates a noise-textured sphere on a noise-textured ground
func NewPerlinScene(opts BuildOptions) *Scene {
	noise := material.NewNoiseTexture(4, opts.sampler())
	mat := material.NewTexturedLambertian(noise)

	objects := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, mat),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, mat),
	)

	return finish("perlin", objects, texturedCamera(), opts)
}
