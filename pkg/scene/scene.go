package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  geometry.Shape
	Camera renderer.CameraConfig
}

// BuildOptions controls how a built-in scene is assembled
type BuildOptions struct {
	Seed       int64      // Seed for randomly placed objects and procedural textures
	TextureDir string     // Directory searched for image textures
	Logger     log.Logger // Receives texture warnings and build summaries; may be nil
}

// sampler returns a deterministic sampler for scene construction
func (o BuildOptions) sampler() core.Sampler {
	return core.NewSeededSampler(o.Seed)
}

func (o BuildOptions) logger() log.Logger {
	if o.Logger == nil {
		return log.New("scene")
	}
	return o.Logger
}

// finish wraps the objects in a BVH when there are enough of them to benefit
func finish(name string, objects *geometry.HittableList, camera renderer.CameraConfig, opts BuildOptions) *Scene {
	logger := opts.logger()

	var world geometry.Shape = objects
	if objects.Len() > 4 {
		bvh := geometry.NewBVHFromList(objects)
		stats := bvh.Stats()
		logger.Debugf("scene %s: BVH with %d nodes, %d leaves, depth %d", name, stats.Nodes, stats.Leaves, stats.MaxDepth)
		world = bvh
	}
	logger.Infof("scene %s: %d top-level objects", name, objects.Len())

	return &Scene{Name: name, World: world, Camera: camera}
}
