package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier used on the command line
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"`
	Group       string `json:"group"` // Grouping category
}

type builder func(opts BuildOptions) *Scene

type registration struct {
	info  SceneInfo
	build builder
}

var registry = map[string]registration{}

func register(info SceneInfo, build builder) {
	registry[info.ID] = registration{info: info, build: build}
}

func init() {
	register(SceneInfo{"default", "Default", "Two diffuse spheres under a sky gradient", "Basics"}, NewDefaultScene)
	register(SceneInfo{"spheres", "Bouncing Spheres", "Random spheres with motion blur on a checkered ground", "Basics"}, NewSpheresScene)
	register(SceneInfo{"checkered", "Checkered Spheres", "Two spheres with a spatial checker texture", "Textures"}, NewCheckeredScene)
	register(SceneInfo{"earth", "Earth", "Image-textured globe", "Textures"}, NewEarthScene)
	register(SceneInfo{"perlin", "Perlin", "Marble-like Perlin noise spheres", "Textures"}, NewPerlinScene)
	register(SceneInfo{"quads", "Quads", "Rectangles, a triangle and a disk", "Primitives"}, NewQuadsScene)
	register(SceneInfo{"simple-light", "Simple Light", "Noise spheres lit by an area light and a sphere light", "Lighting"}, NewSimpleLightScene)
	register(SceneInfo{"cornell", "Cornell Box", "Classic Cornell box with two rotated boxes", "Lighting"}, NewCornellScene)
	register(SceneInfo{"cornell-smoke", "Cornell Smoke", "Cornell box with smoke and fog volumes", "Lighting"}, NewCornellSmokeScene)
	register(SceneInfo{"final", "Final", "Boxes, volumes, textures and motion blur together", "Showcase"}, NewFinalScene)
}

// List returns the built-in scenes sorted by group and ID
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, r := range registry {
		scenes = append(scenes, r.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		if scenes[i].Group != scenes[j].Group {
			return scenes[i].Group < scenes[j].Group
		}
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Build constructs the built-in scene with the given ID
func Build(id string, opts BuildOptions) (*Scene, error) {
	r, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return r.build(opts), nil
}
