package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrInvalidScene is returned for structurally valid JSON that does not describe a scene
var ErrInvalidScene = errors.New("invalid scene description")

// FileCfg is the top-level JSON scene description
type FileCfg struct {
	Name       string                 `json:"name,omitempty"`
	Camera     CameraCfg              `json:"camera"`
	Background *BackgroundCfg         `json:"background,omitempty"`
	Textures   map[string]TextureCfg  `json:"textures,omitempty"`
	Materials  map[string]MaterialCfg `json:"materials"`
	Objects    []ObjectCfg            `json:"objects"`
	BVH        bool                   `json:"bvh,omitempty"`
}

// CameraCfg overrides fields of the default camera; omitted fields keep their defaults
type CameraCfg struct {
	AspectRatio     *float32   `json:"aspectRatio,omitempty"`
	ImageWidth      *int       `json:"width,omitempty"`
	SamplesPerPixel *int       `json:"spp,omitempty"`
	MaxDepth        *int       `json:"maxDepth,omitempty"`
	VFov            *float32   `json:"vfov,omitempty"`
	LookFrom        *core.Vec3 `json:"lookFrom,omitempty"`
	LookAt          *core.Vec3 `json:"lookAt,omitempty"`
	VUp             *core.Vec3 `json:"vup,omitempty"`
	DefocusAngle    *float32   `json:"defocusAngle,omitempty"`
	FocusDist       *float32   `json:"focusDist,omitempty"`
	Stratified      *bool      `json:"stratified,omitempty"`
}

// BackgroundCfg selects the environment: "solid" (Color), "sky", or "gradient" (Bottom to Top)
type BackgroundCfg struct {
	Type   string     `json:"type"`
	Color  core.Color `json:"color"`
	Bottom core.Color `json:"bottom"`
	Top    core.Color `json:"top"`
}

// TextureCfg describes a named texture: "solid", "checker", "image", "noise" or "uv".
// Checker sub-textures refer to other named textures.
type TextureCfg struct {
	Type  string     `json:"type"`
	Color core.Color `json:"color"`
	Scale float32    `json:"scale,omitempty"`
	Even  string     `json:"even,omitempty"`
	Odd   string     `json:"odd,omitempty"`
	Path  string     `json:"path,omitempty"` // Relative to the scene file
}

// MaterialCfg describes a named material: "lambertian", "metal", "dielectric", "light" or "isotropic".
// Texture, when set, takes precedence over Albedo or Emit.
type MaterialCfg struct {
	Type      string     `json:"type"`
	Albedo    core.Color `json:"albedo"`
	Texture   string     `json:"texture,omitempty"`
	Fuzz      float32    `json:"fuzz,omitempty"`
	IOR       float32    `json:"ior,omitempty"`
	Emit      core.Color `json:"emit"`
	Intensity float32    `json:"intensity,omitempty"` // Normalizes Emit to this peak when > 0
}

// ObjectCfg describes one object: "sphere", "moving_sphere", "quad", "triangle",
// "disk", "box" or "medium". Rotate (degrees about X, Y, Z) is applied before Translate.
type ObjectCfg struct {
	Type     string `json:"type"`
	Material string `json:"material,omitempty"`

	Center  core.Point3 `json:"center"`
	Center2 core.Point3 `json:"center2"`
	Radius  float32     `json:"radius,omitempty"`

	Q        core.Point3   `json:"q"`
	U        core.Vec3     `json:"u"`
	V        core.Vec3     `json:"v"`
	Vertices []core.Point3 `json:"vertices,omitempty"`

	Min core.Point3 `json:"min"`
	Max core.Point3 `json:"max"`

	Boundary *ObjectCfg `json:"boundary,omitempty"`
	Density  float32    `json:"density,omitempty"`
	Albedo   core.Color `json:"albedo"`
	Texture  string     `json:"texture,omitempty"`

	Rotate    *core.Vec3 `json:"rotate,omitempty"`
	Translate *core.Vec3 `json:"translate,omitempty"`
}

// LoadFile reads and builds a JSON scene description
func LoadFile(path string, opts BuildOptions) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}

	if opts.TextureDir == "" {
		opts.TextureDir = filepath.Dir(path)
	}
	s, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse builds a scene from JSON. Unknown fields are rejected.
func Parse(data []byte, opts BuildOptions) (*Scene, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cfg FileCfg
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return cfg.Build(opts)
}

// Build constructs the scene the description refers to
func (cfg FileCfg) Build(opts BuildOptions) (*Scene, error) {
	if len(cfg.Objects) == 0 {
		return nil, fmt.Errorf("%w: no objects", ErrInvalidScene)
	}

	camera := cfg.Camera.Apply(renderer.DefaultCameraConfig())
	if cfg.Background != nil {
		background, err := cfg.Background.Build()
		if err != nil {
			return nil, err
		}
		camera.Background = background
	}

	r := &resolver{
		cfg:       cfg,
		opts:      opts,
		sampler:   opts.sampler(),
		logger:    opts.logger(),
		textures:  map[string]material.Texture{},
		materials: map[string]material.Material{},
		pending:   map[string]bool{},
	}

	objects := geometry.NewHittableList()
	for i, oc := range cfg.Objects {
		obj, err := r.object(oc)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		objects.Add(obj)
	}

	var world geometry.Shape = objects
	if cfg.BVH {
		bvh := geometry.NewBVHFromList(objects)
		stats := bvh.Stats()
		r.logger.Debugf("scene %s: BVH with %d nodes, %d leaves, depth %d", cfg.Name, stats.Nodes, stats.Leaves, stats.MaxDepth)
		world = bvh
	}
	r.logger.Infof("scene %s: %d objects, %d materials, %d textures", cfg.Name, objects.Len(), len(r.materials), len(r.textures))

	return &Scene{Name: cfg.Name, World: world, Camera: camera}, nil
}

// Apply overlays the configured fields on base. Validation is left to the renderer.
func (c CameraCfg) Apply(base renderer.CameraConfig) renderer.CameraConfig {
	if c.AspectRatio != nil {
		base.AspectRatio = *c.AspectRatio
	}
	if c.ImageWidth != nil {
		base.ImageWidth = *c.ImageWidth
	}
	if c.SamplesPerPixel != nil {
		base.SamplesPerPixel = *c.SamplesPerPixel
	}
	if c.MaxDepth != nil {
		base.MaxDepth = *c.MaxDepth
	}
	if c.VFov != nil {
		base.VFov = *c.VFov
	}
	if c.LookFrom != nil {
		base.LookFrom = *c.LookFrom
	}
	if c.LookAt != nil {
		base.LookAt = *c.LookAt
	}
	if c.VUp != nil {
		base.VUp = *c.VUp
	}
	if c.DefocusAngle != nil {
		base.DefocusAngle = *c.DefocusAngle
	}
	if c.FocusDist != nil {
		base.FocusDist = *c.FocusDist
	}
	if c.Stratified != nil {
		base.Stratified = *c.Stratified
	}
	return base
}

// Build returns the configured background
func (b BackgroundCfg) Build() (integrator.Background, error) {
	switch b.Type {
	case "", "solid":
		return integrator.NewSolidBackground(b.Color), nil
	case "sky":
		return integrator.NewSkyBackground(), nil
	case "gradient":
		return &integrator.GradientBackground{Bottom: b.Bottom, Top: b.Top}, nil
	default:
		return nil, fmt.Errorf("%w: unknown background type %q", ErrInvalidScene, b.Type)
	}
}

// resolver builds named textures and materials on first use
type resolver struct {
	cfg     FileCfg
	opts    BuildOptions
	sampler core.Sampler
	logger  log.Logger

	textures  map[string]material.Texture
	materials map[string]material.Material
	pending   map[string]bool // Textures under construction, for cycle detection
}

func (r *resolver) texture(name string) (material.Texture, error) {
	if tex, ok := r.textures[name]; ok {
		return tex, nil
	}
	tc, ok := r.cfg.Textures[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown texture %q", ErrInvalidScene, name)
	}
	if r.pending[name] {
		return nil, fmt.Errorf("%w: texture %q refers to itself", ErrInvalidScene, name)
	}
	r.pending[name] = true
	defer delete(r.pending, name)

	var tex material.Texture
	switch tc.Type {
	case "", "solid":
		tex = material.NewSolidColor(tc.Color)
	case "checker":
		even, err := r.texture(tc.Even)
		if err != nil {
			return nil, err
		}
		odd, err := r.texture(tc.Odd)
		if err != nil {
			return nil, err
		}
		tex = material.NewCheckerTexture(tc.Scale, even, odd)
	case "image":
		path := tc.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.opts.TextureDir, path)
		}
		tex = loaders.LoadImageTexture(path, r.logger)
	case "noise":
		tex = material.NewNoiseTexture(tc.Scale, r.sampler)
	case "uv":
		tex = &material.UVDebugTexture{}
	default:
		return nil, fmt.Errorf("%w: texture %q: unknown type %q", ErrInvalidScene, name, tc.Type)
	}

	r.textures[name] = tex
	return tex, nil
}

// albedo returns the named texture, or a solid color when no name is given
func (r *resolver) albedo(name string, color core.Color) (material.Texture, error) {
	if name == "" {
		return material.NewSolidColor(color), nil
	}
	return r.texture(name)
}

func (r *resolver) material(name string) (material.Material, error) {
	if mat, ok := r.materials[name]; ok {
		return mat, nil
	}
	mc, ok := r.cfg.Materials[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown material %q", ErrInvalidScene, name)
	}

	var mat material.Material
	switch mc.Type {
	case "lambertian":
		tex, err := r.albedo(mc.Texture, mc.Albedo)
		if err != nil {
			return nil, err
		}
		mat = material.NewTexturedLambertian(tex)
	case "metal":
		mat = material.NewMetal(mc.Albedo, mc.Fuzz)
	case "dielectric":
		if mc.IOR <= 0 {
			return nil, fmt.Errorf("%w: material %q: index of refraction must be positive", ErrInvalidScene, name)
		}
		mat = material.NewDielectric(mc.IOR)
	case "light":
		switch {
		case mc.Texture != "":
			tex, err := r.texture(mc.Texture)
			if err != nil {
				return nil, err
			}
			mat = material.NewDiffuseLight(tex)
		case mc.Intensity > 0:
			mat = material.NewDiffuseLightIntensity(mc.Emit, mc.Intensity)
		default:
			mat = material.NewDiffuseLightColor(mc.Emit)
		}
	case "isotropic":
		tex, err := r.albedo(mc.Texture, mc.Albedo)
		if err != nil {
			return nil, err
		}
		mat = material.NewIsotropic(tex)
	default:
		return nil, fmt.Errorf("%w: material %q: unknown type %q", ErrInvalidScene, name, mc.Type)
	}

	r.materials[name] = mat
	return mat, nil
}

func (r *resolver) object(oc ObjectCfg) (geometry.Shape, error) {
	var mat material.Material
	if oc.Type != "medium" {
		var err error
		if mat, err = r.material(oc.Material); err != nil {
			return nil, err
		}
	}

	var obj geometry.Shape
	switch oc.Type {
	case "sphere":
		obj = geometry.NewSphere(oc.Center, oc.Radius, mat)
	case "moving_sphere":
		obj = geometry.NewMovingSphere(oc.Center, oc.Center2, oc.Radius, mat)
	case "quad":
		obj = geometry.NewQuad(oc.Q, oc.U, oc.V, mat)
	case "triangle":
		switch len(oc.Vertices) {
		case 0:
			obj = geometry.NewTriangle(oc.Q, oc.U, oc.V, mat)
		case 3:
			obj = geometry.NewTriangleFromVertices(oc.Vertices[0], oc.Vertices[1], oc.Vertices[2], mat)
		default:
			return nil, fmt.Errorf("%w: triangle needs 3 vertices, got %d", ErrInvalidScene, len(oc.Vertices))
		}
	case "disk":
		obj = geometry.NewDisk(oc.Center, oc.U, oc.V, mat)
	case "box":
		obj = geometry.NewBox(oc.Min, oc.Max, mat)
	case "medium":
		if oc.Boundary == nil {
			return nil, fmt.Errorf("%w: medium without boundary", ErrInvalidScene)
		}
		if oc.Density <= 0 {
			return nil, fmt.Errorf("%w: medium density must be positive", ErrInvalidScene)
		}
		boundary, err := r.object(*oc.Boundary)
		if err != nil {
			return nil, fmt.Errorf("boundary: %w", err)
		}
		tex, err := r.albedo(oc.Texture, oc.Albedo)
		if err != nil {
			return nil, err
		}
		obj = geometry.NewConstantMedium(boundary, oc.Density, tex)
	default:
		return nil, fmt.Errorf("%w: unknown object type %q", ErrInvalidScene, oc.Type)
	}

	if oc.Rotate != nil {
		obj = geometry.NewRotate(obj, *oc.Rotate)
	}
	if oc.Translate != nil {
		obj = geometry.NewTranslate(obj, *oc.Translate)
	}
	return obj, nil
}
