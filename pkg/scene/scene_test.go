package scene

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
)

var window = core.NewInterval(0.001, core.Inf())

func testOptions(t *testing.T) BuildOptions {
	return BuildOptions{Seed: 42, TextureDir: t.TempDir(), Logger: log.New("scene-test")}
}

func testSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func TestList_AllScenesRegistered(t *testing.T) {
	expected := []string{
		"default", "spheres", "checkered", "earth", "perlin",
		"quads", "simple-light", "cornell", "cornell-smoke", "final",
	}

	scenes := List()
	if len(scenes) != len(expected) {
		t.Fatalf("Expected %d scenes, got %d", len(expected), len(scenes))
	}

	ids := map[string]bool{}
	for _, info := range scenes {
		ids[info.ID] = true
		if info.Description == "" || info.DisplayName == "" {
			t.Errorf("Scene %q is missing metadata", info.ID)
		}
	}
	for _, id := range expected {
		if !ids[id] {
			t.Errorf("Scene %q not registered", id)
		}
	}

	for i := 1; i < len(scenes); i++ {
		prev, cur := scenes[i-1], scenes[i]
		if prev.Group > cur.Group || (prev.Group == cur.Group && prev.ID > cur.ID) {
			t.Errorf("Scenes not sorted: %q before %q", prev.ID, cur.ID)
		}
	}
}

func TestBuild_EveryScene(t *testing.T) {
	for _, info := range List() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := Build(info.ID, testOptions(t))
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if s.Name != info.ID {
				t.Errorf("Expected name %q, got %q", info.ID, s.Name)
			}
			if s.World == nil || s.World.BoundingBox().IsEmpty() {
				t.Error("Expected a non-empty world")
			}
			if err := s.Camera.Validate(); err != nil {
				t.Errorf("Camera config invalid: %v", err)
			}
			if s.Camera.Background == nil {
				t.Error("Expected a background")
			}

			// The camera should look at something
			ray := core.NewRay(s.Camera.LookFrom, s.Camera.LookAt.Subtract(s.Camera.LookFrom))
			if _, hit := s.World.Hit(ray, window, testSampler()); !hit {
				t.Error("Expected the view center to hit the scene")
			}
		})
	}
}

func TestBuild_UnknownScene(t *testing.T) {
	_, err := Build("no-such-scene", testOptions(t))
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestBuild_DefaultSceneGeometry(t *testing.T) {
	s, err := Build("default", testOptions(t))
	if err != nil {
		t.Fatal(err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.World.Hit(ray, window, testSampler())
	if !ok {
		t.Fatal("Expected to hit the center sphere")
	}
	if core.Abs(hit.T-0.5) > 1e-4 {
		t.Errorf("Expected t=0.5, got %f", hit.T)
	}

	up := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if _, ok := s.World.Hit(up, window, testSampler()); ok {
		t.Error("Expected a ray pointing up to escape")
	}
}

func TestBuild_SeedDeterminism(t *testing.T) {
	probe := func(seed int64) []float32 {
		opts := testOptions(t)
		opts.Seed = seed
		s, err := Build("spheres", opts)
		if err != nil {
			t.Fatal(err)
		}

		var ts []float32
		for x := -10; x <= 10; x++ {
			ray := core.NewRay(core.NewVec3(float32(x), 3, 12), core.NewVec3(0, -0.25, -1))
			hit, ok := s.World.Hit(ray, window, testSampler())
			if !ok {
				hit.T = -1
			}
			ts = append(ts, hit.T)
		}
		return ts
	}

	a, b, c := probe(7), probe(7), probe(8)
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same seed produced different scenes at probe %d: %f vs %f", i, a[i], b[i])
		}
		same = same && a[i] == c[i]
	}
	if same {
		t.Error("Expected different seeds to produce different sphere layouts")
	}
}

func TestBuild_CornellLightFacesDown(t *testing.T) {
	s, err := Build("cornell", testOptions(t))
	if err != nil {
		t.Fatal(err)
	}

	// Straight up through the light's footprint
	ray := core.NewRay(core.NewVec3(278, 100, 240), core.NewVec3(0, 1, 0))
	hit, ok := s.World.Hit(ray, window, testSampler())
	if !ok {
		t.Fatal("Expected to hit the ceiling light")
	}
	emitted := hit.Material.Emitted(ray, &hit)
	if emitted != core.NewColor(15, 15, 15) {
		t.Errorf("Expected light emission (15,15,15), got %v", emitted)
	}
}
