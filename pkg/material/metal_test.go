package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNewMetal_FuzzRange(t *testing.T) {
	tests := []struct {
		name     string
		fuzz     float32
		expected float32
	}{
		{"negative forced to one", -0.5, 1},
		{"zero kept", 0, 0},
		{"in range kept", 0.3, 0.3},
		{"one kept", 1, 1},
		{"above one forced to one", 1.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(core.NewColor(0.8, 0.8, 0.8), tt.fuzz)
			if metal.Fuzz != tt.expected {
				t.Errorf("Expected fuzz %v, got %v", tt.expected, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectMirror(t *testing.T) {
	albedo := core.NewColor(0.9, 0.6, 0.3)
	metal := NewMetal(albedo, 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	scatter, ok := metal.Scatter(ray, hit, sampler)
	if !ok {
		t.Fatal("Mirror reflection above the surface should scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	got := scatter.Scattered.Direction
	if got.Subtract(expected).Length() > 1e-5 {
		t.Errorf("Expected direction %v, got %v", expected, got)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
	if !scatter.IsSpecular() {
		t.Error("Metal scattering should be specular")
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewColor(1, 1, 1), 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Normal aligned with the ray reflects back through the surface
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := &HitRecord{Normal: core.NewVec3(0, -1, 0)}

	if _, ok := metal.Scatter(ray, hit, sampler); ok {
		t.Error("Reflection into the surface should be absorbed")
	}
}

func TestMetal_FuzzyStaysAboveSurface(t *testing.T) {
	metal := NewMetal(core.NewColor(1, 1, 1), 1)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	for i := 0; i < 100; i++ {
		scatter, ok := metal.Scatter(ray, hit, sampler)
		if ok && scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Errorf("Scattered direction %v points into the surface", scatter.Scattered.Direction)
		}
	}
}
