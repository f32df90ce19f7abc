package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float32
		ratio    float32
		expected float32
	}{
		{"normal incidence glass", 1, 1 / 1.5, 0.04},
		{"grazing incidence", 0, 1 / 1.5, 1},
		{"matched index", 0.5, 1, 0.03125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if core.Abs(got-tt.expected) > 1e-4 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Grazing ray leaving the glass: ratio 1.5 * sin ~0.98 > 1
	direction := core.NewVec3(1, -0.2, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 1, 0), direction)
	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false,
	}

	expected := direction.Reflect(hit.Normal)
	for i := 0; i < 100; i++ {
		scatter, ok := glass.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatal("Dielectric should always scatter")
		}
		if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-5 {
			t.Fatalf("Expected reflection %v, got %v", expected, scatter.Scattered.Direction)
		}
	}
}

func TestDielectric_RefractsMostlyAtNormalIncidence(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	refracted := 0
	const trials = 1000
	for i := 0; i < trials; i++ {
		scatter, ok := glass.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatal("Dielectric should always scatter")
		}
		if scatter.Attenuation != core.NewColor(1, 1, 1) {
			t.Errorf("Expected white attenuation, got %v", scatter.Attenuation)
		}
		if scatter.Scattered.Direction.Y() < 0 {
			refracted++
		}
	}

	// Schlick gives ~4% reflection at normal incidence
	if refracted < trials*90/100 {
		t.Errorf("Expected most rays to refract, got %d/%d", refracted, trials)
	}
}

func TestCannotRefract(t *testing.T) {
	if !CannotRefract(1.5, 0.9) {
		t.Error("Expected total internal reflection for 1.5*0.9")
	}
	if CannotRefract(1/1.5, 0.9) {
		t.Error("Entering a denser medium can always refract")
	}
}
