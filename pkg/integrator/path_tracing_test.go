package integrator

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const tolerance = 1e-5

func testSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func colorNear(a, b core.Color) bool {
	return a.Subtract(b).Length() < tolerance
}

func TestPathTracing_DepthExhausted(t *testing.T) {
	integrator := NewPathTracingIntegrator(NewSolidBackground(core.NewColor(1, 1, 1)))
	world := geometry.NewHittableList()
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	for _, depth := range []int{0, -1} {
		if got := integrator.RayColor(ray, world, testSampler(), depth); got != (core.Color{}) {
			t.Errorf("depth %d: expected black, got %v", depth, got)
		}
	}
}

func TestPathTracing_MissReturnsBackground(t *testing.T) {
	tests := []struct {
		name       string
		background Background
		direction  core.Vec3
		expected   core.Color
	}{
		{"solid", NewSolidBackground(core.NewColor(0.7, 0.8, 1)), core.NewVec3(0, 0, -1), core.NewColor(0.7, 0.8, 1)},
		{"sky looking up", NewSkyBackground(), core.NewVec3(0, 1, 0), core.NewColor(0.5, 0.7, 1)},
		{"sky looking down", NewSkyBackground(), core.NewVec3(0, -1, 0), core.NewColor(1, 1, 1)},
		{"sky horizon", NewSkyBackground(), core.NewVec3(0, 0, -1), core.NewColor(0.75, 0.85, 1)},
		{"nil background", nil, core.NewVec3(0, 0, -1), core.NewColor(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := NewPathTracingIntegrator(tt.background)
			world := geometry.NewHittableList(
				geometry.NewSphere(core.NewVec3(0, 0, 10), 1, material.NewLambertian(core.NewColor(1, 0, 0))),
			)
			ray := core.NewRay(core.Vec3{}, tt.direction)
			got := integrator.RayColor(ray, world, testSampler(), 10)
			if !colorNear(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracing_EmitterOnly(t *testing.T) {
	integrator := NewPathTracingIntegrator(NewSolidBackground(core.Color{}))
	light := material.NewDiffuseLightColor(core.NewColor(4, 2, 1))
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -3), 1, light))

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	got := integrator.RayColor(ray, world, testSampler(), 5)
	if !colorNear(got, core.NewColor(4, 2, 1)) {
		t.Errorf("Expected emitted radiance, got %v", got)
	}
}

func TestPathTracing_MirrorReflectsBackground(t *testing.T) {
	integrator := NewPathTracingIntegrator(NewSolidBackground(core.NewColor(1, 1, 1)))
	mirror := material.NewMetal(core.NewColor(0.5, 0.25, 1), 0)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -3), 1, mirror))

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	// One bounce off the mirror, then the background
	if got := integrator.RayColor(ray, world, testSampler(), 2); !colorNear(got, core.NewColor(0.5, 0.25, 1)) {
		t.Errorf("Expected attenuated background, got %v", got)
	}
	// Budget exhausted after the mirror bounce
	if got := integrator.RayColor(ray, world, testSampler(), 1); got != (core.Color{}) {
		t.Errorf("Expected black with depth 1, got %v", got)
	}
}

func TestPathTracing_DiffuseUnderWhiteSkyIsBounded(t *testing.T) {
	integrator := NewPathTracingIntegrator(NewSolidBackground(core.NewColor(1, 1, 1)))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))),
	)
	sampler := testSampler()
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		got := integrator.RayColor(ray, world, sampler, 50)
		for c := 0; c < 3; c++ {
			if got[c] < 0 || got[c] > 0.5+tolerance {
				t.Fatalf("Radiance %v outside [0, albedo]", got)
			}
		}
	}
}
