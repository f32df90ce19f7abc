package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/scene"
)

func TestRender_BuiltinSceneToPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "default.png")

	app := newApp()
	app.Writer = &bytes.Buffer{}
	err := app.Run([]string{"go-pathtracer", "render",
		"--scene", "default", "--width", "32", "--spp", "1", "--depth", "2",
		"--workers", "2", "--scale", "0.5", "--out", out})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	// 32x18 resampled by half
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Errorf("Expected 16x9 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRender_StdoutPPM(t *testing.T) {
	var stdout bytes.Buffer
	app := newApp()
	app.Writer = &stdout

	err := app.Run([]string{"go-pathtracer", "render",
		"--scene", "default", "--width", "16", "--spp", "1", "--depth", "1", "--out", "-"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.HasPrefix(stdout.String(), "P3\n16 9\n255\n") {
		t.Errorf("Expected a PPM header, got %q", stdout.String()[:min(20, stdout.Len())])
	}
	lines := strings.Count(stdout.String(), "\n")
	if lines != 3+16*9 {
		t.Errorf("Expected %d lines, got %d", 3+16*9, lines)
	}
}

func TestRender_SceneFile(t *testing.T) {
	dir := t.TempDir()
	sceneFile := filepath.Join(dir, "ball.json")
	sceneJSON := `{
		"camera": {"lookFrom": [0, 0, 5], "lookAt": [0, 0, 0]},
		"materials": {"red": {"type": "lambertian", "albedo": [0.8, 0.1, 0.1]}},
		"objects": [{"type": "sphere", "center": [0, 0, 0], "radius": 1, "material": "red"}]
	}`
	if err := os.WriteFile(sceneFile, []byte(sceneJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "ball.ppm")
	app := newApp()
	app.Writer = &bytes.Buffer{}
	err := app.Run([]string{"go-pathtracer", "render",
		"--scene-file", sceneFile, "--width", "8", "--spp", "1", "--out", out})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3\n8 4\n255\n") {
		t.Errorf("Unexpected PPM header in %q", string(data[:min(20, len(data))]))
	}
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"unknown scene", []string{"--scene", "nope", "--out", filepath.Join(dir, "a.png")}, scene.ErrUnknownScene},
		{"missing scene file", []string{"--scene-file", filepath.Join(dir, "nope.json"), "--out", filepath.Join(dir, "b.png")}, os.ErrNotExist},
		{"unsupported format", []string{"--out", filepath.Join(dir, "c.gif")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Writer = &bytes.Buffer{}
			err := app.Run(append([]string{"go-pathtracer", "render", "--width", "8", "--spp", "1"}, tt.args...))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestScenes_ListsBuiltins(t *testing.T) {
	var stdout bytes.Buffer
	app := newApp()
	app.Writer = &stdout

	if err := app.Run([]string{"go-pathtracer", "scenes"}); err != nil {
		t.Fatalf("scenes failed: %v", err)
	}
	for _, info := range scene.List() {
		if !strings.Contains(stdout.String(), info.ID) {
			t.Errorf("Expected listing to contain %q", info.ID)
		}
	}
}
