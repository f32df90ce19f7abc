package output

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestToRGB8(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Color
		expected [3]uint8
	}{
		{"black", core.NewColor(0, 0, 0), [3]uint8{0, 0, 0}},
		{"white clamps below 256", core.NewColor(1, 1, 1), [3]uint8{255, 255, 255}},
		{"overexposed", core.NewColor(50, 2, 1.5), [3]uint8{255, 255, 255}},
		{"quarter is half after gamma", core.NewColor(0.25, 0.25, 0.25), [3]uint8{128, 128, 128}},
		{"negative is black", core.NewColor(-1, -0.5, 0), [3]uint8{0, 0, 0}},
		{"NaN is black", core.NewColor(float32(math.NaN()), 0, 0), [3]uint8{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := ToRGB8(tt.color)
			if got := [3]uint8{r, g, b}; got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWritePPM_SingleWhitePixel(t *testing.T) {
	fb := core.NewFramebuffer(1, 1)
	fb.Set(0, 0, core.NewColor(1, 1, 1))

	var buf bytes.Buffer
	if err := WritePPM(&buf, fb); err != nil {
		t.Fatal(err)
	}

	expected := "P3\n1 1\n255\n255 255 255\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestWritePPM_RowMajorOrder(t *testing.T) {
	fb := core.NewFramebuffer(2, 2)
	fb.Set(1, 0, core.NewColor(1, 0, 0))
	fb.Set(0, 1, core.NewColor(0, 0, 1))

	var buf bytes.Buffer
	if err := WritePPM(&buf, fb); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	expected := []string{"P3", "2 2", "255", "0 0 0", "255 0 0", "0 0 255", "0 0 0"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d", len(expected), len(lines))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		err      bool
	}{
		{"out.ppm", PPM, false},
		{"out.PNG", PNG, false},
		{"dir/out.webp", WebP, false},
		{"out.gif", PPM, true},
		{"noext", PPM, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.err {
				t.Fatalf("Expected error=%v, got %v", tt.err, err)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestScale(t *testing.T) {
	fb := core.NewFramebuffer(10, 6)
	img := ToImage(fb)

	if Scale(img, 1) != img {
		t.Error("Scale 1 should return the same image")
	}
	scaled := Scale(img, 2)
	if scaled.Bounds().Dx() != 20 || scaled.Bounds().Dy() != 12 {
		t.Errorf("Expected 20x12, got %v", scaled.Bounds())
	}
}

func TestSave_PNGRoundTrip(t *testing.T) {
	fb := core.NewFramebuffer(3, 2)
	fb.Set(2, 1, core.NewColor(1, 0, 0))

	path := filepath.Join(t.TempDir(), "render.png")
	if err := Save(path, fb, 1); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 3x2, got %v", img.Bounds())
	}
	r, g, b, _ := img.At(2, 1).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("Expected red pixel, got %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestEncode_WebP(t *testing.T) {
	fb := core.NewFramebuffer(4, 4)
	var buf bytes.Buffer
	if err := Encode(&buf, fb, WebP, 1); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("RIFF")) {
		t.Error("Expected a RIFF container")
	}
}
