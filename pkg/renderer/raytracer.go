package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Options controls render execution
type Options struct {
	Workers int   // Concurrent workers; 0 uses one per CPU
	Seed    int64 // Base seed for the per-scanline samplers
}

// Raytracer renders a world through a camera into a framebuffer
type Raytracer struct {
	world      geometry.Shape
	camera     *Camera
	integrator integrator.Integrator
	options    Options
	logger     log.Logger
}

// NewRaytracer validates the camera configuration and prepares a render
func NewRaytracer(world geometry.Shape, config CameraConfig, options Options) (*Raytracer, error) {
	camera, err := NewCamera(config)
	if err != nil {
		return nil, err
	}
	if world == nil {
		world = geometry.NewHittableList()
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(config.Background),
		options:    options,
		logger:     log.New("renderer"),
	}, nil
}

// Camera returns the camera used by this raytracer
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces every pixel and returns the linear radiance framebuffer.
// If ctx is cancelled, remaining scanlines are skipped and the partially
// filled framebuffer is returned together with ctx.Err().
func (rt *Raytracer) Render(ctx context.Context) (*core.Framebuffer, RenderStats, error) {
	width, height := rt.camera.Width(), rt.camera.Height()
	fb := core.NewFramebuffer(width, height)

	pool := NewWorkerPool(rt, rt.options.Workers)
	stats := RenderStats{
		Width:           width,
		Height:          height,
		Workers:         pool.GetNumWorkers(),
		SamplesPerPixel: rt.camera.SamplesPerPixel(),
	}

	rt.logger.Infof("rendering %dx%d, %d spp, depth %d, %d workers",
		width, height, stats.SamplesPerPixel, rt.camera.Config().MaxDepth, stats.Workers)

	start := time.Now()
	pool.Start()
	for row := 0; row < height; row++ {
		pool.SubmitTask(ScanlineTask{Ctx: ctx, Row: row, Framebuffer: fb})
	}
	go pool.Stop()

	for result := range pool.Results() {
		if result.Skipped {
			continue
		}
		stats.RowsCompleted++
		stats.TotalSamples += result.Samples
		rt.logger.Debugf("scanline %d done (%d/%d)", result.Row, stats.RowsCompleted, height)
	}
	stats.Duration = time.Since(start)

	if err := ctx.Err(); err != nil && !stats.Complete() {
		rt.logger.Warningf("render cancelled after %d/%d scanlines", stats.RowsCompleted, height)
		return fb, stats, fmt.Errorf("render cancelled: %w", err)
	}

	rt.logger.Noticef("rendered %dx%d in %v (%.0f rays/s)",
		width, height, stats.Duration.Round(time.Millisecond), stats.RaysPerSecond())
	return fb, stats, nil
}

// RenderScanline renders one row into fb and returns the number of primary rays traced.
// Each row owns its sampler, so the result does not depend on scheduling.
func (rt *Raytracer) RenderScanline(row int, fb *core.Framebuffer) int64 {
	sampler := core.NewSeededSampler(scanlineSeed(rt.options.Seed, row))
	maxDepth := rt.camera.Config().MaxDepth

	radiance := func(ray core.Ray) core.Color {
		return rt.integrator.RayColor(ray, rt.world, sampler, maxDepth)
	}

	pixels := fb.Row(row)
	for i := range pixels {
		pixels[i] = rt.camera.SamplePixel(i, row, sampler, radiance)
	}

	return int64(len(pixels)) * int64(rt.camera.SamplesPerPixel())
}

// scanlineSeed derives a well-spread seed for a row
func scanlineSeed(seed int64, row int) int64 {
	return int64(uint64(seed) ^ (uint64(row)+1)*0x9E3779B97F4A7C15)
}
