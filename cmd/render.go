package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// stdoutTarget streams a PPM image to standard output.
const stdoutTarget = "-"

// Render a still frame.
func Render(ctx *cli.Context) error {
	out := ctx.String("out")
	if out == stdoutTarget {
		// Keep the image stream clean
		log.SetSink(os.Stderr)
	}
	setupLogging(ctx)

	if out == "" {
		return errors.New("missing output file")
	}
	if out != stdoutTarget {
		// Reject unknown extensions before spending time rendering
		if _, err := output.FormatFromPath(out); err != nil {
			return err
		}
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	camera := applyOverrides(sc.Camera, ctx.Int("width"), ctx.Int("spp"), ctx.Int("depth"))
	rt, err := renderer.NewRaytracer(sc.World, camera, renderer.Options{
		Workers: ctx.Int("workers"),
		Seed:    ctx.Int64("seed"),
	})
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %s", sc.Name)
	fb, stats, renderErr := rt.Render(renderCtx)
	if renderErr != nil && fb == nil {
		return renderErr
	}
	if renderErr != nil {
		logger.Warningf("saving partial image after %d of %d rows", stats.RowsCompleted, stats.Height)
	}

	if err := writeImage(out, ctx.App.Writer, fb, ctx.Float64("scale")); err != nil {
		return err
	}
	if out != stdoutTarget {
		logger.Noticef("wrote %s", out)
	}

	displayRenderStats(stats, fb)
	return renderErr
}

// loadScene resolves either a JSON scene file or a built-in scene.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	opts := scene.BuildOptions{
		Seed:       ctx.Int64("seed"),
		TextureDir: ctx.String("textures"),
		Logger:     logger,
	}

	if file := ctx.String("scene-file"); file != "" {
		if !ctx.IsSet("textures") {
			// Resolve image paths relative to the scene file
			opts.TextureDir = ""
		}
		return scene.LoadFile(file, opts)
	}
	return scene.Build(ctx.String("scene"), opts)
}

// applyOverrides replaces scene camera settings with any non-zero command line values.
func applyOverrides(cfg renderer.CameraConfig, width, spp, depth int) renderer.CameraConfig {
	if width > 0 {
		cfg.ImageWidth = width
	}
	if spp > 0 {
		cfg.SamplesPerPixel = spp
	}
	if depth > 0 {
		cfg.MaxDepth = depth
	}
	return cfg
}

func writeImage(out string, stdout io.Writer, fb *core.Framebuffer, scale float64) error {
	if out == stdoutTarget {
		return output.WritePPM(stdout, fb)
	}
	return output.Save(out, fb, scale)
}

func displayRenderStats(stats renderer.RenderStats, fb *core.Framebuffer) {
	var buf bytes.Buffer
	writeStatsTable(&buf, stats, fb)
	logger.Noticef("render statistics\n%s", buf.String())
}

func writeStatsTable(w io.Writer, stats renderer.RenderStats, fb *core.Framebuffer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Workers", "SPP", "Rows", "Samples", "Rays/sec", "Mean luminance", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d/%d", stats.RowsCompleted, stats.Height),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.0f", stats.RaysPerSecond()),
		fmt.Sprintf("%.4f", renderer.AverageLuminance(fb)),
		stats.Duration.String(),
	})
	table.Render()
}
