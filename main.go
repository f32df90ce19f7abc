package main

import (
	"os"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image",
			Description: `
Render a built-in scene (see the scenes command) or a JSON scene description.

The output format is selected by the file extension (.ppm, .png or .webp).
Use "-" to stream a PPM image to standard output; logs then go to standard
error. Interrupting the render saves the rows completed so far.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene name",
				},
				cli.StringFlag{
					Name:  "scene-file, f",
					Usage: "JSON scene description; overrides --scene",
				},
				cli.StringFlag{
					Name:  "textures",
					Value: "textures",
					Usage: "directory containing image textures",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width; 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel; 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounces; 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers; 0 uses all CPUs",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed for scene construction and sampling",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
				cli.Float64Flag{
					Name:  "scale",
					Value: 1.0,
					Usage: "resample PNG and WebP output by this factor",
				},
			},
			Action: cmd.Render,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("pathtracer").Error(err)
		os.Exit(1)
	}
}
