package cmd

import (
	"io"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	writeSceneTable(ctx.App.Writer, scene.List())
	return nil
}

func writeSceneTable(w io.Writer, scenes []scene.SceneInfo) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Group", "Name", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.Group, info.DisplayName, info.Description})
	}
	table.Render()
}
