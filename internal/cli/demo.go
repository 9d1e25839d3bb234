package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/studio"
	"github.com/gogpu/studio/command"
	"github.com/gogpu/studio/document"
	"github.com/gogpu/studio/layer"
)

// demoDocument builds the demo poster: an opaque red background, a
// blue rectangle at (100, 100, 200, 150) and an empty 3D scene on top.
// Layers are added through commands, the way an interactive shell would.
func demoDocument(width, height int) (*document.Document, error) {
	doc := document.New("Demo", width, height)

	bg := layer.NewRaster(width, height)
	bg.SetName("Background")
	bg.Fill(studio.Red)

	shapes := layer.NewVector()
	shapes.SetName("Shapes")
	shapes.AddShape(layer.Rectangle{
		X: 100, Y: 100, Width: 200, Height: 150,
		StrokeWidth: 2,
		FillColor:   studio.Blue,
		StrokeColor: studio.Black,
	})

	scene := layer.NewScene3D()

	for _, l := range []layer.Layer{bg, shapes, scene} {
		if err := (&command.AddLayer{Layer: l}).Apply(doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func newDemoCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Composite the demo poster",
		Long:  `Build a document with a red background layer, a blue rectangle and an empty 3D scene, composite it and write the image.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := demoDocument(a.cfg.Canvas.Width, a.cfg.Canvas.Height)
			if err != nil {
				return err
			}
			return a.composite(cmd.Context(), cmd.OutOrStdout(), doc, a.cfg.Background(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "demo.png", "output file")
	return cmd
}
