package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/studio"
	"github.com/gogpu/studio/document"
	"github.com/gogpu/studio/imageio"
	"github.com/gogpu/studio/layer"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path
	rects      []string // rectangles "x,y,w,h,color", drawn in one vector layer on top
	opacity    float64  // opacity of every image layer
	fit        bool     // scale images to the canvas instead of clipping
	width      int      // canvas width override
	height     int      // canvas height override
	background string   // background color override
}

func newRenderCmd(a *app) *cobra.Command {
	opts := renderOpts{opacity: 1}

	cmd := &cobra.Command{
		Use:   "render [image...]",
		Short: "Composite images and rectangles into one image",
		Long: `Stack the given images as raster layers, first image at the bottom, add
every --rect to a vector layer on top and write the composited result.

Images larger than the canvas are clipped unless --fit is given.`,
		Example: `  studio render photo.png --rect 10,10,100,50,#0000ff80 -o out.png
  studio render a.png b.png --opacity 0.5 --fit -o out.tif`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(opts.rects) == 0 {
				return fmt.Errorf("render: nothing to render: give at least one image or --rect")
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), a, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "composite.png", "output file")
	cmd.Flags().StringArrayVar(&opts.rects, "rect", nil, "rectangle as x,y,width,height,color (repeatable)")
	cmd.Flags().Float64Var(&opts.opacity, "opacity", 1, "opacity of image layers, clamped to [0, 1]")
	cmd.Flags().BoolVar(&opts.fit, "fit", false, "scale images to the canvas size")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height (default from config)")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color (default from config)")

	return cmd
}

func runRender(ctx context.Context, out io.Writer, a *app, images []string, opts renderOpts) error {
	width, height := a.cfg.Canvas.Width, a.cfg.Canvas.Height
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}

	background := a.cfg.Background()
	if opts.background != "" {
		c, err := studio.Hex(opts.background)
		if err != nil {
			return fmt.Errorf("render: --background: %w", err)
		}
		background = c
	}

	doc, err := buildDocument(ctx, a, width, height, images, opts)
	if err != nil {
		return err
	}
	return a.composite(ctx, out, doc, background, opts.output)
}

// buildDocument creates the layer stack for the render command.
func buildDocument(ctx context.Context, a *app, width, height int, images []string, opts renderOpts) (*document.Document, error) {
	doc := document.New(strings.TrimSuffix(filepath.Base(opts.output), filepath.Ext(opts.output)), width, height)

	for _, path := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := imageio.Load(path)
		if err != nil {
			return nil, err
		}
		if opts.fit {
			img = imageio.Fit(img, width, height)
		} else if b := img.Bounds(); b.Dx() > width || b.Dy() > height {
			a.logger.Warn("image larger than canvas, clipping", "path", path, "width", b.Dx(), "height", b.Dy())
		}

		r := layer.RasterFromImage(img)
		r.SetName(filepath.Base(path))
		r.SetOpacity(opts.opacity)
		doc.AddLayer(r)
	}

	if len(opts.rects) > 0 {
		v := layer.NewVector()
		v.SetName("Rectangles")
		for _, s := range opts.rects {
			rect, err := parseRect(s)
			if err != nil {
				return nil, err
			}
			v.AddShape(rect)
		}
		doc.AddLayer(v)
	}

	return doc, nil
}

// parseRect parses "x,y,width,height,color" where color is a hex color.
func parseRect(s string) (layer.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return layer.Rectangle{}, fmt.Errorf("render: --rect %q: want x,y,width,height,color", s)
	}

	var nums [4]float64
	for i := range nums {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return layer.Rectangle{}, fmt.Errorf("render: --rect %q: %w", s, err)
		}
		nums[i] = v
	}

	fill, err := studio.Hex(strings.TrimSpace(parts[4]))
	if err != nil {
		return layer.Rectangle{}, fmt.Errorf("render: --rect %q: %w", s, err)
	}

	return layer.Rectangle{
		X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3],
		FillColor: fill,
	}, nil
}
