package cli

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/gogpu/studio"
	"github.com/gogpu/studio/document"
	"github.com/gogpu/studio/imageio"
	"github.com/gogpu/studio/render"
)

// composite renders doc onto background and writes the result to path.
// The format comes from the path extension; paths without a recognized
// extension use the configured export format. A summary goes to out.
func (a *app) composite(ctx context.Context, out io.Writer, doc *document.Document, background studio.Color, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	c := render.NewCompositor(doc.Width(), doc.Height())
	c.Composite(doc, background)

	format, err := imageio.FormatFromPath(path)
	if err != nil {
		format = a.cfg.ExportFormat()
		if filepath.Ext(path) == "" {
			path += format.Ext()
		}
	}

	if err := imageio.SaveAs(path, c.Image(), format); err != nil {
		return err
	}

	a.logger.Info("exported",
		"path", path,
		"format", format.String(),
		"width", doc.Width(),
		"height", doc.Height(),
		"layers", doc.LayerCount(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	printSuccess(out, "Composited %d layers (%dx%d)", doc.LayerCount(), doc.Width(), doc.Height())
	if a.verbose {
		printLayers(out, doc)
	}
	printFile(out, path)
	return nil
}
