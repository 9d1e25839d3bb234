// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"

	"github.com/gogpu/studio"
	"github.com/gogpu/studio/document"
	"github.com/gogpu/studio/internal/blend"
	"github.com/gogpu/studio/layer"
)

// Compositor blends layers into an RGBA framebuffer.
//
// A Compositor is created once per canvas size. A full redraw is one Clear
// followed by one RenderLayer per document layer, bottom first; Composite
// does exactly that. Resizing the canvas requires a new Compositor.
//
// Thread safety: Compositor is not safe for concurrent use.
type Compositor struct {
	width       int
	height      int
	framebuffer []uint8 // RGBA, row-major, stride width*4
}

// NewCompositor creates a compositor with a zeroed (transparent) framebuffer.
// Negative dimensions are treated as zero.
func NewCompositor(width, height int) *Compositor {
	width = max(width, 0)
	height = max(height, 0)
	return &Compositor{
		width:       width,
		height:      height,
		framebuffer: make([]uint8, width*height*4),
	}
}

// Width returns the framebuffer width in pixels.
func (c *Compositor) Width() int {
	return c.width
}

// Height returns the framebuffer height in pixels.
func (c *Compositor) Height() int {
	return c.height
}

// Size returns the framebuffer dimensions in pixels.
func (c *Compositor) Size() (width, height int) {
	return c.width, c.height
}

// Clear fills every framebuffer pixel with col.
func (c *Compositor) Clear(col studio.Color) {
	fb := c.framebuffer
	for i := 0; i < len(fb); i += 4 {
		fb[i+0] = col.R
		fb[i+1] = col.G
		fb[i+2] = col.B
		fb[i+3] = col.A
	}
}

// Composite clears the framebuffer to background and renders every layer
// of doc from index 0 (bottom) upward.
func (c *Compositor) Composite(doc *document.Document, background studio.Color) {
	c.Clear(background)
	if doc == nil {
		return
	}
	for _, l := range doc.Layers() {
		c.RenderLayer(l)
	}
	studio.Logger().Debug("render: composite pass",
		"document", doc.Name(), "layers", doc.LayerCount(), "width", c.width, "height", c.height)
}

// RenderLayer blends one layer over the current framebuffer contents.
//
// Invisible layers contribute nothing. Raster layers are clipped to the
// overlap of both rectangles (never scaled) and scaled by the layer
// opacity. Vector layers fill their rectangles; lines and circles are not
// rasterized yet. Scene layers are not rasterized yet.
func (c *Compositor) RenderLayer(l layer.Layer) {
	if layer.IsNil(l) || !l.Visible() {
		return
	}

	switch l := l.(type) {
	case *layer.Raster:
		c.renderRaster(l)
	case *layer.Vector:
		c.renderVector(l)
	case *layer.Scene3D:
		// 3D rasterization is not implemented.
	}
}

// renderRaster blends a raster layer anchored at the framebuffer origin.
func (c *Compositor) renderRaster(r *layer.Raster) {
	lw, lh := r.Size()
	w := min(c.width, lw)
	h := min(c.height, lh)
	opacity := r.Opacity()
	src := r.Pix()

	for y := range h {
		srcRow := src[y*lw*4:]
		dstRow := c.framebuffer[y*c.width*4:]
		for x := range w {
			i := x * 4
			col := studio.Color{R: srcRow[i], G: srcRow[i+1], B: srcRow[i+2], A: srcRow[i+3]}
			blend.Over(dstRow[i:i+4], blend.ScaleOpacity(col, opacity))
		}
	}
}

// renderVector draws the shapes of a vector layer in order.
// Layer opacity does not apply to shape colors.
func (c *Compositor) renderVector(v *layer.Vector) {
	for _, s := range v.Shapes() {
		switch s := s.(type) {
		case layer.Rectangle:
			c.fillRect(s)
		case layer.Line, layer.Circle:
			// Stroke and fill rendering for lines and circles is not implemented.
		}
	}
}

// fillRect blends r.FillColor over every pixel covered by the rectangle's
// pixel box, clamped to the framebuffer.
func (c *Compositor) fillRect(r layer.Rectangle) {
	x0 := clampCoord(r.X, c.width)
	y0 := clampCoord(r.Y, c.height)
	x1 := clampCoord(r.X+r.Width, c.width)
	y1 := clampCoord(r.Y+r.Height, c.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for y := y0; y < y1; y++ {
		row := c.framebuffer[(y*c.width+x0)*4 : (y*c.width+x1)*4]
		blend.OverSpan(row, r.FillColor)
	}
}

// clampCoord truncates v towards zero and clamps it to [0, limit].
// NaN maps to 0.
func clampCoord(v float64, limit int) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= float64(limit) {
		return limit
	}
	return int(v)
}

// Framebuffer returns the framebuffer contents: RGBA, row-major, top to
// bottom, stride Width()*4.
//
// The slice aliases the compositor's storage. Callers must treat it as
// read-only; it reflects the latest Clear/RenderLayer calls only.
func (c *Compositor) Framebuffer() []uint8 {
	return c.framebuffer
}

// Pixel returns the framebuffer color at (x, y).
// The second result is false if (x, y) is outside the framebuffer.
func (c *Compositor) Pixel(x, y int) (studio.Color, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return studio.Color{}, false
	}
	i := (y*c.width + x) * 4
	fb := c.framebuffer
	return studio.Color{R: fb[i+0], G: fb[i+1], B: fb[i+2], A: fb[i+3]}, true
}

// Image returns a copy of the framebuffer as an image.NRGBA, ready for
// encoding or display.
func (c *Compositor) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.framebuffer)
	return img
}
