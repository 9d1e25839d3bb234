package layer

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/studio"
)

// Raster is a layer storing a dense grid of straight-alpha RGBA pixels.
//
// The pixel buffer is allocated once by NewRaster and never resized:
// len(Pix()) == width*height*4 for the life of the layer.
type Raster struct {
	Properties
	width  int
	height int
	pix    []uint8 // RGBA, row-major, stride width*4
}

// NewRaster creates a transparent raster layer of the given size.
// Negative dimensions are treated as zero.
func NewRaster(width, height int) *Raster {
	width = max(width, 0)
	height = max(height, 0)
	return &Raster{
		Properties: newProperties("New Raster Layer"),
		width:      width,
		height:     height,
		pix:        make([]uint8, width*height*4),
	}
}

// RasterFromImage creates a raster layer holding a copy of img.
// Pixels are converted to straight alpha.
func RasterFromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := NewRaster(b.Dx(), b.Dy())

	dst := &image.NRGBA{Pix: r.pix, Stride: r.width * 4, Rect: image.Rect(0, 0, r.width, r.height)}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return r
}

// Kind returns KindRaster.
func (r *Raster) Kind() Kind {
	return KindRaster
}

// Size returns the layer dimensions in pixels.
func (r *Raster) Size() (width, height int) {
	return r.width, r.height
}

// Bounds returns the layer rectangle anchored at the origin.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Pix returns the raw pixel data (RGBA format, row-major).
// Writes through the returned slice modify the layer.
func (r *Raster) Pix() []uint8 {
	return r.pix
}

// Pixel returns the color at (x, y).
// The second result is false if (x, y) lies outside the layer.
func (r *Raster) Pixel(x, y int) (studio.Color, bool) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return studio.Color{}, false
	}
	i := (y*r.width + x) * 4
	return studio.Color{R: r.pix[i+0], G: r.pix[i+1], B: r.pix[i+2], A: r.pix[i+3]}, true
}

// SetPixel sets the color at (x, y). Coordinates outside the layer are
// ignored and SetPixel reports false.
func (r *Raster) SetPixel(x, y int, c studio.Color) bool {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return false
	}
	i := (y*r.width + x) * 4
	r.pix[i+0] = c.R
	r.pix[i+1] = c.G
	r.pix[i+2] = c.B
	r.pix[i+3] = c.A
	return true
}

// Fill sets every pixel to c.
func (r *Raster) Fill(c studio.Color) {
	for i := 0; i < len(r.pix); i += 4 {
		r.pix[i+0] = c.R
		r.pix[i+1] = c.G
		r.pix[i+2] = c.B
		r.pix[i+3] = c.A
	}
}

// Image returns a copy of the layer pixels as an image.NRGBA.
func (r *Raster) Image() *image.NRGBA {
	img := image.NewNRGBA(r.Bounds())
	copy(img.Pix, r.pix)
	return img
}
