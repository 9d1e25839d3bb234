// Package studio is the core of a layered image editor.
//
// # Overview
//
// A studio document is an ordered stack of heterogeneous layers: raster
// layers holding RGBA pixels, vector layers holding shape descriptors, and
// 3D scene layers holding mesh and camera data. The compositor walks the
// stack from the bottom up and blends every visible layer into a single
// RGBA framebuffer.
//
// # Quick Start
//
//	doc := document.New("Poster", 800, 600)
//
//	bg := layer.NewRaster(800, 600)
//	bg.Fill(studio.Red)
//	doc.AddLayer(bg)
//
//	shapes := layer.NewVector()
//	shapes.AddShape(layer.Rectangle{X: 100, Y: 100, Width: 200, Height: 150, FillColor: studio.Blue})
//	doc.AddLayer(shapes)
//
//	c := render.NewCompositor(doc.Width(), doc.Height())
//	c.Composite(doc, studio.Transparent)
//	_ = imageio.Save("poster.png", c.Image())
//
// # Architecture
//
// The module is organized into:
//   - studio: colors and logging shared by every package
//   - layer: the Layer sum type and its Raster, Vector and Scene3D variants
//   - document: the ordered layer stack being edited
//   - render: the software compositor
//   - command: undoable document actions
//   - imageio, config: import/export and configuration for the shell
//
// # Pixel Layout
//
// Every pixel buffer is row-major, top-to-bottom, 4 bytes per pixel in
// straight (non-premultiplied) RGBA order. Row stride is width*4.
package studio

// Version is the current version of the module.
const Version = "0.1.0-alpha.1"
