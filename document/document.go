// Package document provides the aggregate edited by the studio: a named
// canvas owning an ordered stack of layers.
//
// Index 0 is the bottom of the stack. AddLayer appends, so the most
// recently added layer is composited last and appears on top.
//
// Lookups follow a "miss returns empty" contract: an out-of-range index
// yields (nil, false) or false and never mutates the document. Indices are
// stable only between structural mutations; use layer ids (Layer.ID) to
// keep track of a layer across them.
package document

import (
	"iter"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/studio"
	"github.com/gogpu/studio/layer"
)

// Document is a canvas and the layers drawn on it.
//
// Thread safety: Document is not safe for concurrent use.
type Document struct {
	name   string
	width  int
	height int
	layers []layer.Layer
}

// New creates an empty document with the given canvas size.
// Negative dimensions are treated as zero.
func New(name string, width, height int) *Document {
	return &Document{
		name:   norm.NFC.String(name),
		width:  max(width, 0),
		height: max(height, 0),
	}
}

// Name returns the document name.
func (d *Document) Name() string {
	return d.name
}

// SetName renames the document. Names are stored in Unicode NFC form.
func (d *Document) SetName(name string) {
	d.name = norm.NFC.String(name)
}

// Width returns the canvas width in pixels.
func (d *Document) Width() int {
	return d.width
}

// Height returns the canvas height in pixels.
func (d *Document) Height() int {
	return d.height
}

// Size returns the canvas size in pixels.
func (d *Document) Size() (width, height int) {
	return d.width, d.height
}

// AddLayer appends l to the top of the stack and reports whether it was
// added. The document takes ownership of l. Nil layers and layers already
// in the stack (same ID) are ignored.
func (d *Document) AddLayer(l layer.Layer) bool {
	if !d.canOwn(l) {
		return false
	}
	d.layers = append(d.layers, l)
	studio.Logger().Debug("document: layer added",
		"kind", l.Kind().String(), "name", l.Name(), "index", len(d.layers)-1)
	return true
}

// InsertLayer inserts l at index i, shifting the layers at i and above up
// by one. i may equal LayerCount, which appends. It reports false, and
// changes nothing, if i is out of range, l is nil or l is already in the
// stack.
func (d *Document) InsertLayer(i int, l layer.Layer) bool {
	if i < 0 || i > len(d.layers) || !d.canOwn(l) {
		return false
	}
	d.layers = slices.Insert(d.layers, i, l)
	studio.Logger().Debug("document: layer inserted",
		"kind", l.Kind().String(), "name", l.Name(), "index", i)
	return true
}

// canOwn reports whether l may join the stack: a layer has one owner and
// appears at most once.
func (d *Document) canOwn(l layer.Layer) bool {
	if layer.IsNil(l) {
		return false
	}
	if d.IndexOf(l.ID()) >= 0 {
		studio.Logger().Debug("document: layer already in stack", "name", l.Name())
		return false
	}
	return true
}

// RemoveLayer removes the layer at index i and returns it; ownership
// passes to the caller. Layers above i shift down by one.
// It returns (nil, false), and changes nothing, if i is out of range.
func (d *Document) RemoveLayer(i int) (layer.Layer, bool) {
	if i < 0 || i >= len(d.layers) {
		return nil, false
	}
	l := d.layers[i]
	d.layers = slices.Delete(d.layers, i, i+1)
	studio.Logger().Debug("document: layer removed",
		"kind", l.Kind().String(), "name", l.Name(), "index", i)
	return l, true
}

// MoveLayer moves the layer at index from to index to; the layers in
// between shift by one. It reports false, and changes nothing, if either
// index is out of range.
func (d *Document) MoveLayer(from, to int) bool {
	n := len(d.layers)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from == to {
		return true
	}
	l := d.layers[from]
	d.layers = slices.Delete(d.layers, from, from+1)
	d.layers = slices.Insert(d.layers, to, l)
	studio.Logger().Debug("document: layer moved", "name", l.Name(), "from", from, "to", to)
	return true
}

// LayerCount returns the number of layers.
func (d *Document) LayerCount() int {
	return len(d.layers)
}

// Layer returns the layer at index i.
// The returned layer may be modified in place.
func (d *Document) Layer(i int) (layer.Layer, bool) {
	if i < 0 || i >= len(d.layers) {
		return nil, false
	}
	return d.layers[i], true
}

// IndexOf returns the index of the layer with the given id, or -1.
func (d *Document) IndexOf(id uuid.UUID) int {
	return slices.IndexFunc(d.layers, func(l layer.Layer) bool {
		return l.ID() == id
	})
}

// Layers iterates over the stack from bottom (index 0) to top.
// The document must not be structurally modified during iteration.
func (d *Document) Layers() iter.Seq2[int, layer.Layer] {
	return func(yield func(int, layer.Layer) bool) {
		for i, l := range d.layers {
			if !yield(i, l) {
				return
			}
		}
	}
}
