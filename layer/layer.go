// Package layer defines the editable units of a studio document.
//
// A Layer is one of a closed set of variants: *Raster, *Vector or *Scene3D.
// Every variant embeds Properties (name, visibility, opacity, id). Code that
// needs variant-specific data recovers it with a type switch:
//
//	switch l := lyr.(type) {
//	case *layer.Raster:
//		w, h := l.Size()
//	case *layer.Vector:
//		shapes := l.Shapes()
//	case *layer.Scene3D:
//		cam := l.Camera()
//	}
//
// The set is sealed: Layer has an unexported method, so no other package can
// add a variant that a type switch would silently miss.
package layer

import "github.com/google/uuid"

// Kind discriminates layer variants.
type Kind uint8

const (
	// KindRaster identifies *Raster layers.
	KindRaster Kind = iota
	// KindVector identifies *Vector layers.
	KindVector
	// KindScene3D identifies *Scene3D layers.
	KindScene3D
)

// kindNames maps Kind values to their stable tags.
var kindNames = [...]string{
	KindRaster:  "raster",
	KindVector:  "vector",
	KindScene3D: "scene3d",
}

// String returns the stable tag of the kind: "raster", "vector" or "scene3d".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Layer is the common contract of all layer variants.
type Layer interface {
	// Kind returns the variant discriminator.
	Kind() Kind

	// ID returns the identifier assigned when the layer was created.
	ID() uuid.UUID

	Name() string
	SetName(name string)

	Visible() bool
	SetVisible(visible bool)

	// Opacity returns the layer opacity in [0, 1].
	Opacity() float64
	// SetOpacity sets the opacity, silently clamping it to [0, 1].
	SetOpacity(opacity float64)

	sealed()
}

// AsRaster returns l as a *Raster if it is one.
func AsRaster(l Layer) (*Raster, bool) {
	r, ok := l.(*Raster)
	return r, ok
}

// AsVector returns l as a *Vector if it is one.
func AsVector(l Layer) (*Vector, bool) {
	v, ok := l.(*Vector)
	return v, ok
}

// AsScene3D returns l as a *Scene3D if it is one.
func AsScene3D(l Layer) (*Scene3D, bool) {
	s, ok := l.(*Scene3D)
	return s, ok
}

// IsNil reports whether l is nil or holds a nil variant pointer such as
// (*Raster)(nil).
func IsNil(l Layer) bool {
	switch l := l.(type) {
	case nil:
		return true
	case *Raster:
		return l == nil
	case *Vector:
		return l == nil
	case *Scene3D:
		return l == nil
	}
	return false
}
