package layer

import "slices"

// Vector is a layer storing an ordered list of shapes.
// Later shapes draw over earlier ones.
type Vector struct {
	Properties
	shapes []Shape
}

// NewVector creates an empty vector layer.
func NewVector() *Vector {
	return &Vector{
		Properties: newProperties("New Vector Layer"),
	}
}

// Kind returns KindVector.
func (v *Vector) Kind() Kind {
	return KindVector
}

// AddShape appends s on top of the existing shapes. Nil shapes are ignored.
func (v *Vector) AddShape(s Shape) {
	if s == nil {
		return
	}
	v.shapes = append(v.shapes, s)
}

// RemoveShape removes and returns the shape at index i.
// It reports false, and changes nothing, if i is out of range.
func (v *Vector) RemoveShape(i int) (Shape, bool) {
	if i < 0 || i >= len(v.shapes) {
		return nil, false
	}
	s := v.shapes[i]
	v.shapes = slices.Delete(v.shapes, i, i+1)
	return s, true
}

// Shapes returns the shapes in drawing order.
// The returned slice must not be modified.
func (v *Vector) Shapes() []Shape {
	return v.shapes
}

// Shape returns the shape at index i.
func (v *Vector) Shape(i int) (Shape, bool) {
	if i < 0 || i >= len(v.shapes) {
		return nil, false
	}
	return v.shapes[i], true
}

// SetShape replaces the shape at index i.
// It reports false if i is out of range or s is nil.
func (v *Vector) SetShape(i int, s Shape) bool {
	if s == nil || i < 0 || i >= len(v.shapes) {
		return false
	}
	v.shapes[i] = s
	return true
}

// ShapeCount returns the number of shapes.
func (v *Vector) ShapeCount() int {
	return len(v.shapes)
}
