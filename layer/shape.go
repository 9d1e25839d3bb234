package layer

import "github.com/gogpu/studio"

// Shape is a vector primitive. The set of shapes is closed:
// Line, Rectangle and Circle.
type Shape interface {
	// ShapeKind returns "line", "rectangle" or "circle".
	ShapeKind() string

	shape()
}

// Line is a stroked segment from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1      float64
	X2, Y2      float64
	StrokeWidth float64
	Color       studio.Color
}

// Rectangle is an axis-aligned rectangle with top-left corner (X, Y).
type Rectangle struct {
	X, Y          float64
	Width, Height float64
	StrokeWidth   float64
	FillColor     studio.Color
	StrokeColor   studio.Color
}

// Circle is a circle centered at (X, Y).
type Circle struct {
	X, Y        float64
	Radius      float64
	StrokeWidth float64
	FillColor   studio.Color
	StrokeColor studio.Color
}

// ShapeKind returns "line".
func (Line) ShapeKind() string { return "line" }

// ShapeKind returns "rectangle".
func (Rectangle) ShapeKind() string { return "rectangle" }

// ShapeKind returns "circle".
func (Circle) ShapeKind() string { return "circle" }

func (Line) shape()      {}
func (Rectangle) shape() {}
func (Circle) shape()    {}
