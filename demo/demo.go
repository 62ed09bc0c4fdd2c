// Package demo builds the fixed shape collections the shapes command prints.
package demo

import (
	"io"

	"github.com/charlieparkes/shapes/report"
	"github.com/charlieparkes/shapes/shape"
)

// Demo is a named collection of shapes and the format used to report it.
type Demo struct {
	Name   string
	Shapes []shape.Shape
	Format report.Format
}

func (d Demo) Run(w io.Writer) error {
	return report.Write(w, d.Shapes, d.Format)
}

// ShapeDemo mixes an integer circle with a floating point rectangle.
func ShapeDemo() Demo {
	return Demo{
		Name: "shape",
		Shapes: []shape.Shape{
			shape.NewCircle[int](1),
			shape.NewRectangle[float64](1.0, 3.14),
		},
		Format: report.Fixed3,
	}
}

func RectangleDemo() Demo {
	return Demo{
		Name: "rectangle",
		Shapes: []shape.Shape{
			shape.NewRectangle[int32](30, 50),
			shape.NewEllipse[int32](30, 50),
		},
		Format: report.Default,
	}
}
