// Package shape measures rectangles, ellipses and circles.
//
// A Shape is a small immutable value. The set of variants is closed, so
// Area and Aspect switch on the kind instead of dispatching through an
// interface.
package shape

import (
	"fmt"
	"math"
	"strings"
)

// Number is any integer or floating point representation a dimension can
// be given in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

type Kind uint8

const (
	invalid Kind = iota
	Rectangle
	Ellipse
	Circle
)

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "Rectangle"
	case Ellipse:
		return "Ellipse"
	case Circle:
		return "Circle"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Shape holds one variant. For a Rectangle a and b are width and height,
// for an Ellipse the two radii, and for a Circle only a is used.
type Shape struct {
	kind Kind
	a, b float64
}

func NewRectangle[T Number](width, height T) Shape {
	return Shape{kind: Rectangle, a: float64(width), b: float64(height)}
}

func NewEllipse[T Number](radiusX, radiusY T) Shape {
	return Shape{kind: Ellipse, a: float64(radiusX), b: float64(radiusY)}
}

func NewCircle[T Number](radius T) Shape {
	return Shape{kind: Circle, a: float64(radius), b: float64(radius)}
}

func (s Shape) Kind() Kind {
	return s.kind
}

// Dimensions returns the constructor arguments in order.
func (s Shape) Dimensions() []float64 {
	switch s.kind {
	case Rectangle, Ellipse:
		return []float64{s.a, s.b}
	case Circle:
		return []float64{s.a}
	}
	return nil
}

// Area of the shape. The zero Shape has no area and returns NaN.
func (s Shape) Area() float64 {
	switch s.kind {
	case Rectangle:
		return s.a * s.b
	case Ellipse:
		return s.a * s.b * math.Pi
	case Circle:
		return s.a * s.a * math.Pi
	}
	return math.NaN()
}

// Aspect is the ratio of the first dimension to the second. A zero
// denominator is not checked: the result is +Inf, -Inf or NaN.
func (s Shape) Aspect() float64 {
	switch s.kind {
	case Rectangle, Ellipse:
		return s.a / s.b
	case Circle:
		return 1.0
	}
	return math.NaN()
}

func (s Shape) String() string {
	dims := s.Dimensions()
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprint(d)
	}
	return fmt.Sprintf("%v{%s}", s.kind, strings.Join(parts, " "))
}
