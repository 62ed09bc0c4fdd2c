// Package report prints shape metrics one line per shape.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charlieparkes/shapes/shape"
)

// Format controls the number of decimals printed. A negative Precision
// prints with %f.
type Format struct {
	Precision int
}

var (
	Fixed3  = Format{Precision: 3}
	Default = Format{Precision: -1}
)

func Line(s shape.Shape, f Format) string {
	if f.Precision < 0 {
		return fmt.Sprintf("area=%f aspect=%f", s.Area(), s.Aspect())
	}
	return fmt.Sprintf("area=%.*f aspect=%.*f", f.Precision, s.Area(), f.Precision, s.Aspect())
}

// Write reports shapes in the order given.
func Write(w io.Writer, shapes []shape.Shape, f Format) error {
	bw := bufio.NewWriter(w)
	for _, s := range shapes {
		if _, err := bw.WriteString(Line(s, f) + "\n"); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return nil
}
