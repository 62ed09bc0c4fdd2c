package report

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/charlieparkes/shapes/shape"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestWrite_Fixed3(t *testing.T) {
	var buf bytes.Buffer
	shapes := []shape.Shape{
		shape.NewCircle(1),
		shape.NewRectangle(1.0, 3.14),
	}
	require.NoError(t, Write(&buf, shapes, Fixed3))

	want := []string{
		"area=3.142 aspect=1.000",
		"area=3.140 aspect=0.318",
	}
	if diff := cmp.Diff(want, lines(buf.String())); diff != "" {
		t.Errorf("Write() mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_Default(t *testing.T) {
	var buf bytes.Buffer
	shapes := []shape.Shape{
		shape.NewRectangle(30, 50),
		shape.NewEllipse(30, 50),
	}
	require.NoError(t, Write(&buf, shapes, Default))

	want := []string{
		"area=1500.000000 aspect=0.600000",
		"area=4712.388980 aspect=0.600000",
	}
	if diff := cmp.Diff(want, lines(buf.String())); diff != "" {
		t.Errorf("Write() mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, Fixed3))
	assert.Empty(t, buf.String())
}

func TestLine_NonFinite(t *testing.T) {
	assert.Equal(t, "area=0.000 aspect=+Inf", Line(shape.NewRectangle(2, 0), Fixed3))
	assert.Equal(t, "area=0.000000 aspect=NaN", Line(shape.NewRectangle(0, 0), Default))
	assert.True(t, math.IsNaN(shape.NewRectangle(0, 0).Aspect()))
}

func TestLine_Precision(t *testing.T) {
	assert.Equal(t, "area=3 aspect=1", Line(shape.NewCircle(1), Format{Precision: 0}))
	assert.Equal(t, "area=3.14159 aspect=1.00000", Line(shape.NewCircle(1), Format{Precision: 5}))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_Error(t *testing.T) {
	err := Write(failWriter{}, []shape.Shape{shape.NewCircle(2)}, Default)
	assert.EqualError(t, err, "closed")
}
