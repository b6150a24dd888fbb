// Package graph plots a program as a function of the variable M.
package graph

import (
	"fmt"
	"math"

	"github.com/XJIeI5/rpncalc/internal/parser"
)

// Variable is the name the plotted program uses for x.
const Variable = "M"

// MaxWidth bounds the number of columns sampled by one call.
const MaxWidth = 4096

var (
	errorBadWidth = fmt.Errorf("width must not be negative")
	errorTooWide  = fmt.Errorf("width must not exceed %d", MaxWidth)
	errorBadScale = fmt.Errorf("scale must be positive")
)

// Function is what the sampler needs from a brain.
type Function interface {
	SetVariable(name, valueText string) (float64, bool)
	ClearVariables()
}

// Viewport describes the drawing surface in pixels. The origin is the pixel
// position of (0, 0) and Scale is the number of pixels per unit.
type Viewport struct {
	Width   int     `json:"width"`
	OriginX float64 `json:"origin_x"`
	OriginY float64 `json:"origin_y"`
	Scale   float64 `json:"scale"`
}

func (v Viewport) Validate() error {
	if v.Width < 0 {
		return errorBadWidth
	}
	if v.Width > MaxWidth {
		return errorTooWide
	}
	if !(v.Scale > 0) || math.IsInf(v.Scale, 1) {
		return errorBadScale
	}
	return nil
}

// Point is a pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a run of consecutive pixels where the function has a value.
type Segment []Point

// Sample evaluates f once per pixel column in [0, v.Width] and returns the
// resulting polylines. Columns without a finite value split the curve.
// Variables of f are cleared after every column.
func Sample(f Function, v Viewport) ([]Segment, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	var (
		segments []Segment
		current  Segment
	)
	for i := 0; i <= v.Width; i++ {
		x := (float64(i) - v.OriginX) / v.Scale
		y, ok := f.SetVariable(Variable, parser.FormatNumber(x))
		f.ClearVariables()
		if !ok || math.IsNaN(y) || math.IsInf(y, 0) {
			if len(current) > 0 {
				segments = append(segments, current)
				current = nil
			}
			continue
		}
		current = append(current, Point{X: float64(i), Y: v.OriginY - y*v.Scale})
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments, nil
}
