package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jbeda/geom"

	"github.com/iburimskiy/apollonian-packing/internal/packing"
)

const (
	boundaryStyle  = "fill: none; stroke: white; stroke-width: 1"
	backgroundFill = "black"
)

// SVG serialization helper. The first write error sticks and is reported by
// Err.
type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

func (svg *SVG) Err() error { return svg.err }

func (svg *SVG) Start(viewBox geom.Rect) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (svg *SVG) End() {
	svg.printf("</svg>\n")
}

func (svg *SVG) Rect(r geom.Rect, fill string) {
	svg.printf("<rect x='%f' y='%f' width='%f' height='%f' fill='%s'/>\n",
		r.Min.X, r.Min.Y, r.Width(), r.Height(), fill)
}

func (svg *SVG) Circle(c geom.Coord, r float64, style string) {
	svg.printf("<circle cx='%f' cy='%f' r='%f' style='%s'/>\n", c.X, c.Y, r, style)
}

// WriteSVG draws the circles in registry order. Enclosing circles are drawn
// as outlines, the others filled with their generation colour.
func WriteSVG(w io.Writer, circles []packing.Circle, opts Options) error {
	if len(circles) == 0 {
		return ErrNothingToExport
	}
	colour := opts.palette()
	viewBox := pad(Bounds(circles), opts.Padding)

	s := NewSVG(w)
	s.Start(viewBox)
	s.Rect(viewBox, backgroundFill)
	for _, c := range circles {
		center := geom.Coord{X: c.Center.X, Y: c.Center.Y}
		if c.Encloses() {
			s.Circle(center, c.Radius(), boundaryStyle)
			continue
		}
		s.Circle(center, c.Radius(), "fill: "+hex(colour(c.Generation)))
	}
	s.End()
	return s.Err()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
