// Package export writes packings to SVG and PNG files.
package export

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbeda/geom"

	"github.com/iburimskiy/apollonian-packing/internal/packing"
	"github.com/iburimskiy/apollonian-packing/internal/palette"
)

// Options controls the look of an export.
type Options struct {
	// Palette colours circles by generation. Nil means palette.Classic.
	Palette palette.Func

	// Padding is added around the packing's bounds, in packing units.
	Padding float64

	// Width and Height of raster output, in pixels.
	Width, Height int
}

func (o Options) palette() palette.Func {
	if o.Palette == nil {
		return palette.Classic
	}
	return o.Palette
}

// ToFile writes circles to path, choosing the format from the extension.
func ToFile(path string, circles []packing.Circle, opts Options) error {
	var write func(io.Writer, []packing.Circle, Options) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		write = WriteSVG
	case ".png":
		write = WritePNG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if len(circles) == 0 {
		return ErrNothingToExport
	}

	err := writeFile(path, func(w io.Writer) error {
		return write(w, circles, opts)
	})
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	slog.Info("packing exported", "path", path, "circles", len(circles))
	return nil
}

// writeFile renders into memory first so a failed export leaves no partial
// file at path.
func writeFile(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}

// Bounds returns the smallest rectangle containing every circle.
func Bounds(circles []packing.Circle) geom.Rect {
	b := geom.NilRect()
	for _, c := range circles {
		b.ExpandToContainRect(circleBounds(c))
	}
	return b
}

func circleBounds(c packing.Circle) geom.Rect {
	r := c.Radius()
	return geom.Rect{
		Min: geom.Coord{X: c.Center.X - r, Y: c.Center.Y - r},
		Max: geom.Coord{X: c.Center.X + r, Y: c.Center.Y + r},
	}
}

func pad(r geom.Rect, by float64) geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: r.Min.X - by, Y: r.Min.Y - by},
		Max: geom.Coord{X: r.Max.X + by, Y: r.Max.Y + by},
	}
}
