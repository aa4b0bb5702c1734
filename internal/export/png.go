package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/apollonian-packing/internal/packing"
)

const (
	defaultWidth  = 1024
	defaultHeight = 1024
)

// WritePNG rasterises the circles into a Width x Height image, scaled to fit
// and centred on a black background.
func WritePNG(w io.Writer, circles []packing.Circle, opts Options) (err error) {
	if len(circles) == 0 {
		return ErrNothingToExport
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	colour := opts.palette()

	bounds := pad(Bounds(circles), opts.Padding)
	scale := math.Min(float64(width)/bounds.Width(), float64(height)/bounds.Height())
	offX := (float64(width) - bounds.Width()*scale) / 2
	offY := (float64(height) - bounds.Height()*scale) / 2

	dc := gg.NewContext(width, height)
	defer func() {
		if cerr := dc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close context: %w", cerr)
		}
	}()
	dc.ClearWithColor(gg.RGB(0, 0, 0))

	for _, c := range circles {
		x := (c.Center.X-bounds.Min.X)*scale + offX
		y := (c.Center.Y-bounds.Min.Y)*scale + offY
		r := c.Radius() * scale

		dc.DrawCircle(x, y, r)
		if c.Encloses() {
			dc.SetColor(color.White)
			dc.SetLineWidth(1)
			if err = dc.Stroke(); err != nil {
				return fmt.Errorf("stroke circle: %w", err)
			}
			continue
		}
		dc.SetColor(colour(c.Generation))
		if err = dc.Fill(); err != nil {
			return fmt.Errorf("fill circle: %w", err)
		}
	}
	return dc.EncodePNG(w)
}
