// Package palette maps circle generations to colours.
package palette

import (
	"fmt"
	"image/color"
	"math"
)

// Func returns the fill colour for a circle of the given generation.
type Func func(generation int) color.RGBA

// ByName returns the palette called name: "classic" or "rainbow".
func ByName(name string) (Func, error) {
	switch name {
	case "", "classic":
		return Classic, nil
	case "rainbow":
		return Rainbow, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
}

// Classic alternates red/green and magenta tones by generation. Channels wrap
// around at 8 bits.
func Classic(generation int) color.RGBA {
	r := uint8(128 + 8*generation)
	g := uint8((128 - 8*generation) * (generation % 2))
	var b uint8
	if generation%2 == 0 {
		b = r
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Rainbow steps the hue by 37 degrees per generation.
func Rainbow(generation int) color.RGBA {
	r, g, b := hsvToRgb(float64(generation)*37, 0.75, 0.95)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hsvToRgb converts HSV to RGB (hue: degrees, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
