// Package view holds the window-independent parts of the viewer: the 2D
// camera, the generation chime and its sample tap.
package view

import "github.com/iburimskiy/apollonian-packing/internal/packing"

// Camera maps world coordinates to screen coordinates. The world point Target
// is drawn at the screen point Offset, scaled by Zoom.
type Camera struct {
	Offset packing.Point
	Target packing.Point
	Zoom   float64

	// ZoomStep is the zoom change per wheel notch; MinZoom is the floor.
	ZoomStep float64
	MinZoom  float64
}

func NewCamera(zoomStep, minZoom float64) Camera {
	return Camera{Zoom: 1, ZoomStep: zoomStep, MinZoom: minZoom}
}

func (c Camera) WorldToScreen(p packing.Point) packing.Point {
	return p.Sub(c.Target).Scale(c.Zoom).Add(c.Offset)
}

func (c Camera) ScreenToWorld(p packing.Point) packing.Point {
	return p.Sub(c.Offset).Scale(1 / c.Zoom).Add(c.Target)
}

// ZoomAt zooms by wheel notches while keeping the world point under cursor
// fixed on screen.
func (c *Camera) ZoomAt(cursor packing.Point, wheel float64) {
	world := c.ScreenToWorld(cursor)
	c.Offset = cursor
	c.Target = world

	c.Zoom += wheel * c.ZoomStep
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
}

// Pan moves the view by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.Offset = c.Offset.Add(packing.Point{X: dx, Y: dy})
}

// Reset restores the identity view.
func (c *Camera) Reset() {
	c.Offset = packing.Point{}
	c.Target = packing.Point{}
	c.Zoom = 1
}
