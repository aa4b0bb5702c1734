// Package packing builds Apollonian circle packings one generation at a time.
//
// A Generator owns a registry of accepted circles and a FIFO queue of tangent
// triples. Each call to AdvanceGeneration expands exactly the triples that were
// queued when the call started, using the complex Descartes Circle Theorem to
// propose up to four new circles per triple and a tolerance filter to keep only
// the ones that are actually tangent, new and large enough.
//
// A Generator is not safe for concurrent use. Renderers read Circles between
// passes.
package packing

import "math"

// Point is a position in the plane, also used as the complex number X + Yi.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Mul is complex multiplication: (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (p Point) Mul(q Point) Point {
	return Point{
		X: p.X*q.X - p.Y*q.Y,
		Y: p.X*q.Y + p.Y*q.X,
	}
}

// Sqrt returns the principal complex square root, computed in polar form.
func (p Point) Sqrt() Point {
	r := math.Sqrt(p.X*p.X + p.Y*p.Y)
	theta := math.Atan2(p.Y, p.X)
	s := math.Sqrt(r)
	return Point{s * math.Cos(theta/2), s * math.Sin(theta/2)}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}
