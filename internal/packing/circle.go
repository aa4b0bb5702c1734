package packing

import "math"

// Circle is a member of the packing.
//
// Curvature is the signed reciprocal of the radius. A negative curvature marks
// a circle whose interior holds its tangent neighbours, like the outer
// boundary of the packing. Curvature must not be zero for circles that are fed
// to the solver.
type Circle struct {
	Center     Point
	Curvature  float64
	Generation int
}

// Radius returns |1/Curvature|.
func (c Circle) Radius() float64 {
	return math.Abs(1 / c.Curvature)
}

// Encloses reports whether the circle bounds its neighbours from outside.
func (c Circle) Encloses() bool {
	return c.Curvature < 0
}

// interior returns the circle oriented to enclose its neighbours.
func (c Circle) interior() Circle {
	c.Curvature = -math.Abs(c.Curvature)
	return c
}

// Triple is three circles assumed to be pairwise tangent. Tangency is not
// checked on construction; it follows from how the triple was produced.
type Triple [3]Circle

// adjacent returns the three triples formed by c and each consecutive pair
// of t's members.
func (t Triple) adjacent(c Circle) [3]Triple {
	return [3]Triple{
		{t[0], t[1], c},
		{t[1], t[2], c},
		{t[2], t[0], c},
	}
}
