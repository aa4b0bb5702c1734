package packing

import (
	"math"
	"math/rand/v2"
)

// Split fills the interior of c with pairs of tangent circles.
//
// c is expected to enclose its children, so callers pass it with negative
// curvature. A circle of radius r is split while r exceeds minRadius by at
// least one unit. r1 is minRadius plus a whole number drawn uniformly from
// [0, floor(r-minRadius)), so r2 = r - r1 is never below 1. The two circles
// sit side by side along the horizontal diameter and each split yields one
// triple (child1, child2, parent). Children are split in turn,
// first child first, with their curvature negated.
//
// A split whose children would land within DefaultDuplicateTolerance of c or
// of a circle already produced is skipped.
//
// The returned circles carry positive curvature and Generation one above
// their parent's.
func Split(c Circle, minRadius float64, rng *rand.Rand) ([]Circle, []Triple) {
	return splitAvoiding(c, minRadius, DefaultDuplicateTolerance, rng, nil)
}

// splitAvoiding is Split that also keeps children at least tolerance away
// from every center in registry.
func splitAvoiding(c Circle, minRadius, tolerance float64, rng *rand.Rand, registry []Circle) ([]Circle, []Triple) {
	var (
		circles []Circle
		triples []Triple
	)

	taken := func(p Point) bool {
		if p.Dist(c.Center) < tolerance {
			return true
		}
		for _, r := range registry {
			if p.Dist(r.Center) < tolerance {
				return true
			}
		}
		for _, r := range circles {
			if p.Dist(r.Center) < tolerance {
				return true
			}
		}
		return false
	}

	stack := []Circle{c}
	for len(stack) > 0 {
		parent := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		r := parent.Radius()
		span := math.Floor(r - minRadius)
		if span < 1 {
			continue
		}

		r1 := minRadius + float64(rng.IntN(int(span)))
		r2 := r - r1

		c1 := Circle{
			Center:     Point{parent.Center.X - r2, parent.Center.Y},
			Curvature:  1 / r1,
			Generation: parent.Generation + 1,
		}
		c2 := Circle{
			Center:     Point{parent.Center.X + r1, parent.Center.Y},
			Curvature:  1 / r2,
			Generation: parent.Generation + 1,
		}
		if taken(c1.Center) || taken(c2.Center) {
			continue
		}

		circles = append(circles, c1, c2)
		triples = append(triples, Triple{c1, c2, parent})

		// c1 must come off the stack first.
		stack = append(stack, c2.interior(), c1.interior())
	}
	return circles, triples
}
