package packing

import "math"

// SolveCurvature returns the two curvatures of a fourth circle tangent to
// three mutually tangent circles with curvatures k1, k2 and k3.
//
// The radicand is taken in absolute value before the square root, so a
// negative k1k2+k2k3+k1k3 still yields two real roots. Those roots do not
// satisfy the classical Descartes relation.
func SolveCurvature(k1, k2, k3 float64) (plus, minus float64) {
	sum := k1 + k2 + k3
	prod := math.Abs(k1*k2 + k2*k3 + k1*k3)
	root := 2 * math.Sqrt(prod)
	return sum + root, sum - root
}

// SolveCenters returns the four candidate centers of a circle tangent to t,
// pairing both complex roots with both curvature roots:
//
//	(sum+root)/kPlus, (sum+root)/kMinus, (sum-root)/kPlus, (sum-root)/kMinus
//
// A zero curvature root produces non-finite coordinates.
func SolveCenters(t Triple, kPlus, kMinus float64) [4]Point {
	zk1 := t[0].Center.Scale(t[0].Curvature)
	zk2 := t[1].Center.Scale(t[1].Curvature)
	zk3 := t[2].Center.Scale(t[2].Curvature)

	sum := zk1.Add(zk2).Add(zk3)
	root := zk1.Mul(zk2).Add(zk2.Mul(zk3)).Add(zk1.Mul(zk3)).Sqrt().Scale(2)

	plus := sum.Add(root)
	minus := sum.Sub(root)
	return [4]Point{
		plus.Scale(1 / kPlus),
		plus.Scale(1 / kMinus),
		minus.Scale(1 / kPlus),
		minus.Scale(1 / kMinus),
	}
}

// Candidates returns every circle the Descartes theorem proposes for t,
// tagged with generation. Which pairings are geometrically valid is left to
// Config.Check.
func Candidates(t Triple, generation int) [4]Circle {
	kPlus, kMinus := SolveCurvature(t[0].Curvature, t[1].Curvature, t[2].Curvature)
	centers := SolveCenters(t, kPlus, kMinus)
	return [4]Circle{
		{Center: centers[0], Curvature: kPlus, Generation: generation},
		{Center: centers[1], Curvature: kMinus, Generation: generation},
		{Center: centers[2], Curvature: kPlus, Generation: generation},
		{Center: centers[3], Curvature: kMinus, Generation: generation},
	}
}
