package packing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// descartesResidual is (Σk)² - 2Σk² for four curvatures.
func descartesResidual(k1, k2, k3, k4 float64) float64 {
	s := k1 + k2 + k3 + k4
	q := k1*k1 + k2*k2 + k3*k3 + k4*k4
	return s*s - 2*q
}

func unitTriple() Triple {
	return Triple{
		{Center: Point{0, 0}, Curvature: 1},
		{Center: Point{2, 0}, Curvature: 1},
		{Center: Point{1, math.Sqrt(3)}, Curvature: 1},
	}
}

func halvesTriple() Triple {
	return Triple{
		{Center: Point{0, 0}, Curvature: -1.0 / 100},
		{Center: Point{-50, 0}, Curvature: 1.0 / 50},
		{Center: Point{50, 0}, Curvature: 1.0 / 50},
	}
}

func TestSolveCurvature(t *testing.T) {
	t.Run("three unit circles", func(t *testing.T) {
		plus, minus := SolveCurvature(1, 1, 1)
		assert.InDelta(t, 3+2*math.Sqrt(3), plus, 1e-12)
		assert.InDelta(t, 3-2*math.Sqrt(3), minus, 1e-12)
	})

	t.Run("halves of a circle", func(t *testing.T) {
		plus, minus := SolveCurvature(-0.01, 0.02, 0.02)
		assert.InDelta(t, 0.03, plus, 1e-9)
		assert.InDelta(t, 0.03, minus, 1e-9)
	})

	t.Run("identity holds for a non-negative radicand", func(t *testing.T) {
		for _, ks := range [][3]float64{{1, 1, 1}, {-1, 2, 2}, {2, 3, 6}, {-0.01, 0.02, 0.03}} {
			require.GreaterOrEqual(t, ks[0]*ks[1]+ks[1]*ks[2]+ks[0]*ks[2], 0.0)
			plus, minus := SolveCurvature(ks[0], ks[1], ks[2])
			scale := math.Max(1, plus*plus)
			assert.InDelta(t, 0, descartesResidual(ks[0], ks[1], ks[2], plus)/scale, 1e-9, "%v plus", ks)
			assert.InDelta(t, 0, descartesResidual(ks[0], ks[1], ks[2], minus)/scale, 1e-9, "%v minus", ks)
		}
	})

	t.Run("negative radicand is clamped", func(t *testing.T) {
		// k1k2+k2k3+k1k3 = -5: the classical theorem has no real root here.
		plus, minus := SolveCurvature(1, 1, -3)
		assert.InDelta(t, -1+2*math.Sqrt(5), plus, 1e-12)
		assert.InDelta(t, -1-2*math.Sqrt(5), minus, 1e-12)
		assert.Greater(t, math.Abs(descartesResidual(1, 1, -3, plus)), 1.0,
			"clamped roots are expected to break the Descartes relation")
	})
}

func TestSolveCenters(t *testing.T) {
	t.Run("inner circle of three unit circles", func(t *testing.T) {
		tri := unitTriple()
		plus, minus := SolveCurvature(1, 1, 1)
		centers := SolveCenters(tri, plus, minus)

		assert.InDelta(t, 1, centers[0].X, 1e-9)
		assert.InDelta(t, math.Sqrt(3)/3, centers[0].Y, 1e-9)
	})

	t.Run("halves of a circle", func(t *testing.T) {
		plus, minus := SolveCurvature(-0.01, 0.02, 0.02)
		centers := SolveCenters(halvesTriple(), plus, minus)

		want := []Point{{0, 200.0 / 3}, {0, 200.0 / 3}, {0, -200.0 / 3}, {0, -200.0 / 3}}
		for i, c := range centers {
			assert.InDelta(t, want[i].X, c.X, 1e-6, "candidate %d", i)
			assert.InDelta(t, want[i].Y, c.Y, 1e-6, "candidate %d", i)
		}
	})

	t.Run("zero curvature root gives non-finite centers", func(t *testing.T) {
		centers := SolveCenters(unitTriple(), 0, 1)
		assert.True(t, math.IsInf(centers[0].X, 0) || math.IsNaN(centers[0].X))
	})
}

func TestCandidates(t *testing.T) {
	cs := Candidates(unitTriple(), 7)
	plus, minus := SolveCurvature(1, 1, 1)

	require.Len(t, cs, 4)
	for _, c := range cs {
		assert.Equal(t, 7, c.Generation)
	}
	assert.Equal(t, plus, cs[0].Curvature)
	assert.Equal(t, minus, cs[1].Curvature)
	assert.Equal(t, plus, cs[2].Curvature)
	assert.Equal(t, minus, cs[3].Curvature)
}
