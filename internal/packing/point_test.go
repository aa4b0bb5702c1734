package packing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Arithmetic(t *testing.T) {
	a := Point{1, 2}
	b := Point{3, -4}

	assert.Equal(t, Point{4, -2}, a.Add(b))
	assert.Equal(t, Point{-2, 6}, a.Sub(b))
	assert.Equal(t, Point{2.5, 5}, a.Scale(2.5))
	assert.InDelta(t, math.Sqrt(4+36), a.Dist(b), 1e-12)
}

func TestPoint_Mul(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Point
	}{
		{"i squared", Point{0, 1}, Point{0, 1}, Point{-1, 0}},
		{"real", Point{3, 0}, Point{-2, 0}, Point{-6, 0}},
		{"general", Point{1, 2}, Point{3, 4}, Point{-5, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Mul(tt.b)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}
}

func TestPoint_Sqrt(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"positive real", Point{4, 0}, Point{2, 0}},
		{"negative real", Point{-1, 0}, Point{0, 1}},
		{"imaginary", Point{0, 2}, Point{1, 1}},
		{"lower half plane", Point{0, -2}, Point{1, -1}},
		{"zero", Point{0, 0}, Point{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Sqrt()
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}

	t.Run("squares back", func(t *testing.T) {
		for _, p := range []Point{{3, 4}, {-7, 2}, {-0.5, -9}, {1e-3, 1e3}} {
			r := p.Sqrt()
			sq := r.Mul(r)
			assert.InDelta(t, p.X, sq.X, 1e-9, "%v", p)
			assert.InDelta(t, p.Y, sq.Y, 1e-9, "%v", p)
			assert.GreaterOrEqual(t, r.X, 0.0, "principal root has non-negative real part")
		}
	})
}
