package packing

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func classicConfig() Config {
	cfg := DefaultConfig()
	cfg.Bootstrap = false
	cfg.SplitAccepted = false
	return cfg
}

func TestGenerator_FirstPassFromHalves(t *testing.T) {
	g := NewGenerator(classicConfig(), WithLogger(quietLogger()))
	g.Seed(0, halvesTriple())

	require.Equal(t, 3, g.Len())
	require.Equal(t, 1, g.QueueLen())
	require.Equal(t, 0, g.Generation())

	stats := g.AdvanceGeneration()

	assert.Equal(t, 1, stats.Generation)
	assert.Equal(t, 1, stats.Processed)
	assert.Equal(t, 4, stats.Candidates)
	assert.Equal(t, 2, stats.Accepted)
	assert.Equal(t, 2, stats.Duplicate)
	assert.Zero(t, stats.TooSmall)
	assert.Zero(t, stats.NotTangent)

	circles := g.Circles()
	require.Len(t, circles, 5)
	wantY := []float64{200.0 / 3, -200.0 / 3}
	for i, c := range circles[3:] {
		assert.InDelta(t, 0, c.Center.X, 1e-6)
		assert.InDelta(t, wantY[i], c.Center.Y, 1e-6)
		assert.InDelta(t, 100.0/3, c.Radius(), 1e-6)
		assert.Equal(t, 1, c.Generation)
	}

	assert.Equal(t, 1, g.Generation())
	assert.Equal(t, 6, g.QueueLen())
}

func TestGenerator_SnapshotDiscipline(t *testing.T) {
	g := NewGenerator(classicConfig(), WithLogger(quietLogger()))
	g.Seed(0, halvesTriple())

	first := g.AdvanceGeneration()
	queued := g.QueueLen()
	assert.Equal(t, 3*first.Accepted, queued)

	second := g.AdvanceGeneration()
	assert.Equal(t, queued, second.Processed, "a pass drains exactly the triples queued before it")
	assert.Equal(t, 3*second.Accepted, g.QueueLen())
}

func TestGenerator_EmptyQueue(t *testing.T) {
	g := NewGenerator(classicConfig(), WithLogger(quietLogger()))
	g.Seed(4)

	stats := g.AdvanceGeneration()
	assert.Zero(t, stats.Processed)
	assert.Zero(t, stats.Accepted)
	assert.Zero(t, g.Len())
	assert.Equal(t, 5, g.Generation())

	g.Seed(0, halvesTriple())
	for g.QueueLen() > 0 {
		g.AdvanceGeneration()
		require.Less(t, g.Generation(), 200, "packing did not settle")
	}
	before := g.Circles()
	gen := g.Generation()

	g.AdvanceGeneration()
	assert.Equal(t, before, g.Circles())
	assert.Equal(t, gen+1, g.Generation())
}

func TestGenerator_Invariants(t *testing.T) {
	type origin struct {
		circle Circle
		parent Triple
	}
	var accepted []origin

	cfg := classicConfig()
	g := NewGenerator(cfg,
		WithLogger(quietLogger()),
		WithObserver(func(c Circle, parent Triple) {
			accepted = append(accepted, origin{c, parent})
		}),
	)
	g.Initialize(100, Point{0, 0})
	require.Equal(t, 1, g.Generation())
	require.Equal(t, 3, g.Len())

	prev := g.Generation()
	for i := 0; i < 8; i++ {
		want := g.Generation() + 1
		start := len(accepted)
		g.AdvanceGeneration()

		assert.GreaterOrEqual(t, g.Generation(), prev)
		prev = g.Generation()
		for _, o := range accepted[start:] {
			assert.Equal(t, want, o.circle.Generation)
		}
	}
	require.NotEmpty(t, accepted)

	t.Run("tangent to the generating triple", func(t *testing.T) {
		for _, o := range accepted {
			for _, m := range o.parent {
				d := m.Center.Dist(o.circle.Center)
				rSum := m.Radius() + o.circle.Radius()
				rDiff := math.Abs(m.Radius() - o.circle.Radius())
				ok := math.Abs(d-rSum) < cfg.TangencyTolerance || math.Abs(d-rDiff) < cfg.TangencyTolerance
				assert.True(t, ok, "circle %+v not tangent to %+v", o.circle, m)
			}
		}
	})

	t.Run("descartes identity", func(t *testing.T) {
		var clamped int
		for _, o := range accepted {
			k1, k2, k3 := o.parent[0].Curvature, o.parent[1].Curvature, o.parent[2].Curvature
			k4 := o.circle.Curvature
			if k1*k2+k2*k3+k1*k3 < 0 {
				clamped++
				continue
			}
			scale := math.Pow(math.Abs(k1)+math.Abs(k2)+math.Abs(k3)+math.Abs(k4), 2)
			assert.LessOrEqual(t, math.Abs(descartesResidual(k1, k2, k3, k4)), 1e-6*scale)
		}
		t.Logf("%d of %d accepted circles came from a clamped radicand", clamped, len(accepted))
	})

	t.Run("minimum radius", func(t *testing.T) {
		for _, c := range g.Circles() {
			assert.GreaterOrEqual(t, c.Radius(), cfg.MinRadius)
		}
	})

	t.Run("no duplicates", func(t *testing.T) {
		circles := g.Circles()
		for i := range circles {
			for j := i + 1; j < len(circles); j++ {
				assert.GreaterOrEqual(t, circles[i].Center.Dist(circles[j].Center), cfg.DuplicateTolerance)
			}
		}
	})
}

func TestGenerator_Bootstrap(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGenerator(cfg, WithSeed(7), WithLogger(quietLogger()))
	g.Initialize(210, Point{400, 300})

	circles := g.Circles()
	require.Greater(t, len(circles), 1)
	assert.Equal(t, 2, g.Generation())
	assert.Equal(t, -1.0/210, circles[0].Curvature)
	assert.Equal(t, Point{400, 300}, circles[0].Center)
	assert.Equal(t, (len(circles)-1)/2, g.QueueLen(), "one triple per split")

	for _, tri := range g.queue {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			d := a.Center.Dist(b.Center)
			rSum := a.Radius() + b.Radius()
			rDiff := math.Abs(a.Radius() - b.Radius())
			assert.True(t, math.Abs(d-rSum) < 1e-6 || math.Abs(d-rDiff) < 1e-6)
		}
	}

	var accepted int
	for i := 0; i < 3; i++ {
		before := g.Len()
		stats := g.AdvanceGeneration()
		accepted += stats.Accepted
		assert.Equal(t, before+stats.Accepted+stats.Seeded, g.Len())
	}
	assert.Equal(t, 5, g.Generation())
	assert.Positive(t, accepted)
}

func TestGenerator_BootstrapKeepsCentersDistinct(t *testing.T) {
	cfg := DefaultConfig()
	require.True(t, cfg.Bootstrap)
	require.True(t, cfg.SplitAccepted)

	for seed := uint64(1); seed <= 20; seed++ {
		g := NewGenerator(cfg, WithSeed(seed), WithLogger(quietLogger()))
		g.Initialize(210, Point{400, 300})
		assertDistinctCenters(t, g.Circles(), cfg.DuplicateTolerance)

		for i := 0; i < 4; i++ {
			g.AdvanceGeneration()
		}
		assertDistinctCenters(t, g.Circles(), cfg.DuplicateTolerance)
	}
}

func TestGenerator_BootstrapIsDeterministicPerSeed(t *testing.T) {
	run := func() []Circle {
		g := NewGenerator(DefaultConfig(), WithSeed(42), WithLogger(quietLogger()))
		g.Initialize(300, Point{0, 0})
		g.AdvanceGeneration()
		g.AdvanceGeneration()
		return g.Circles()
	}
	assert.Equal(t, run(), run())
}

func TestGenerator_Independent(t *testing.T) {
	a := NewGenerator(classicConfig(), WithLogger(quietLogger()))
	b := NewGenerator(classicConfig(), WithLogger(quietLogger()))
	a.Initialize(100, Point{0, 0})
	b.Initialize(100, Point{0, 0})

	a.AdvanceGeneration()
	a.AdvanceGeneration()

	assert.Equal(t, 1, b.Generation())
	assert.Equal(t, 3, b.Len())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestGenerator_SeedRegistersSharedMembersOnce(t *testing.T) {
	tri := halvesTriple()
	other := Triple{tri[0], tri[1], {Center: Point{0, 200.0 / 3}, Curvature: 0.03}}

	g := NewGenerator(classicConfig(), WithLogger(quietLogger()))
	g.Seed(3, tri, other)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 2, g.QueueLen())
	assert.Equal(t, 3, g.Generation())
}

func TestGenerator_CirclesIsACopy(t *testing.T) {
	g := NewGenerator(classicConfig(), WithLogger(quietLogger()))
	g.Seed(0, halvesTriple())

	c := g.Circles()
	c[0].Curvature = 99
	assert.Equal(t, -0.01, g.Circles()[0].Curvature)
}
