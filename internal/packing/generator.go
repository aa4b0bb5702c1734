package packing

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// bootstrapGeneration is the counter value after Initialize pre-seeds the
// interior.
const bootstrapGeneration = 2

// Observer is told about every circle the scheduler accepts, together with
// the triple it was generated from.
type Observer func(accepted Circle, parent Triple)

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source used by the inner seeder.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithSeed seeds the inner seeder deterministically.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithLogger sets the logger. Pass summaries are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithObserver registers fn to be called for each accepted circle.
func WithObserver(fn Observer) Option {
	return func(g *Generator) {
		g.observers = append(g.observers, fn)
	}
}

// PassStats summarises one call to AdvanceGeneration.
type PassStats struct {
	// Generation is the counter value after the pass.
	Generation int

	Processed  int
	Candidates int
	Accepted   int
	TooSmall   int
	Duplicate  int
	NotTangent int

	// Seeded counts circles added by the inner seeder inside accepted circles.
	Seeded int

	Duration time.Duration
}

// Generator owns one packing: its circle registry, its queue of tangent
// triples and its generation counter.
type Generator struct {
	id        uuid.UUID
	cfg       Config
	rng       *rand.Rand
	logger    *slog.Logger
	observers []Observer

	circles    []Circle
	queue      []Triple
	generation int
}

// NewGenerator returns an empty generator. Call Initialize or Seed before
// advancing it.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		id:     uuid.New(),
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := uint64(time.Now().UnixNano())
		g.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	g.logger = g.logger.With("packing", g.id.String())
	return g
}

func (g *Generator) ID() uuid.UUID { return g.id }

func (g *Generator) Config() Config { return g.cfg }

// Initialize clears the packing and seeds it inside a bounding circle of the
// given radius.
//
// Without Bootstrap the bounding circle is split into two halves, giving a
// single queued triple and a counter of 1. With Bootstrap the interior is
// filled by Split and the counter starts at 2.
func (g *Generator) Initialize(boundingRadius float64, center Point) {
	bounding := Circle{Center: center, Curvature: -1 / boundingRadius}

	if !g.cfg.Bootstrap {
		half := boundingRadius / 2
		left := Circle{Center: Point{center.X - half, center.Y}, Curvature: 1 / half}
		right := Circle{Center: Point{center.X + half, center.Y}, Curvature: 1 / half}
		g.Seed(1, Triple{bounding, left, right})
		return
	}

	g.reset(bootstrapGeneration)
	g.circles = append(g.circles, bounding)
	n := g.split(bounding)
	g.logger.Info("packing initialized",
		"radius", boundingRadius,
		"seeded", n,
		"queued", len(g.queue),
	)
}

// Seed clears the packing, registers the members of triples (each distinct
// circle once) and queues the triples. The counter is set to generation.
func (g *Generator) Seed(generation int, triples ...Triple) {
	g.reset(generation)
	for _, t := range triples {
		for _, c := range t {
			if !g.registered(c) {
				g.circles = append(g.circles, c)
			}
		}
		g.queue = append(g.queue, t)
	}
}

// AdvanceGeneration runs one pass of the scheduler. Only the triples queued
// before the call are expanded; triples created during the pass wait for the
// next one. The counter increases by one even when the queue was empty.
func (g *Generator) AdvanceGeneration() PassStats {
	start := time.Now()
	next := g.generation + 1

	pending := g.queue
	g.queue = nil

	stats := PassStats{Processed: len(pending)}
	for _, t := range pending {
		for _, c := range Candidates(t, next) {
			stats.Candidates++
			switch g.cfg.Check(c, t, g.circles) {
			case RejectTooSmall:
				stats.TooSmall++
			case RejectDuplicate:
				stats.Duplicate++
			case RejectNotTangent:
				stats.NotTangent++
			case Accept:
				stats.Accepted++
				stats.Seeded += g.accept(c, t)
			}
		}
	}

	g.generation = next
	stats.Generation = g.generation
	stats.Duration = time.Since(start)

	recordPass(context.Background(), stats)
	g.logger.Debug("generation pass complete",
		"generation", stats.Generation,
		"processed", stats.Processed,
		"accepted", stats.Accepted,
		"too_small", stats.TooSmall,
		"duplicate", stats.Duplicate,
		"not_tangent", stats.NotTangent,
		"queued", len(g.queue),
		"circles", len(g.circles),
		"duration", stats.Duration,
	)
	return stats
}

// Circles returns a copy of the registry in insertion order.
func (g *Generator) Circles() []Circle {
	out := make([]Circle, len(g.circles))
	copy(out, g.circles)
	return out
}

// Len returns the number of registered circles.
func (g *Generator) Len() int { return len(g.circles) }

// Generation returns the generation counter.
func (g *Generator) Generation() int { return g.generation }

// QueueLen returns the number of triples waiting for the next pass.
func (g *Generator) QueueLen() int { return len(g.queue) }

func (g *Generator) reset(generation int) {
	g.circles = nil
	g.queue = nil
	g.generation = generation
}

// accept registers c, queues its three adjacent triples and, when enabled,
// seeds its interior. It returns the number of seeded circles.
func (g *Generator) accept(c Circle, parent Triple) int {
	g.circles = append(g.circles, c)
	for _, t := range parent.adjacent(c) {
		g.queue = append(g.queue, t)
	}
	for _, fn := range g.observers {
		fn(c, parent)
	}

	if g.cfg.Bootstrap && g.cfg.SplitAccepted {
		return g.split(c.interior())
	}
	return 0
}

func (g *Generator) split(c Circle) int {
	circles, triples := splitAvoiding(c, g.cfg.SeedMinRadius, g.cfg.DuplicateTolerance, g.rng, g.circles)
	g.circles = append(g.circles, circles...)
	g.queue = append(g.queue, triples...)
	return len(circles)
}

func (g *Generator) registered(c Circle) bool {
	for _, r := range g.circles {
		if r == c {
			return true
		}
	}
	return false
}
