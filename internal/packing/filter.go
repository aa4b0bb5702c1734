package packing

import "math"

// Default tolerances, in the packing's length units.
const (
	DefaultMinRadius          = 4.0
	DefaultDuplicateTolerance = 0.1
	DefaultTangencyTolerance  = 1.01
	DefaultSeedMinRadius      = 60.0
)

// Config holds the tunables of a Generator.
type Config struct {
	// MinRadius is the smallest radius a candidate may have.
	MinRadius float64

	// DuplicateTolerance is the center distance below which a candidate is
	// considered a copy of a registered circle.
	DuplicateTolerance float64

	// TangencyTolerance bounds |d - (r1+r2)| or |d - |r1-r2|| for two circles
	// to count as tangent.
	TangencyTolerance float64

	// SeedMinRadius is the smallest radius the inner seeder will split.
	SeedMinRadius float64

	// Bootstrap makes Initialize pre-seed the bounding circle's interior
	// instead of starting from two halves.
	Bootstrap bool

	// SplitAccepted runs the inner seeder on every accepted circle.
	// Only honoured together with Bootstrap.
	SplitAccepted bool
}

// DefaultConfig returns the tunables the viewer starts with.
func DefaultConfig() Config {
	return Config{
		MinRadius:          DefaultMinRadius,
		DuplicateTolerance: DefaultDuplicateTolerance,
		TangencyTolerance:  DefaultTangencyTolerance,
		SeedMinRadius:      DefaultSeedMinRadius,
		Bootstrap:          true,
		SplitAccepted:      true,
	}
}

// Verdict is the outcome of Check.
type Verdict int

const (
	Accept Verdict = iota
	RejectTooSmall
	RejectDuplicate
	RejectNotTangent
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case RejectTooSmall:
		return "too_small"
	case RejectDuplicate:
		return "duplicate"
	case RejectNotTangent:
		return "not_tangent"
	default:
		return "unknown"
	}
}

// Check decides whether candidate, proposed for t, may join registry.
// Checks run in order: minimum radius, duplicate center anywhere in the
// registry, tangency to every member of t.
func (cfg Config) Check(candidate Circle, t Triple, registry []Circle) Verdict {
	r := candidate.Radius()
	if r < cfg.MinRadius {
		return RejectTooSmall
	}

	for _, c := range registry {
		if c.Center.Dist(candidate.Center) < cfg.DuplicateTolerance {
			return RejectDuplicate
		}
	}

	for _, m := range t {
		if !cfg.tangent(m, candidate) {
			return RejectNotTangent
		}
	}
	return Accept
}

// tangent reports external or internal tangency within TangencyTolerance.
// NaN distances compare false and so never count as tangent.
func (cfg Config) tangent(a, b Circle) bool {
	ra, rb := a.Radius(), b.Radius()
	d := a.Center.Dist(b.Center)
	rSum := ra + rb
	rDiff := math.Abs(ra - rb)
	return math.Abs(d-rSum) < cfg.TangencyTolerance || math.Abs(d-rDiff) < cfg.TangencyTolerance
}
