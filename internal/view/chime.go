package view

import (
	"math"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/apollonian-packing/internal/packing"
)

const (
	noteDuration = 60 * time.Millisecond
	baseFreq     = 220.0
	minFreq      = 110.0
	maxFreq      = 1760.0
)

// Chime is a beep.Streamer that plays one short decaying tone per circle.
// Smaller circles sound higher.
type Chime struct {
	freqs   []float64
	noteLen int
	rate    float64
	volume  float64
	pos     int
}

// NewChime builds a chime for at most maxNotes of circles. reference is the
// radius that sounds at the base frequency.
func NewChime(sr beep.SampleRate, circles []packing.Circle, reference float64, maxNotes int, volume float64) *Chime {
	if len(circles) > maxNotes {
		circles = circles[:maxNotes]
	}
	freqs := make([]float64, len(circles))
	for i, c := range circles {
		freqs[i] = Pitch(c.Radius(), reference)
	}
	return &Chime{
		freqs:   freqs,
		noteLen: sr.N(noteDuration),
		rate:    float64(sr),
		volume:  clamp01(volume),
	}
}

// Pitch maps a radius to a frequency. Halving the radius raises the pitch by
// a factor of sqrt 2. Clamped to [110, 1760] Hz.
func Pitch(radius, reference float64) float64 {
	if radius <= 0 || reference <= 0 {
		return maxFreq
	}
	f := baseFreq * math.Sqrt(reference/radius)
	return math.Max(minFreq, math.Min(maxFreq, f))
}

// Len returns the total number of samples.
func (c *Chime) Len() int { return len(c.freqs) * c.noteLen }

func (c *Chime) Stream(samples [][2]float64) (n int, ok bool) {
	total := c.Len()
	if c.pos >= total {
		return 0, false
	}
	for i := range samples {
		if c.pos >= total {
			break
		}
		note := c.pos / c.noteLen
		t := c.pos % c.noteLen
		env := 1 - float64(t)/float64(c.noteLen)
		v := c.volume * env * math.Sin(2*math.Pi*c.freqs[note]*float64(t)/c.rate)
		samples[i][0], samples[i][1] = v, v
		c.pos++
		n++
	}
	return n, true
}

func (c *Chime) Err() error { return nil }
