package view

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap sits between a generation's Chime and the speaker. It records the last
// samples sent to the device so the viewer can draw the chime as a waveform
// strip while it plays. Stream runs on the speaker goroutine and Snapshot on
// the ebiten one, hence the lock.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

// NewTap wraps src, keeping the most recent ringSize samples.
func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns the last n samples (stereo), oldest first.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
