package game

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/apollonian-packing/internal/config"
	"github.com/iburimskiy/apollonian-packing/internal/packing"
	"github.com/iburimskiy/apollonian-packing/internal/view"
)

// sound plays a chime for the circles accepted by each generation pass.
// Audio chain: chime -> tap -> ctrl -> speaker.
type sound struct {
	enabled  bool
	volume   float64
	maxNotes int
	rate     beep.SampleRate
	logger   *slog.Logger

	initDone bool
	muted    bool
	ctrl     *beep.Ctrl
	tap      *view.Tap

	// written from the speaker goroutine
	playing atomic.Bool
}

func newSound(cfg config.SoundConfig, logger *slog.Logger) *sound {
	return &sound{
		enabled:  cfg.Enabled,
		volume:   cfg.Volume,
		maxNotes: cfg.MaxNotes,
		rate:     beep.SampleRate(config.SampleRate),
		logger:   logger,
	}
}

// play replaces whatever is playing with a chime for circles. reference is
// the radius that sounds at the base pitch.
func (s *sound) play(circles []packing.Circle, reference float64) error {
	if !s.enabled || s.muted || s.maxNotes == 0 || len(circles) == 0 {
		return nil
	}

	bufferSize := s.rate.N(time.Second / 20)
	if !s.initDone {
		if err := speaker.Init(s.rate, bufferSize); err != nil {
			// No audio device; keep running silently.
			s.enabled = false
			return fmt.Errorf("init speaker: %w", err)
		}
		s.initDone = true
	} else {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}

	chime := view.NewChime(s.rate, circles, reference, s.maxNotes, s.volume)
	t := view.NewTap(chime, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	s.tap = t
	s.ctrl = ctrl
	s.playing.Store(true)

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		s.playing.Store(false)
	})))
	s.logger.Debug("chime started", "notes", min(len(circles), s.maxNotes))
	return nil
}

func (s *sound) toggleMute() {
	s.muted = !s.muted
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = s.muted
	speaker.Unlock()
}

// waveform returns the most recent samples while a chime is playing.
func (s *sound) waveform(n int) [][2]float64 {
	if s.tap == nil || s.muted || !s.playing.Load() {
		return nil
	}
	return s.tap.Snapshot(n)
}
