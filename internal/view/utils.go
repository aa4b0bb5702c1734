package view

import (
	"fmt"
	"time"

	"github.com/iburimskiy/apollonian-packing/internal/packing"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Status formats the one-line HUD text.
func Status(generation, circles, queued int, last packing.PassStats, muted bool) string {
	s := fmt.Sprintf("gen %d | circles %d | queued %d", generation, circles, queued)
	if last.Processed > 0 {
		s += fmt.Sprintf(" | last pass +%d in %s", last.Accepted+last.Seeded, formatDuration(last.Duration))
	}
	if muted {
		s += " | muted"
	}
	return s
}

// formatDuration formats a duration with millisecond precision
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
}
