package view

// Edges turns per-frame key states into just-pressed events.
type Edges[K comparable] struct {
	prev map[K]bool
}

func NewEdges[K comparable]() *Edges[K] {
	return &Edges[K]{prev: map[K]bool{}}
}

// JustPressed records k's state for this frame and reports whether it went
// down since the previous one.
func (e *Edges[K]) JustPressed(k K, down bool) bool {
	jp := down && !e.prev[k]
	e.prev[k] = down
	return jp
}

// Any polls every key in keys, then reports whether at least one of them went
// down this frame. All keys are recorded even when an earlier one fired.
func (e *Edges[K]) Any(isDown func(K) bool, keys ...K) bool {
	fired := false
	for _, k := range keys {
		if e.JustPressed(k, isDown(k)) {
			fired = true
		}
	}
	return fired
}
