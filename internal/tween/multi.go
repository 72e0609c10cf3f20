package tween

import "time"

// Multi eases a fixed-size vector component-wise, one Track per component.
type Multi struct {
	tracks []*Track
	values []float64
}

func NewMulti(duration time.Duration, values ...float64) *Multi {
	m := &Multi{
		tracks: make([]*Track, len(values)),
		values: make([]float64, len(values)),
	}
	for i, v := range values {
		m.tracks[i] = NewTrack(v, duration)
		m.values[i] = v
	}
	return m
}

// Retarget moves every component toward the matching target. Extra targets
// are ignored; missing ones leave their component alone.
func (m *Multi) Retarget(targets ...float64) bool {
	started := false
	for i, track := range m.tracks {
		if i >= len(targets) {
			break
		}
		if track.Retarget(targets[i]) {
			started = true
		}
	}
	return started
}

// Update advances all components. The returned slice is reused between calls.
func (m *Multi) Update(dt float64) []float64 {
	for i, track := range m.tracks {
		m.values[i] = track.Update(dt)
	}
	return m.values
}

func (m *Multi) Values() []float64 {
	return m.values
}

func (m *Multi) Settled() bool {
	for _, track := range m.tracks {
		if !track.Settled() {
			return false
		}
	}
	return true
}
