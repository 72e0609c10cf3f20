package carousel

import (
	"math"

	"carousel3d/internal/mathutil"
)

// ScrollMapper turns wheel deltas into snapped, clamped progress.
type ScrollMapper struct {
	Sensitivity float64
}

func NewScrollMapper(sensitivity float64) ScrollMapper {
	if sensitivity <= 0 || math.IsNaN(sensitivity) {
		sensitivity = ScrollSensitivity
	}
	return ScrollMapper{Sensitivity: sensitivity}
}

// OnScroll applies a wheel delta (browser convention: positive scrolls down).
// It is a no-op while an item is focused. Returns whether progress changed.
func (m ScrollMapper) OnScroll(s *Store, deltaY float64) bool {
	s.mustBeMounted("ScrollMapper.OnScroll")
	if s.hasActive || math.IsNaN(deltaY) {
		return false
	}

	raw := s.progress + deltaY*m.Sensitivity
	next := mathutil.Clamp(mathutil.RoundHalfUp(raw), ProgressMin, ProgressMax)
	if next == s.progress {
		return false
	}
	s.progress = next
	return true
}
