// Package tween eases scalar properties toward targets that may change every
// frame. Each Track owns one (object, property) pair: retargeting to the value
// it already heads for is a no-op, retargeting to a new value starts a fresh
// ease from wherever the property currently is.
package tween

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultEasing decelerates like a cubic ease-out ("power3.out").
var DefaultEasing ease.TweenFunc = ease.OutCubic

type Track struct {
	duration time.Duration
	delay    time.Duration
	easing   ease.TweenFunc

	tween *gween.Tween
	wait  float64

	value  float64
	target float64
}

func NewTrack(value float64, duration time.Duration) *Track {
	return &Track{
		duration: duration,
		easing:   DefaultEasing,
		value:    value,
		target:   value,
	}
}

// WithEasing replaces the easing curve used by later retargets.
func (t *Track) WithEasing(easing ease.TweenFunc) *Track {
	t.easing = easing
	return t
}

// WithDelay holds the current value for d after each retarget before easing.
func (t *Track) WithDelay(d time.Duration) *Track {
	t.delay = d
	return t
}

// Retarget points the track at target. It reports whether a new ease started.
func (t *Track) Retarget(target float64) bool {
	if target == t.target {
		return false
	}
	t.target = target

	if t.duration <= 0 {
		t.value = target
		t.tween = nil
		return true
	}

	t.tween = gween.New(float32(t.value), float32(target), float32(t.duration.Seconds()), t.easing)
	t.wait = t.delay.Seconds()
	return true
}

// Update advances the running ease by dt seconds and returns the new value.
func (t *Track) Update(dt float64) float64 {
	if t.tween == nil || dt <= 0 {
		return t.value
	}

	if t.wait > 0 {
		t.wait -= dt
		if t.wait > 0 {
			return t.value
		}
		dt = -t.wait
		t.wait = 0
	}

	current, finished := t.tween.Update(float32(dt))
	t.value = float64(current)
	if finished {
		t.value = t.target
		t.tween = nil
	}
	return t.value
}

// Snap jumps to v and drops any running ease.
func (t *Track) Snap(v float64) {
	t.value = v
	t.target = v
	t.tween = nil
	t.wait = 0
}

func (t *Track) Value() float64  { return t.value }
func (t *Track) Target() float64 { return t.target }
func (t *Track) Settled() bool   { return t.tween == nil }
