package tween

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

const frame = 1.0 / 60

func run(t *Track, seconds float64) float64 {
	steps := int(math.Ceil(seconds / frame))
	for i := 0; i < steps; i++ {
		t.Update(frame)
	}
	return t.Value()
}

func TestTrackReachesTargetExactly(t *testing.T) {
	track := NewTrack(0, 2*time.Second)
	track.Retarget(10)

	run(track, 2.1)
	if track.Value() != 10 {
		t.Fatalf("expected exact target 10, got %v", track.Value())
	}
	if !track.Settled() {
		t.Fatal("expected track to settle")
	}
}

func TestTrackOutCubicShape(t *testing.T) {
	track := NewTrack(0, time.Second)
	track.Retarget(1)
	got := track.Update(0.5)
	if math.Abs(got-0.875) > 1e-6 {
		t.Fatalf("power3.out at half time should be 0.875, got %v", got)
	}
}

func TestRetargetSameValueDoesNotRestart(t *testing.T) {
	track := NewTrack(0, 2*time.Second)
	track.Retarget(10)
	before := run(track, 0.5)

	for i := 0; i < 30; i++ {
		if track.Retarget(10) {
			t.Fatal("retargeting to the same value restarted the ease")
		}
		v := track.Update(frame)
		if v < before {
			t.Fatalf("value went backwards: %v -> %v", before, v)
		}
		before = v
	}

	run(track, 2)
	if track.Value() != 10 {
		t.Fatalf("re-invoked every frame, the track must still arrive; got %v", track.Value())
	}
}

func TestRetargetContinuesFromCurrentValue(t *testing.T) {
	track := NewTrack(0, 2*time.Second)
	track.Retarget(10)
	mid := run(track, 0.5)

	if !track.Retarget(-4) {
		t.Fatal("expected a new ease for a new target")
	}
	next := track.Update(frame)
	if math.Abs(next-mid) > 0.5 {
		t.Fatalf("value jumped on retarget: %v -> %v", mid, next)
	}
	if next > mid {
		t.Fatalf("expected movement toward the new target, %v -> %v", mid, next)
	}

	run(track, 2.1)
	if track.Value() != -4 {
		t.Fatalf("expected -4, got %v", track.Value())
	}
}

func TestTrackDelay(t *testing.T) {
	track := NewTrack(0, 800*time.Millisecond).WithDelay(500 * time.Millisecond)
	track.Retarget(1)

	if v := track.Update(0.4); v != 0 {
		t.Fatalf("value moved during delay: %v", v)
	}
	if v := track.Update(0.2); v <= 0 || v >= 1 {
		t.Fatalf("expected easing to begin after the delay, got %v", v)
	}
	run(track, 1)
	if track.Value() != 1 {
		t.Fatalf("expected 1, got %v", track.Value())
	}
}

func TestZeroDurationJumps(t *testing.T) {
	track := NewTrack(3, 0)
	track.Retarget(7)
	if track.Value() != 7 || !track.Settled() {
		t.Fatalf("zero duration track should jump, got %v", track.Value())
	}
}

func TestSnapAndEasingOverride(t *testing.T) {
	track := NewTrack(0, time.Second).WithEasing(ease.Linear)
	track.Retarget(1)
	if got := track.Update(0.25); math.Abs(got-0.25) > 1e-6 {
		t.Fatalf("linear easing at 0.25 = %v", got)
	}

	track.Snap(5)
	if track.Value() != 5 || track.Target() != 5 || !track.Settled() {
		t.Fatalf("snap failed: value %v target %v", track.Value(), track.Target())
	}
	if track.Update(frame) != 5 {
		t.Fatal("snapped track must hold still")
	}
}

func TestMulti(t *testing.T) {
	m := NewMulti(time.Second, 0, 0, 0, 0)
	if !m.Retarget(0.7, 0.7, 0.7, 0.7) {
		t.Fatal("expected retarget to start")
	}
	if m.Retarget(0.7, 0.7, 0.7, 0.7) {
		t.Fatal("same targets must not restart")
	}

	for i := 0; i < 70; i++ {
		m.Update(frame)
	}
	for i, v := range m.Values() {
		if v != 0.7 {
			t.Fatalf("component %d = %v, want 0.7", i, v)
		}
	}
	if !m.Settled() {
		t.Fatal("expected settled")
	}

	m.Retarget(1)
	m.Update(frame)
	if vals := m.Values(); vals[0] <= 0.7 || vals[1] != 0.7 {
		t.Fatalf("partial retarget touched the wrong components: %v", vals)
	}
}
