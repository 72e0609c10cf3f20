package carousel

import (
	"math"
	"testing"
)

func snapshotAt(progress float64) Snapshot {
	return Snapshot{Progress: progress, Settings: DefaultSettings()}
}

func TestCenterIndex(t *testing.T) {
	cases := []struct {
		progress float64
		n        int
		want     int
	}{
		{0, 6, 0},
		{100, 6, 6},
		{50, 6, 3},
		{25, 6, 2}, // 1.5 rounds up
		{24, 6, 1},
		{50, 0, 0},
	}
	for _, c := range cases {
		if got := CenterIndex(c.progress, c.n); got != c.want {
			t.Errorf("CenterIndex(%v, %d) = %d, want %d", c.progress, c.n, got, c.want)
		}
	}
}

func TestVisibilityAroundCenter(t *testing.T) {
	frame := Solve(snapshotAt(50), 6)
	if frame.CenterIndex != 3 || frame.Fraction != 3 {
		t.Fatalf("expected fraction 3 and center 3, got %v/%d", frame.Fraction, frame.CenterIndex)
	}

	want := []bool{false, false, true, true, true, false}
	for i, item := range frame.Items {
		if item.Visible != want[i] {
			t.Errorf("item %d visible = %v, want %v", i, item.Visible, want[i])
		}
	}
}

func TestVisibilityWithActiveItem(t *testing.T) {
	snap := snapshotAt(50)
	snap.HasActive = true
	snap.ActiveIndex = 0

	frame := Solve(snap, 6)
	for i, item := range frame.Items {
		if item.Visible != (i == 0) {
			t.Errorf("item %d visible = %v with active 0", i, item.Visible)
		}
		if item.Active != (i == 0) {
			t.Errorf("item %d active = %v", i, item.Active)
		}
		wantProgress := 0.0
		if i == 0 {
			wantProgress = 1
		}
		if item.ProgressToActive != wantProgress {
			t.Errorf("item %d progressToActive = %v, want %v", i, item.ProgressToActive, wantProgress)
		}
	}
}

func TestGrayOverlayAlpha(t *testing.T) {
	for progress := 0.0; progress <= 100; progress++ {
		frame := Solve(snapshotAt(progress), 6)
		for _, item := range frame.Items {
			want := OverlayDimmed
			if item.Distance == 0 {
				want = 0
			}
			if item.GrayOverlay.W != want {
				t.Fatalf("progress %v item %d (distance %d): alpha %v, want %v",
					progress, item.Index, item.Distance, item.GrayOverlay.W, want)
			}
			if item.GrayOverlay.X != OverlayGray || item.GrayOverlay.Y != OverlayGray || item.GrayOverlay.Z != OverlayGray {
				t.Fatalf("unexpected overlay color %+v", item.GrayOverlay)
			}
		}
	}
}

func TestItemTargets(t *testing.T) {
	settings := DefaultSettings()
	snap := Snapshot{Progress: 50, ScrollVelocity: -15, Settings: settings}
	frame := Solve(snap, 6)

	center := frame.Items[3]
	if center.Scale != CenteredScale || center.DistanceFlag != 0 {
		t.Fatalf("center target wrong: %+v", center)
	}
	if center.Position != (Vec3{}) {
		t.Fatalf("center position = %+v, want origin", center.Position)
	}

	above := frame.Items[1]
	pitch := settings.ItemHeight + settings.ItemGap
	if above.Position.Y != 2*pitch || above.Position.Z != -1 {
		t.Fatalf("item 1 position = %+v, want y=%v z=-1", above.Position, 2*pitch)
	}
	if above.Scale != SideScale || above.DistanceFlag != 1 {
		t.Fatalf("side target wrong: %+v", above)
	}

	below := frame.Items[5]
	if below.Position.Y != -2*pitch || math.Abs(below.Position.Z-(-1)) > 1e-12 {
		t.Fatalf("item 5 position = %+v", below.Position)
	}

	for _, item := range frame.Items {
		if item.ScrollSpeed != -15 {
			t.Fatalf("item %d scroll speed %v, want -15", item.Index, item.ScrollSpeed)
		}
	}
}

func TestProgressEndHidesAllButLast(t *testing.T) {
	frame := Solve(snapshotAt(100), 6)
	for i, item := range frame.Items {
		if item.Visible != (i == 5) {
			t.Errorf("item %d visible = %v at progress 100", i, item.Visible)
		}
	}
}

func TestZeroItems(t *testing.T) {
	frame := Solve(snapshotAt(40), 0)
	if len(frame.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(frame.Items))
	}
	if frame.CenterIndex != 0 {
		t.Fatalf("expected center 0, got %d", frame.CenterIndex)
	}
}

func TestGroupAndOverlayTargets(t *testing.T) {
	s := NewStore(DefaultSettings())

	frame := Solve(s.BeginFrame(), 6)
	if frame.GroupRotation != s.Settings().DefaultRotation || frame.GroupPosition != s.Settings().DefaultPosition {
		t.Fatalf("idle group targets wrong: %+v %+v", frame.GroupRotation, frame.GroupPosition)
	}
	if frame.OverlayOpacity != 0 || frame.OverlayLeft != OverlayHiddenLeft {
		t.Fatalf("idle overlay targets wrong: %v %v", frame.OverlayOpacity, frame.OverlayLeft)
	}

	s.OnItemClick(2)
	frame = Solve(s.BeginFrame(), 6)
	if frame.GroupRotation != s.Settings().ActiveRotation || frame.GroupPosition != s.Settings().ActivePosition {
		t.Fatalf("active group targets wrong: %+v %+v", frame.GroupRotation, frame.GroupPosition)
	}
	if frame.OverlayOpacity != 1 || frame.OverlayLeft != OverlayShownLeft {
		t.Fatalf("active overlay targets wrong: %v %v", frame.OverlayOpacity, frame.OverlayLeft)
	}
}

func TestTweakedRotationFlowsIntoFrame(t *testing.T) {
	s := NewStore(DefaultSettings())
	s.Settings().Rotation.Y = 1.25
	frame := Solve(s.BeginFrame(), 3)
	if frame.GroupRotation.Y != 1.25 {
		t.Fatalf("expected tweaked rotation, got %+v", frame.GroupRotation)
	}
}

func TestViewportAndZoom(t *testing.T) {
	w, h := ViewportSize(90, 5, 2)
	if math.Abs(h-10) > 1e-9 || math.Abs(w-20) > 1e-9 {
		t.Fatalf("ViewportSize = %v x %v, want 20 x 10", w, h)
	}

	zx, zy := ZoomScale(20, 10, 5, 4)
	if zx != 4 || zy != 2.5 {
		t.Fatalf("ZoomScale = %v,%v", zx, zy)
	}
	if zx, zy := ZoomScale(20, 10, 0, 4); zx != 1 || zy != 1 {
		t.Fatalf("degenerate ZoomScale = %v,%v", zx, zy)
	}
}

func TestOverlayOffsetDelay(t *testing.T) {
	if OverlayOffsetDelay != 500_000_000 {
		t.Fatalf("offset tween should start 0.5s after the opacity tween, got %v", OverlayOffsetDelay)
	}
}
