package carousel

import (
	"math"

	"carousel3d/internal/mathutil"
)

// ItemTarget is where one item should ease toward this frame.
type ItemTarget struct {
	Index    int
	Distance int

	Position Vec3
	Scale    float64
	Visible  bool

	GrayOverlay      Vec4
	DistanceFlag     float64
	ScrollSpeed      float64
	ProgressToActive float64
	Active           bool
}

// Frame is the solved layout for one rendered tick.
type Frame struct {
	ScrollVelocity float64
	Fraction       float64
	CenterIndex    int
	ActiveIndex    int
	HasActive      bool

	Items []ItemTarget

	GroupRotation Vec3
	GroupPosition Vec3

	OverlayOpacity float64
	OverlayLeft    float64
}

// CenterIndex is the item nearest to progress when n items span [0,100].
// progress 100 maps to n, one past the last item.
func CenterIndex(progress float64, n int) int {
	fraction := (progress / 100) * float64(n)
	return int(mathutil.RoundHalfUp(fraction))
}

// Solve maps a snapshot to per-item and group targets. It is pure; the
// velocity bookkeeping already happened in Store.BeginFrame.
func Solve(snap Snapshot, n int) Frame {
	progress := mathutil.Clamp(snap.Progress, ProgressMin, ProgressMax)
	settings := snap.Settings

	frame := Frame{
		ScrollVelocity: snap.ScrollVelocity,
		Fraction:       (progress / 100) * float64(n),
		CenterIndex:    CenterIndex(progress, n),
		ActiveIndex:    snap.ActiveIndex,
		HasActive:      snap.HasActive,
		GroupRotation:  settings.Rotation,
		GroupPosition:  settings.Position,
		OverlayLeft:    OverlayHiddenLeft,
	}
	if snap.HasActive {
		frame.OverlayOpacity = 1
		frame.OverlayLeft = OverlayShownLeft
	}

	if n <= 0 {
		return frame
	}

	frame.Items = make([]ItemTarget, n)
	for i := 0; i < n; i++ {
		frame.Items[i] = solveItem(snap, settings, i, frame.CenterIndex)
	}
	return frame
}

func solveItem(snap Snapshot, settings Settings, index, centerIndex int) ItemTarget {
	distance := index - centerIndex
	absDistance := math.Abs(float64(distance))

	target := ItemTarget{
		Index:    index,
		Distance: distance,
		Position: Vec3{
			X: 0,
			Y: -float64(distance) * settings.Pitch(),
			Z: -absDistance * DepthStep,
		},
		Scale:       SideScale,
		Visible:     absDistance <= 1,
		GrayOverlay: Vec4{X: OverlayGray, Y: OverlayGray, Z: OverlayGray, W: OverlayDimmed},
		ScrollSpeed: snap.ScrollVelocity,
	}

	if distance == 0 {
		target.Scale = CenteredScale
		target.GrayOverlay.W = 0
	} else {
		target.DistanceFlag = 1
	}

	if snap.HasActive {
		target.Visible = index == snap.ActiveIndex
		target.Active = index == snap.ActiveIndex
	}
	if target.Active {
		target.ProgressToActive = 1
	}

	return target
}
