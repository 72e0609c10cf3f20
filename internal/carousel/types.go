package carousel

import "time"

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Vec4 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Layout and animation constants of the carousel scene.
const (
	ScrollSensitivity = 0.15
	ProgressMin       = 0.0
	ProgressMax       = 100.0

	CenteredScale = 2.5
	SideScale     = 1.7
	DepthStep     = 0.5

	OverlayGray       = 0.7
	OverlayDimmed     = 0.7
	OverlayHiddenLeft = -1.0
	OverlayShownLeft  = -0.4

	ItemEase          = 2 * time.Second
	ActiveEase        = time.Second
	GroupEase         = 800 * time.Millisecond
	OverlayEase       = 800 * time.Millisecond
	OverlayOffsetLead = 300 * time.Millisecond

	// PlaneSegments is the subdivision of each item plane along both axes.
	PlaneSegments = 30
	// MeshDepth is the local z offset of an item's mesh inside its node.
	MeshDepth = -10.0
)

// OverlayOffsetDelay is how long after the opacity tween the offset tween starts.
const OverlayOffsetDelay = OverlayEase - OverlayOffsetLead
