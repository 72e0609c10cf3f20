// Package scene eases the carousel toward the targets solved each frame. It
// holds no GPU resources; the renderer reads the eased state back from it.
package scene

import (
	"carousel3d/internal/carousel"
	"carousel3d/internal/tween"
)

// GroupState is the eased transform of the node holding every item.
type GroupState struct {
	Rotation carousel.Vec3
	Position carousel.Vec3
}

// OverlayState drives the details panel. Offset is a fraction of the window
// width, OverlayHiddenLeft when fully hidden.
type OverlayState struct {
	Opacity float64
	Offset  float64
}

type Scene struct {
	items []*itemAnimator
	state []ItemState

	groupRotation *tween.Multi
	groupPosition *tween.Multi
	group         GroupState

	overlayOpacity *tween.Track
	overlayOffset  *tween.Track
	overlay        OverlayState

	time float64
}

// New builds a scene for n items.
func New(n int) *Scene {
	s := &Scene{
		groupRotation:  tween.NewMulti(carousel.GroupEase, 0, 0, 0),
		groupPosition:  tween.NewMulti(carousel.GroupEase, 0, 0, 0),
		overlayOpacity: tween.NewTrack(0, carousel.OverlayEase),
		overlayOffset: tween.NewTrack(carousel.OverlayHiddenLeft, carousel.OverlayEase).
			WithDelay(carousel.OverlayOffsetDelay),
		overlay: OverlayState{Offset: carousel.OverlayHiddenLeft},
	}
	s.Resize(n)
	return s
}

// Resize grows or shrinks the item list, keeping the animators of items
// that remain.
func (s *Scene) Resize(n int) {
	n = max(n, 0)
	for len(s.items) < n {
		s.items = append(s.items, newItemAnimator(len(s.items)))
	}
	s.items = s.items[:n]
	s.state = make([]ItemState, n)
	for i, a := range s.items {
		s.state[i] = a.state
	}
}

func (s *Scene) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Update eases everything toward frame by dt seconds. now is the wall clock
// in seconds fed to the floating animation. It returns false, doing nothing,
// when the scene is not mounted.
func (s *Scene) Update(dt, now float64, frame carousel.Frame) bool {
	if s == nil {
		return false
	}
	s.time = now

	for i, a := range s.items {
		if i >= len(frame.Items) {
			break
		}
		s.state[i] = a.update(dt, frame.Items[i])
	}

	r, p := frame.GroupRotation, frame.GroupPosition
	s.groupRotation.Retarget(r.X, r.Y, r.Z)
	s.groupPosition.Retarget(p.X, p.Y, p.Z)
	rv := s.groupRotation.Update(dt)
	pv := s.groupPosition.Update(dt)
	s.group = GroupState{
		Rotation: carousel.Vec3{X: rv[0], Y: rv[1], Z: rv[2]},
		Position: carousel.Vec3{X: pv[0], Y: pv[1], Z: pv[2]},
	}

	s.overlayOpacity.Retarget(frame.OverlayOpacity)
	s.overlayOffset.Retarget(frame.OverlayLeft)
	s.overlay = OverlayState{
		Opacity: s.overlayOpacity.Update(dt),
		Offset:  s.overlayOffset.Update(dt),
	}
	return true
}

// Items returns the eased item states. The slice is owned by the scene and
// rewritten by the next Update.
func (s *Scene) Items() []ItemState { return s.state }

func (s *Scene) Group() GroupState { return s.group }

func (s *Scene) Overlay() OverlayState { return s.overlay }

func (s *Scene) Time() float64 { return s.time }
