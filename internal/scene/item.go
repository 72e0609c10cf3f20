package scene

import (
	"carousel3d/internal/carousel"
	"carousel3d/internal/tween"
)

// ItemState is the eased transform and uniform set of one item for the
// current frame.
type ItemState struct {
	Index   int
	Visible bool
	Active  bool

	Position carousel.Vec3
	Scale    float64

	GrayOverlay      carousel.Vec4
	Distance         float64
	ScrollSpeed      float64
	ProgressToActive float64
}

type itemAnimator struct {
	position    *tween.Multi
	scale       *tween.Track
	grayOverlay *tween.Multi
	distance    *tween.Track
	scrollSpeed *tween.Track
	toActive    *tween.Track

	state ItemState
}

// Items start at the group origin with unit scale and ease out from there.
func newItemAnimator(index int) *itemAnimator {
	return &itemAnimator{
		position:    tween.NewMulti(carousel.ItemEase, 0, 0, 0),
		scale:       tween.NewTrack(1, carousel.ItemEase),
		grayOverlay: tween.NewMulti(carousel.ItemEase, 0, 0, 0, 0),
		distance:    tween.NewTrack(0, carousel.ItemEase),
		scrollSpeed: tween.NewTrack(0, carousel.ItemEase),
		toActive:    tween.NewTrack(0, carousel.ActiveEase),
		state:       ItemState{Index: index, Scale: 1},
	}
}

func (a *itemAnimator) update(dt float64, target carousel.ItemTarget) ItemState {
	a.position.Retarget(target.Position.X, target.Position.Y, target.Position.Z)
	a.scale.Retarget(target.Scale)
	g := target.GrayOverlay
	a.grayOverlay.Retarget(g.X, g.Y, g.Z, g.W)
	a.distance.Retarget(target.DistanceFlag)
	a.scrollSpeed.Retarget(target.ScrollSpeed)
	a.toActive.Retarget(target.ProgressToActive)

	p := a.position.Update(dt)
	o := a.grayOverlay.Update(dt)
	a.state = ItemState{
		Index:            target.Index,
		Visible:          target.Visible,
		Active:           target.Active,
		Position:         carousel.Vec3{X: p[0], Y: p[1], Z: p[2]},
		Scale:            a.scale.Update(dt),
		GrayOverlay:      carousel.Vec4{X: o[0], Y: o[1], Z: o[2], W: o[3]},
		Distance:         a.distance.Update(dt),
		ScrollSpeed:      a.scrollSpeed.Update(dt),
		ProgressToActive: a.toActive.Update(dt),
	}
	return a.state
}
