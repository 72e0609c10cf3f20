package scene

import (
	"math"
	"testing"
)

func TestUniformCacheRebuildsOnKeyChange(t *testing.T) {
	var c UniformCache
	key := UniformKey{Texture: 3, ItemWidth: 5, ItemHeight: 4, ViewportW: 10, ViewportH: 8, Parallax: true}

	got := c.Get(key)
	if got.ZoomScale != [2]float64{2, 2} || got.IsActive != 0 {
		t.Fatalf("uniforms = %+v", got)
	}
	for i := 0; i < 10; i++ {
		c.Get(key)
	}
	if c.Rebuilds() != 1 {
		t.Fatalf("rebuilds = %d, want 1 for an unchanged key", c.Rebuilds())
	}

	key.Active = true
	if got := c.Get(key); got.IsActive != 1 {
		t.Fatalf("IsActive = %v", got.IsActive)
	}
	key.ViewportW = 20
	if got := c.Get(key); got.ZoomScale[0] != 4 {
		t.Fatalf("zoom = %v", got.ZoomScale)
	}
	if c.Rebuilds() != 3 {
		t.Fatalf("rebuilds = %d, want 3", c.Rebuilds())
	}
}

func TestPickScale(t *testing.T) {
	zoom := [2]float64{3, 5}
	tests := []struct {
		progress float64
		parallax bool
		x, y     float64
	}{
		{0, true, 1, 1},
		{1, true, 3, 5},
		{0.5, true, 2, 3},
		{2, true, 3, 5},
		{1, false, 1, 1},
	}
	for _, tc := range tests {
		x, y := PickScale(zoom, tc.progress, tc.parallax)
		if x != tc.x || y != tc.y {
			t.Errorf("PickScale(%v, %v) = %v,%v want %v,%v", tc.progress, tc.parallax, x, y, tc.x, tc.y)
		}
	}
}

func TestOverlayRect(t *testing.T) {
	x, y, w, h := OverlayRect(1600, 900, -0.4)
	if math.Abs(x-160) > 1e-9 || w != 400 || h != 450 || y != 225 {
		t.Fatalf("shown rect = %v %v %v %v", x, y, w, h)
	}

	x, _, w, _ = OverlayRect(600, 400, -1)
	if x+w > 0 {
		t.Fatalf("hidden panel still on screen: x=%v w=%v", x, w)
	}
}
