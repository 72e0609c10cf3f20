package scene

import (
	"carousel3d/internal/carousel"
	"carousel3d/internal/mathutil"
)

// UniformKey is everything the per-item static uniforms depend on.
type UniformKey struct {
	Texture    uint32
	ItemWidth  float64
	ItemHeight float64
	ViewportW  float64
	ViewportH  float64
	Active     bool
	Parallax   bool
	Floating   bool
}

// StaticUniforms change only when their UniformKey does.
type StaticUniforms struct {
	ZoomScale [2]float64
	IsActive  float64
}

// UniformCache rebuilds StaticUniforms only when the key changes.
type UniformCache struct {
	key      UniformKey
	value    StaticUniforms
	valid    bool
	rebuilds int
}

func (c *UniformCache) Get(key UniformKey) StaticUniforms {
	if c.valid && c.key == key {
		return c.value
	}
	zx, zy := carousel.ZoomScale(key.ViewportW, key.ViewportH, key.ItemWidth, key.ItemHeight)
	c.value = StaticUniforms{ZoomScale: [2]float64{zx, zy}}
	if key.Active {
		c.value.IsActive = 1
	}
	c.key = key
	c.valid = true
	c.rebuilds++
	return c.value
}

// Rebuilds counts how often Get had to recompute.
func (c *UniformCache) Rebuilds() int { return c.rebuilds }

// PickScale is the XY scale the vertex stage applies to an item plane,
// used to size its hit area. Floating and scroll waves are ignored.
func PickScale(zoom [2]float64, progressToActive float64, parallax bool) (x, y float64) {
	if !parallax {
		return 1, 1
	}
	p := mathutil.Clamp(progressToActive, 0, 1)
	return mathutil.Lerp(1, zoom[0], p), mathutil.Lerp(1, zoom[1], p)
}

// OverlayRect places the details panel for a window of w by h pixels. The
// panel hangs from the window center and slides by offset window widths.
func OverlayRect(w, h int, offset float64) (x, y, width, height float64) {
	fw, fh := float64(w), float64(h)
	width = min(400, fw*0.4)
	height = fh * 0.5
	x = fw * (0.5 + offset)
	y = (fh - height) / 2
	return x, y, width, height
}
