package config

import (
	"fmt"
	"image/color"

	css "github.com/mazznoer/csscolorparser"
)

// Palette is the resolved set of window colors.
type Palette struct {
	Background       color.RGBA
	OverlayPanel     color.RGBA
	OverlayText      color.RGBA
	OverlayTextMuted color.RGBA
}

// ParseColor accepts any CSS color string ("#0b0b0f", "rgba(0,0,0,.5)", "teal").
func ParseColor(s string) (color.RGBA, error) {
	c, err := css.Parse(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

func (w WindowConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		value string
		dst   *color.RGBA
	}{
		{w.Background, &p.Background},
		{w.OverlayPanel, &p.OverlayPanel},
		{w.OverlayText, &p.OverlayText},
		{w.OverlayTextMuted, &p.OverlayTextMuted},
	}
	for _, f := range fields {
		c, err := ParseColor(f.value)
		if err != nil {
			return p, err
		}
		*f.dst = c
	}
	return p, nil
}
