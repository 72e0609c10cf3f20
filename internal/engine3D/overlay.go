package engine3D

import (
	"image/color"

	"carousel3d/internal/scene"
	"carousel3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DetailsOverlay is the text panel that slides in beside a focused item.
type DetailsOverlay struct {
	Font      rl.Font
	Panel     color.RGBA
	Text      color.RGBA
	TextMuted color.RGBA

	TitleSize float32
	BodySize  float32
}

func NewDetailsOverlay(font rl.Font, panel, text, muted color.RGBA) *DetailsOverlay {
	return &DetailsOverlay{
		Font:      font,
		Panel:     panel,
		Text:      text,
		TextMuted: muted,
		TitleSize: 28,
		BodySize:  18,
	}
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	c.A = uint8(float64(c.A) * min(max(alpha, 0), 1))
	return c
}

// Draw renders the panel for state. Nothing is drawn while it is fully
// transparent.
func (o *DetailsOverlay) Draw(state scene.OverlayState, title, body string) {
	if state.Opacity <= 0.001 {
		return
	}

	x, y, w, h := scene.OverlayRect(rl.GetScreenWidth(), rl.GetScreenHeight(), state.Offset)
	const pad = 20
	rect := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	rl.DrawRectangleRounded(rect, 0.06, 8, fade(o.Panel, state.Opacity))

	measure := func(size float32) func(string) int {
		return func(s string) int {
			return int(rl.MeasureTextEx(o.Font, s, size, 1).X)
		}
	}

	cursor := float32(y) + pad
	left := float32(x) + pad
	maxWidth := int(w) - 2*pad

	for _, line := range utils.WrapText(title, maxWidth, measure(o.TitleSize)) {
		rl.DrawTextEx(o.Font, line, rl.NewVector2(left, cursor), o.TitleSize, 1, fade(o.Text, state.Opacity))
		cursor += o.TitleSize * 1.2
	}
	cursor += o.TitleSize * 0.5

	for _, line := range utils.WrapText(body, maxWidth, measure(o.BodySize)) {
		if cursor+o.BodySize > float32(y+h)-pad {
			break
		}
		rl.DrawTextEx(o.Font, line, rl.NewVector2(left, cursor), o.BodySize, 1, fade(o.TextMuted, state.Opacity))
		cursor += o.BodySize * 1.4
	}
}
