package debug

import (
	"fmt"

	"carousel3d/internal/mathutil"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIContext lays widgets out top to bottom and reports input against them.
type UIContext struct {
	X, Y       int
	BaseX      int
	Width      int
	LineHeight int
	FontHeight int
	Font       rl.Font

	MouseX       int
	MouseY       int
	MouseDown    bool
	MouseClicked bool

	// Dragging names the slider holding the mouse, shared across frames.
	Dragging *string
}

func NewUIContext(x, y, width, lineHeight, fontHeight int, font rl.Font, in inputState, dragging *string) *UIContext {
	return &UIContext{
		X:            x,
		Y:            y,
		BaseX:        x,
		Width:        width,
		LineHeight:   lineHeight,
		FontHeight:   fontHeight,
		Font:         font,
		MouseX:       in.mouseX,
		MouseY:       in.mouseY,
		MouseDown:    in.down,
		MouseClicked: in.clicked,
		Dragging:     dragging,
	}
}

func (ui *UIContext) drawText(text string, x, y int32, color rl.Color) {
	if ui.Font.BaseSize > 0 {
		rl.DrawTextEx(ui.Font, text, rl.NewVector2(float32(x), float32(y)), float32(ui.FontHeight), 1, color)
	} else {
		rl.DrawText(text, x, y, int32(ui.FontHeight), color)
	}
}

func (ui *UIContext) IndentLabel(text string, indent int) {
	ui.drawText(text, int32(ui.X+indent), int32(ui.Y), rl.White)
	ui.Y += ui.LineHeight
}

func (ui *UIContext) Separator() {
	ui.Y += ui.LineHeight / 2
}

func (ui *UIContext) Header(text string) {
	ui.drawText(text, int32(ui.X), int32(ui.Y), rl.NewColor(180, 200, 255, 255))
	ui.Y += ui.LineHeight
}

func (ui *UIContext) hover(x, y, w, h int) bool {
	return ui.MouseX >= x && ui.MouseX <= x+w && ui.MouseY >= y && ui.MouseY <= y+h
}

// Checkbox draws a toggle and returns the new value.
func (ui *UIContext) Checkbox(label string, checked bool) bool {
	boxSize := int(float64(ui.FontHeight) * 0.8)
	boxX := ui.X + 5
	boxY := ui.Y + 2

	if ui.MouseClicked && ui.hover(boxX, boxY, ui.Width-10, boxSize) {
		checked = !checked
	}

	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxSize), int32(boxSize), rl.NewColor(150, 150, 150, 255))
	if checked {
		rl.DrawRectangle(int32(boxX+2), int32(boxY+2), int32(boxSize-4), int32(boxSize-4), rl.NewColor(100, 255, 100, 255))
	}
	ui.drawText(label, int32(ui.X+5+boxSize+5), int32(ui.Y), rl.White)
	ui.Y += ui.LineHeight

	return checked
}

// Slider draws a labelled track for value in [minV, maxV] and returns the
// value after any drag, snapped to step.
func (ui *UIContext) Slider(label string, value, minV, maxV, step float64) float64 {
	ui.drawText(label, int32(ui.X+5), int32(ui.Y), rl.White)
	valueText := fmt.Sprintf("%.2f", value)
	ui.drawText(valueText, int32(ui.X+ui.Width-70), int32(ui.Y), rl.NewColor(200, 200, 200, 255))
	ui.Y += ui.LineHeight * 3 / 4

	trackX := ui.X + 5
	trackW := ui.Width - 10
	trackH := max(4, ui.FontHeight/4)
	trackY := ui.Y + (ui.LineHeight/2-trackH)/2

	if ui.MouseClicked && ui.hover(trackX, trackY-ui.LineHeight/4, trackW, trackH+ui.LineHeight/2) {
		*ui.Dragging = label
	}
	if *ui.Dragging == label {
		if !ui.MouseDown {
			*ui.Dragging = ""
		} else if trackW > 0 {
			t := mathutil.Clamp(float64(ui.MouseX-trackX)/float64(trackW), 0, 1)
			value = mathutil.Clamp(mathutil.Snap(mathutil.Lerp(minV, maxV, t), minV, step), minV, maxV)
		}
	}

	t := 0.0
	if maxV > minV {
		t = mathutil.Clamp((value-minV)/(maxV-minV), 0, 1)
	}
	rl.DrawRectangle(int32(trackX), int32(trackY), int32(trackW), int32(trackH), rl.NewColor(70, 70, 70, 255))
	rl.DrawRectangle(int32(trackX), int32(trackY), int32(float64(trackW)*t), int32(trackH), rl.NewColor(90, 160, 255, 255))
	knob := float32(trackH) * 1.5
	rl.DrawCircle(int32(float64(trackX)+float64(trackW)*t), int32(trackY+trackH/2), knob, rl.White)

	ui.Y += ui.LineHeight * 3 / 4
	return value
}
