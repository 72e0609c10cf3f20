package debug

import (
	"fmt"
	"runtime"

	"carousel3d/internal/carousel"
	"carousel3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var log = utils.Module("debug")

func (p *TweakPanel) drawPerformance(startY int, frame carousel.Frame) int {
	ui := p.ui(startY)

	ui.Header("Timing:")
	ui.IndentLabel(fmt.Sprintf("FPS: %.1f", p.fps), 10)
	ui.IndentLabel(fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000), 10)

	ui.Separator()

	ui.Header("Carousel:")
	ui.IndentLabel(fmt.Sprintf("Progress: %.0f", p.store.Progress()), 10)
	ui.IndentLabel(fmt.Sprintf("Scroll Velocity: %.0f", frame.ScrollVelocity), 10)
	ui.IndentLabel(fmt.Sprintf("Center Index: %d / %d", frame.CenterIndex, len(frame.Items)), 10)
	if frame.HasActive {
		ui.IndentLabel(fmt.Sprintf("Active Index: %d", frame.ActiveIndex), 10)
	} else {
		ui.IndentLabel("Active Index: none", 10)
	}

	ui.Separator()

	ui.Header("Memory Usage:")
	ui.IndentLabel(fmt.Sprintf("Heap Alloc: %.2f MB", float64(p.memStats.HeapAlloc)/1024/1024), 10)
	ui.IndentLabel(fmt.Sprintf("Process Total: %.2f MB", float64(p.memStats.Sys)/1024/1024), 10)

	ui.Separator()

	ui.Header("System:")
	ui.IndentLabel(fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()), 10)
	ui.IndentLabel(fmt.Sprintf("OS/Arch: %s/%s", runtime.GOOS, runtime.GOARCH), 10)
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	ui.IndentLabel(fmt.Sprintf("Window: %dx%d", w, h), 10)
	ui.IndentLabel(fmt.Sprintf("UI Scale: %.2fx", p.uiScale), 10)

	return ui.Y
}
