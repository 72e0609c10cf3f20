package main

import (
	"time"

	"carousel3d/internal/carousel"
	"carousel3d/internal/config"
	"carousel3d/internal/convert"
	"carousel3d/internal/debug"
	"carousel3d/internal/engine3D"
	"carousel3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxFrameDelta caps the easing step after a stall (window drag, breakpoint).
const maxFrameDelta = 0.1

type Window struct {
	cfg      config.Config
	palette  config.Palette
	store    *carousel.Store
	mapper   carousel.ScrollMapper
	renderer *engine3D.Renderer
	panel    *debug.TweakPanel
	overlay  *engine3D.DetailsOverlay
	sources  []string

	frame         carousel.Frame
	detailsIndex  int
	startTime     time.Time
	lastFrameTime time.Time
	screenshot    bool
}

func NewWindow(cfg config.Config, palette config.Palette, store *carousel.Store, renderer *engine3D.Renderer,
	panel *debug.TweakPanel, overlay *engine3D.DetailsOverlay, sources []string) *Window {
	now := time.Now()
	return &Window{
		cfg:           cfg,
		palette:       palette,
		store:         store,
		mapper:        carousel.NewScrollMapper(cfg.Carousel.ScrollSensitivity),
		renderer:      renderer,
		panel:         panel,
		overlay:       overlay,
		sources:       sources,
		startTime:     now,
		lastFrameTime: now,
	}
}

func (window *Window) Run() {
	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		if window.screenshot {
			window.saveScreenshot()
			window.screenshot = false
		}
		rl.EndDrawing()
	}
}

func (window *Window) Update() {
	currentTime := time.Now()
	deltaTime := min(currentTime.Sub(window.lastFrameTime).Seconds(), maxFrameDelta)
	window.lastFrameTime = currentTime
	totalTime := currentTime.Sub(window.startTime).Seconds()

	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}
	if utils.ShowDebugUI {
		window.panel.Update()
	}

	mPos := rl.GetMousePosition()
	overPanel := utils.ShowDebugUI && window.panel.Contains(mPos.X, mPos.Y)

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overPanel {
		deltaY := -float64(wheel) * window.cfg.Carousel.WheelPixelsPerNotch
		if window.mapper.OnScroll(window.store, deltaY) {
			utils.Debug("Progress %.0f", window.store.Progress())
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !overPanel {
		if index, ok := window.renderer.Pick(mPos); ok {
			window.store.OnItemClick(index)
			utils.Debug("Clicked item %d", index)
		}
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		window.store.ClearActive()
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if ctrl && rl.IsKeyPressed(rl.KeyC) {
		window.copyActivePath()
	}
	if rl.IsKeyPressed(rl.KeyF12) {
		window.screenshot = true
	}

	snap := window.store.BeginFrame()
	window.frame = window.renderer.Update(deltaTime, totalTime, snap)
}

func (window *Window) Draw() {
	rl.ClearBackground(window.palette.Background)

	window.renderer.Draw()

	// The overlay keeps the last focused item's text while it fades out.
	if window.frame.HasActive {
		window.detailsIndex = window.frame.ActiveIndex
	}
	title, body := window.cfg.Details(window.detailsIndex)
	window.overlay.Draw(window.renderer.Overlay(), title, body)

	if utils.ShowDebugUI {
		window.panel.Draw(window.frame)
	}
}

func (window *Window) copyActivePath() {
	index, ok := window.store.ActiveIndex()
	if !ok || index >= len(window.sources) || window.sources[index] == "" {
		return
	}
	if ClipboardWriteText(window.sources[index]) {
		utils.Info("Copied %s", window.sources[index])
	}
}

// saveScreenshot reads back the frame drawn so far, so call it before
// EndDrawing swaps the buffers.
func (window *Window) saveScreenshot() {
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)

	path, err := convert.SaveWebP(window.cfg.ScreenshotDir, img.ToImage(), time.Now())
	if err != nil {
		utils.Error("Screenshot failed: %v", err)
		return
	}
	utils.Info("Saved screenshot %s", path)
}
