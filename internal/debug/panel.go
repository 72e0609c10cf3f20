package debug

import (
	"math"
	"runtime"
	"time"

	"carousel3d/internal/carousel"
	"carousel3d/internal/config"
	"carousel3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type PanelTab int

const (
	TabCarousel PanelTab = iota
	TabPerformance
)

type inputState struct {
	mouseX, mouseY int
	down           bool
	clicked        bool
}

// TweakPanel edits the carousel settings live. It is opened with
// OpenTweakPanel when the carousel mounts and must be closed on teardown.
type TweakPanel struct {
	ActiveTab PanelTab

	store *carousel.Store
	open  bool

	// UI State
	fontHeight int
	lineHeight int
	tabHeight  int
	width      int
	height     int
	margin     int
	uiScale    float64
	font       rl.Font

	// Input State
	prevDown bool
	input    inputState
	dragging string

	// Rendering
	uiBuffer     rl.RenderTexture2D
	cachedWidth  int
	cachedHeight int

	// Performance Monitoring
	lastUpdateTime time.Time
	frameCount     int
	fps            float64
	memStats       runtime.MemStats
}

// OpenTweakPanel binds a panel to store. Pair it with a deferred Close.
func OpenTweakPanel(store *carousel.Store, font rl.Font) *TweakPanel {
	p := &TweakPanel{
		ActiveTab:      TabCarousel,
		store:          store,
		open:           true,
		font:           font,
		lastUpdateTime: time.Now(),
	}
	p.updateLayout()
	log.Debug("Tweak panel opened")
	return p
}

// Close releases the panel's render buffer. Later calls do nothing.
func (p *TweakPanel) Close() {
	if p == nil || !p.open {
		return
	}
	if p.uiBuffer.ID != 0 {
		rl.UnloadRenderTexture(p.uiBuffer)
		p.uiBuffer = rl.RenderTexture2D{}
	}
	p.open = false
	p.store = nil
	log.Debug("Tweak panel closed")
}

func (p *TweakPanel) Open() bool {
	return p != nil && p.open
}

func (p *TweakPanel) updateLayout() {
	monitor := rl.GetCurrentMonitor()
	scale := math.Max(1.0, float64(rl.GetMonitorHeight(monitor))/1080.0)
	p.fontHeight = int(16 * scale)
	p.lineHeight = int(28 * scale)
	p.tabHeight = int(34 * scale)
	p.width = int(320 * scale)
	p.margin = int(12 * scale)
	p.uiScale = scale
}

// bounds is the panel rectangle in screen space.
func (p *TweakPanel) bounds() rl.Rectangle {
	x := rl.GetScreenWidth() - p.width - p.margin
	return rl.NewRectangle(float32(x), float32(p.margin), float32(p.width), float32(p.height))
}

// Contains reports whether the panel is on screen under the point, so the
// carousel can ignore clicks and wheel there.
func (p *TweakPanel) Contains(x, y float32) bool {
	if !p.Open() || !utils.ShowDebugUI {
		return false
	}
	return p.dragging != "" || rl.CheckCollisionPointRec(rl.NewVector2(x, y), p.bounds())
}

// Update samples input and the frame counters. Call once per frame while
// the panel is shown.
func (p *TweakPanel) Update() {
	if !p.Open() {
		return
	}
	p.updateLayout()

	p.frameCount++
	now := time.Now()
	if now.Sub(p.lastUpdateTime) >= time.Second {
		p.fps = float64(p.frameCount) / now.Sub(p.lastUpdateTime).Seconds()
		p.frameCount = 0
		p.lastUpdateTime = now
		runtime.ReadMemStats(&p.memStats)
	}

	b := p.bounds()
	mPos := rl.GetMousePosition()
	down := rl.IsMouseButtonDown(rl.MouseLeftButton)
	p.input = inputState{
		mouseX:  int(mPos.X - b.X),
		mouseY:  int(mPos.Y - b.Y),
		down:    down,
		clicked: down && !p.prevDown,
	}
	p.prevDown = down

	if p.input.clicked && p.input.mouseY >= 0 && p.input.mouseY < p.tabHeight &&
		p.input.mouseX >= 0 && p.input.mouseX < p.width {
		p.ActiveTab = PanelTab(p.input.mouseX * 2 / p.width)
	}
}

// Draw renders the panel and applies any edits made through it to the
// store's settings.
func (p *TweakPanel) Draw(frame carousel.Frame) {
	if !p.Open() {
		return
	}

	sh := rl.GetScreenHeight() - 2*p.margin
	if p.cachedWidth != p.width || p.cachedHeight != sh {
		if p.uiBuffer.ID != 0 {
			rl.UnloadRenderTexture(p.uiBuffer)
		}
		p.uiBuffer = rl.LoadRenderTexture(int32(p.width), int32(sh))
		p.cachedWidth = p.width
		p.cachedHeight = sh
	}

	rl.BeginTextureMode(p.uiBuffer)
	rl.ClearBackground(rl.Blank)

	p.drawTabs()

	contentY := p.tabHeight + p.lineHeight/2
	var bottom int
	switch p.ActiveTab {
	case TabCarousel:
		bottom = p.drawCarousel(contentY)
	case TabPerformance:
		bottom = p.drawPerformance(contentY, frame)
	}
	p.height = min(bottom+p.lineHeight/2, sh)

	rl.EndTextureMode()

	b := p.bounds()
	rl.DrawRectangleRec(b, rl.NewColor(0, 0, 0, 200))
	sourceRec := rl.NewRectangle(0, 0, float32(p.width), -float32(p.height))
	// Render textures are stored bottom-up; take the top p.height rows.
	sourceRec.Y = float32(sh - p.height)
	rl.DrawTexturePro(p.uiBuffer.Texture, sourceRec, b, rl.NewVector2(0, 0), 0, rl.White)
}

func (p *TweakPanel) drawTabs() {
	tabs := []string{"Carousel", "Performance"}
	tabWidth := p.width / len(tabs)

	for i, name := range tabs {
		color := rl.NewColor(60, 60, 60, 255)
		if p.ActiveTab == PanelTab(i) {
			color = rl.NewColor(110, 110, 110, 255)
		}

		x := int32(i * tabWidth)
		rl.DrawRectangle(x, 0, int32(tabWidth), int32(p.tabHeight), color)
		p.drawText(name, x+10, int32(float64(p.tabHeight)*0.25), rl.White)
	}
}

func (p *TweakPanel) drawText(text string, x, y int32, color rl.Color) {
	if p.font.BaseSize > 0 {
		rl.DrawTextEx(p.font, text, rl.NewVector2(float32(x), float32(y)), float32(p.fontHeight), 1, color)
	} else {
		rl.DrawText(text, x, y, int32(p.fontHeight), color)
	}
}

func (p *TweakPanel) ui(startY int) *UIContext {
	return NewUIContext(10, startY, p.width-20, p.lineHeight, p.fontHeight, p.font, p.input, &p.dragging)
}

func (p *TweakPanel) drawCarousel(startY int) int {
	ui := p.ui(startY)
	s := p.store.Settings()

	ui.Header("Item")
	s.ItemWidth = ui.Slider("Item Width", s.ItemWidth, config.MinItemSize, config.MaxItemSize, 0.1)
	s.ItemHeight = ui.Slider("Item Height", s.ItemHeight, config.MinItemSize, config.MaxItemSize, 0.1)
	s.ItemGap = ui.Slider("Item Gap", s.ItemGap, config.MinItemGap, config.MaxItemGap, 0.1)

	ui.Separator()
	ui.Header("Rotation")
	s.Rotation.X = ui.Slider("Rotation X", s.Rotation.X, -math.Pi, math.Pi, 0.01)
	s.Rotation.Y = ui.Slider("Rotation Y", s.Rotation.Y, -math.Pi, math.Pi, 0.01)
	s.Rotation.Z = ui.Slider("Rotation Z", s.Rotation.Z, -math.Pi, math.Pi, 0.01)

	ui.Separator()
	ui.Header("Effects")
	s.EnableParallax = ui.Checkbox("Enable Parallax", s.EnableParallax)
	s.EnableFloating = ui.Checkbox("Enable Floating", s.EnableFloating)

	return ui.Y
}
