package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"carousel3d/internal/carousel"
	"carousel3d/internal/mathutil"
)

// Slider ranges exposed by the tweak panel; loaded values are clamped to them.
const (
	MinItemSize = 0.5
	MaxItemSize = 10.0
	MinItemGap  = 0.0
	MaxItemGap  = 20.0
)

// Config holds everything the carousel reads at startup.
type Config struct {
	Window   WindowConfig   `json:"window"`
	Carousel CarouselConfig `json:"carousel"`

	Images   []ImageEntry `json:"images"`
	ImageDir string       `json:"image_dir"`
	Package  string       `json:"package"`

	MaxTextureSize int    `json:"max_texture_size"`
	ScreenshotDir  string `json:"screenshot_dir"`
	LogLevel       string `json:"log_level"`
}

type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	FPS       int    `json:"fps"`
	Title     string `json:"title"`
	MSAA      bool   `json:"msaa"`
	Resizable bool   `json:"resizable"`

	Background       string `json:"background"`
	OverlayPanel     string `json:"overlay_panel"`
	OverlayText      string `json:"overlay_text"`
	OverlayTextMuted string `json:"overlay_text_muted"`
}

type CarouselConfig struct {
	ItemWidth      float64 `json:"item_width"`
	ItemHeight     float64 `json:"item_height"`
	ItemGap        float64 `json:"item_gap"`
	EnableParallax bool    `json:"enable_parallax"`
	EnableFloating bool    `json:"enable_floating"`

	ScrollSensitivity   float64 `json:"scroll_sensitivity"`
	WheelPixelsPerNotch float64 `json:"wheel_pixels_per_notch"`

	RotationDefault [3]float64 `json:"rotation_default"`
	RotationActive  [3]float64 `json:"rotation_active"`
	PositionDefault [3]float64 `json:"position_default"`
	PositionActive  [3]float64 `json:"position_active"`
}

// ImageEntry is one carousel image. In JSON it is either a plain path string
// or an object carrying the details text shown when the item is focused.
type ImageEntry struct {
	Path  string `json:"path"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

func (e *ImageEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &e.Path)
	}
	type plain ImageEntry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = ImageEntry(p)
	return nil
}

const (
	DefaultDetailsTitle = "Some interesting details"
	DefaultDetailsBody  = "Details about the selected card will be displayed here. " +
		"Details about the selected card will be displayed here. " +
		"Details about the selected card will be displayed here."
)

// DefaultImages is the image list used when nothing else names any.
var DefaultImages = []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "1 copy.jpg", "2 copy.jpg"}

func vec(v [3]float64) carousel.Vec3 {
	return carousel.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func arr(v carousel.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func Default() Config {
	s := carousel.DefaultSettings()
	return Config{
		Window: WindowConfig{
			Width:            1280,
			Height:           720,
			FPS:              60,
			Title:            "carousel3d",
			MSAA:             true,
			Resizable:        true,
			Background:       "#0b0b0f",
			OverlayPanel:     "rgba(10, 10, 14, 0.85)",
			OverlayText:      "#f5f5f5",
			OverlayTextMuted: "#a3a3a3",
		},
		Carousel: CarouselConfig{
			ItemWidth:           s.ItemWidth,
			ItemHeight:          s.ItemHeight,
			ItemGap:             s.ItemGap,
			EnableParallax:      s.EnableParallax,
			EnableFloating:      s.EnableFloating,
			ScrollSensitivity:   carousel.ScrollSensitivity,
			WheelPixelsPerNotch: 100,
			RotationDefault:     arr(s.DefaultRotation),
			RotationActive:      arr(s.ActiveRotation),
			PositionDefault:     arr(s.DefaultPosition),
			PositionActive:      arr(s.ActivePosition),
		},
		ImageDir:       "public",
		MaxTextureSize: 2048,
		ScreenshotDir:  "screenshots",
		LogLevel:       "warn",
	}
}

// Load reads a JSON config file on top of Default. Fields not set in the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps numeric fields into their supported ranges.
func (c *Config) Normalize() {
	c.Window.Width = max(c.Window.Width, 320)
	c.Window.Height = max(c.Window.Height, 240)
	c.Window.FPS = mathutil.Clamp(c.Window.FPS, 0, 240)

	cc := &c.Carousel
	cc.ItemWidth = mathutil.Clamp(cc.ItemWidth, MinItemSize, MaxItemSize)
	cc.ItemHeight = mathutil.Clamp(cc.ItemHeight, MinItemSize, MaxItemSize)
	cc.ItemGap = mathutil.Clamp(cc.ItemGap, MinItemGap, MaxItemGap)
	if cc.ScrollSensitivity <= 0 {
		cc.ScrollSensitivity = carousel.ScrollSensitivity
	}
	if cc.WheelPixelsPerNotch <= 0 {
		cc.WheelPixelsPerNotch = 100
	}

	if c.MaxTextureSize <= 0 {
		c.MaxTextureSize = 2048
	}
	c.MaxTextureSize = mathutil.Clamp(c.MaxTextureSize, 64, 16384)
}

// Settings builds the initial carousel settings, with the default preset in
// effect.
func (c Config) Settings() carousel.Settings {
	cc := c.Carousel
	s := carousel.Settings{
		ItemWidth:       cc.ItemWidth,
		ItemHeight:      cc.ItemHeight,
		ItemGap:         cc.ItemGap,
		EnableParallax:  cc.EnableParallax,
		EnableFloating:  cc.EnableFloating,
		DefaultRotation: vec(cc.RotationDefault),
		ActiveRotation:  vec(cc.RotationActive),
		DefaultPosition: vec(cc.PositionDefault),
		ActivePosition:  vec(cc.PositionActive),
	}
	s.ApplyPreset(false)
	return s
}

// Details returns the title and body shown for the image at index.
func (c Config) Details(index int) (string, string) {
	title, body := DefaultDetailsTitle, DefaultDetailsBody
	if index >= 0 && index < len(c.Images) {
		if c.Images[index].Title != "" {
			title = c.Images[index].Title
		}
		if c.Images[index].Body != "" {
			body = c.Images[index].Body
		}
	}
	return title, body
}
