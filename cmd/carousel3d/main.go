package main

import (
	"fmt"
	"os"

	"carousel3d/internal/carousel"
	"carousel3d/internal/config"
	"carousel3d/internal/debug"
	"carousel3d/internal/engine3D"
	"carousel3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

func main() {
	flags, err := config.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := config.Default()
	if flags.ConfigPath != "" {
		cfg, err = config.Load(flags.ConfigPath)
		if err != nil {
			utils.Error("Failed to load config: %v", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(flags)

	if level, err := utils.ParseLogLevel(cfg.LogLevel); err == nil {
		utils.CurrentLevel = level
	} else {
		utils.Warn("%v, keeping %s", err, utils.CurrentLevel)
	}
	utils.ShowRaylibInfo = flags.Verbose

	palette, err := cfg.Window.Palette()
	if err != nil {
		utils.Error("Invalid window colors: %v", err)
		os.Exit(1)
	}

	utils.Info("--- Carousel Start ---")

	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	var windowFlags uint32
	if cfg.Window.MSAA {
		windowFlags |= rl.FlagMsaa4xHint
	}
	if cfg.Window.Resizable {
		windowFlags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(windowFlags)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	if !rl.IsWindowReady() {
		utils.Error("Failed to open the window")
		os.Exit(1)
	}
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	InitClipboardManager()

	sources := ResolveImages(cfg)
	textures := LoadTextures(sources, cfg.MaxTextureSize)

	store := carousel.NewStore(cfg.Settings())
	defer store.Close()

	renderer := engine3D.NewRenderer(textures)
	defer renderer.Close()

	font := engine3D.LoadFont(64)
	defer unloadFont(font)

	panel := debug.OpenTweakPanel(store, font)
	defer panel.Close()

	overlay := engine3D.NewDetailsOverlay(font, palette.OverlayPanel, palette.OverlayText, palette.OverlayTextMuted)

	window := NewWindow(cfg, palette, store, renderer, panel, overlay, sources)
	utils.Info("Showing %d images", len(sources))
	window.Run()
}

func unloadFont(font rl.Font) {
	if font.Texture.ID != rl.GetFontDefault().Texture.ID {
		rl.UnloadFont(font)
	}
}
