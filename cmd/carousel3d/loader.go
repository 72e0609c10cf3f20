package main

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"carousel3d/internal/config"
	"carousel3d/internal/convert"
	"carousel3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var imageSearchDirs = []string{"public", "assets/images"}

// ResolveImages returns the ordered image list. An empty entry stands for an
// image that could not be found and is drawn as a placeholder, so indices
// keep matching the configured details text.
func ResolveImages(cfg config.Config) []string {
	if cfg.ImageDir != "" {
		cfg.ImageDir = utils.ResolveAssetPath(cfg.ImageDir, ".", executableDir())
	}
	searchDirs := append([]string{cfg.ImageDir}, imageSearchDirs...)

	if len(cfg.Images) > 0 {
		sources := make([]string, len(cfg.Images))
		for i, entry := range cfg.Images {
			sources[i] = utils.FindImageFile(entry.Path, searchDirs...)
			if sources[i] == "" {
				utils.Warn("Image not found: %s", entry.Path)
			}
		}
		return sources
	}

	if cfg.Package != "" {
		if sources := extractPackage(cfg.Package); len(sources) > 0 {
			return sources
		}
	}

	if cfg.ImageDir != "" {
		sources, err := utils.ListImages(cfg.ImageDir)
		if err != nil {
			utils.Debug("%v", err)
		} else if len(sources) > 0 {
			return sources
		}
	}

	sources := make([]string, len(config.DefaultImages))
	found := 0
	for i, name := range config.DefaultImages {
		sources[i] = utils.FindImageFile(name, searchDirs...)
		if sources[i] != "" {
			found++
		}
	}
	if found == 0 {
		utils.Warn("No images found, showing %d placeholders", len(sources))
	}
	return sources
}

// executableDir lets assets shipped next to the binary resolve when the
// program is started from elsewhere.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}

func extractPackage(pkgPath string) []string {
	cacheRoot, err := os.UserCacheDir()
	if err != nil {
		cacheRoot = os.TempDir()
	}
	name := strings.TrimSuffix(filepath.Base(pkgPath), filepath.Ext(pkgPath))
	outDir := filepath.Join(cacheRoot, "carousel3d", name)

	sources, err := convert.ExtractPkgImages(pkgPath, outDir)
	if err != nil {
		utils.Error("Failed to extract %s: %v", pkgPath, err)
		return nil
	}
	if len(sources) == 0 {
		utils.Warn("No images in %s", pkgPath)
	}
	utils.Info("Extracted %d images from %s", len(sources), pkgPath)
	return sources
}

var placeholderColors = []color.RGBA{
	{0x3a, 0x5b, 0x8c, 0xff},
	{0x8c, 0x3a, 0x5b, 0xff},
	{0x5b, 0x8c, 0x3a, 0xff},
	{0x8c, 0x6e, 0x3a, 0xff},
	{0x3a, 0x8c, 0x80, 0xff},
	{0x6e, 0x3a, 0x8c, 0xff},
}

func placeholderImage(index int) *rl.Image {
	c := placeholderColors[index%len(placeholderColors)]
	dark := color.RGBA{c.R / 2, c.G / 2, c.B / 2, 0xff}
	return rl.GenImageChecked(1100, 800, 100, 100, c, dark)
}

// LoadTextures decodes sources in parallel and uploads them in order. Must
// run on the window thread after InitWindow.
func LoadTextures(sources []string, maxSize int) []rl.Texture2D {
	paths := make([]string, 0, len(sources))
	for _, p := range sources {
		if p != "" {
			paths = append(paths, p)
		}
	}
	decoded := make(map[string]convert.Loaded, len(paths))
	for _, loaded := range convert.LoadAll(paths, maxSize) {
		decoded[loaded.Path] = loaded
	}

	textures := make([]rl.Texture2D, len(sources))
	for i, p := range sources {
		var img *rl.Image
		if loaded, ok := decoded[p]; ok && loaded.Err == nil {
			img = rl.NewImageFromImage(loaded.Image)
		} else {
			if ok {
				utils.Error("Failed to load image %s: %v", p, loaded.Err)
			}
			img = placeholderImage(i)
		}

		tex := rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		if tex.ID == 0 {
			utils.Error("Failed to upload texture %d", i)
			continue
		}
		rl.SetTextureWrap(tex, rl.TextureWrapClamp)
		rl.SetTextureFilter(tex, rl.FilterBilinear)
		textures[i] = tex
	}
	return textures
}
