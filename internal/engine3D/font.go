package engine3D

import (
	"carousel3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadFont loads the first system font found at the given pixel size, or
// raylib's built-in font when none is installed.
func LoadFont(size int32) rl.Font {
	path := utils.FindFont(utils.SystemFontPaths...)
	if path == "" {
		log.Warn("No system font found, using the raylib default font")
		return rl.GetFontDefault()
	}

	font := rl.LoadFontEx(path, size, nil, 0)
	if font.BaseSize == 0 || font.Texture.ID == 0 {
		log.Warn("Failed to load font %s, using the raylib default font", path)
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	log.Debug("Loaded font %s", path)
	return font
}
