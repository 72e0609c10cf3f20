package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ImageExtensions lists the file types the texture loader can decode, in
// lookup order for bare names.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".bmp", ".tga", ".gif", ".tex"}

func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ResolveAssetPath returns the first existing candidate of relPath under the
// given roots, falling back to relPath itself.
func ResolveAssetPath(relPath string, roots ...string) string {
	if filepath.IsAbs(relPath) {
		return relPath
	}
	for _, root := range roots {
		p := filepath.Join(root, relPath)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return relPath
}

// FindImageFile resolves an image identifier to a file on disk. The name may
// be a path, a path relative to one of searchDirs, or a bare name without
// extension. Returns "" when nothing matches.
func FindImageFile(name string, searchDirs ...string) string {
	if name == "" {
		return ""
	}

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name
	}

	cleanName := strings.TrimPrefix(name, "/")
	dirs := append([]string{""}, searchDirs...)

	for _, dir := range dirs {
		p := filepath.Join(dir, cleanName)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}

		if filepath.Ext(cleanName) != "" {
			continue
		}
		for _, ext := range ImageExtensions {
			p := filepath.Join(dir, cleanName+ext)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}

	return ""
}

// ListImages returns the decodable images directly inside dir, sorted by name.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("utils: list images in %s: %w", dir, err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		images = append(images, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(images)
	return images, nil
}

// SystemFontPaths are the TTF files tried, in order, for on-screen text.
var SystemFontPaths = []string{
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
}

// FindFont returns the first existing path of candidates, or "" when none
// exists.
func FindFont(candidates ...string) string {
	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return ""
}
