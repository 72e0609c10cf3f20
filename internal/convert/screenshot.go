package convert

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// SaveWebP encodes img losslessly into dir and returns the written path.
func SaveWebP(dir string, img image.Image, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("convert: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, "carousel-"+now.Format("20060102-150405.000")+".webp")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("convert: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return "", fmt.Errorf("convert: encode %s: %w", path, err)
	}
	return path, nil
}
