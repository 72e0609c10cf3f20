package convert

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"carousel3d/internal/utils"
)

var log = utils.Module("convert")

// Decoders are picked by extension rather than sniffed: the TGA format has no
// magic number and would claim any input handed to image.Decode.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".bmp":  bmp.Decode,
	".webp": webp.Decode,
	".tga":  tga.Decode,
}

func init() {
	decoders[".tex"] = DecodeTex
}

// Decode reads an image whose format is given by ext (".png", ".tex", ...).
func Decode(r io.Reader, ext string) (image.Image, error) {
	dec, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("convert: unsupported image format %q", ext)
	}
	return dec(r)
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("convert: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(bufio.NewReader(f), filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("convert: decode %s: %w", path, err)
	}
	return img, nil
}

// Fit downscales img so neither side exceeds maxSize, keeping the aspect
// ratio. The result is always an *image.NRGBA with its origin at 0,0.
func Fit(img image.Image, maxSize int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			h = max(1, h*maxSize/w)
			w = maxSize
		} else {
			w = max(1, w*maxSize/h)
			h = maxSize
		}
	}

	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && w == b.Dx() && h == b.Dy() {
		return n
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return dst
}

// Loaded is the outcome of decoding one entry of a LoadAll batch.
type Loaded struct {
	Path  string
	Image *image.NRGBA
	Err   error
}

// maxConcurrency limits parallel decodes to avoid RAM spikes on large sets.
const maxConcurrency = 6

// LoadAll decodes every path in parallel and returns the results in input
// order. Images are fitted to maxSize.
func LoadAll(paths []string, maxSize int) []Loaded {
	results := make([]Loaded, len(paths))
	var failed int32
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrency)

	for i, p := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p string) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i].Path = p
			img, err := LoadImage(p)
			if err != nil {
				results[i].Err = err
				atomic.AddInt32(&failed, 1)
				return
			}
			results[i].Image = Fit(img, maxSize)
		}(i, p)
	}

	wg.Wait()
	log.Debug("Decoded %d images (%d failed)", len(paths)-int(failed), failed)
	return results
}
