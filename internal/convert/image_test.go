package convert

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
	}{
		{"landscape", 400, 200, 100, 100, 50},
		{"portrait", 200, 400, 100, 50, 100},
		{"small", 40, 30, 100, 40, 30},
		{"unbounded", 400, 200, 0, 400, 200},
		{"thin", 1000, 2, 100, 100, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fit(image.NewRGBA(image.Rect(0, 0, tc.w, tc.h)), tc.max)
			if got.Bounds() != image.Rect(0, 0, tc.wantW, tc.wantH) {
				t.Fatalf("Fit = %v, want %dx%d", got.Bounds(), tc.wantW, tc.wantH)
			}
		})
	}
}

func TestFitMovesOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.Set(2, 2, color.NRGBA{9, 9, 9, 255})
	sub := src.SubImage(image.Rect(2, 2, 4, 4))

	got := Fit(sub, 0)
	if got.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if got.NRGBAAt(0, 0) != (color.NRGBA{9, 9, 9, 255}) {
		t.Fatalf("pixel = %v", got.NRGBAAt(0, 0))
	}
}

func TestLoadAllKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 8; i++ {
		p := filepath.Join(dir, string(rune('a'+i))+".png")
		writePNG(t, p, 8+i, 8, color.NRGBA{uint8(i), 0, 0, 255})
		paths = append(paths, p)
	}
	paths = append(paths, filepath.Join(dir, "missing.png"))

	results := LoadAll(paths, 0)
	if len(results) != len(paths) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results[:8] {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Path, r.Err)
		}
		if r.Path != paths[i] || r.Image.Bounds().Dx() != 8+i {
			t.Fatalf("result %d out of order: %s %v", i, r.Path, r.Image.Bounds())
		}
	}
	if results[8].Err == nil || results[8].Image != nil {
		t.Fatalf("missing file should fail, got %+v", results[8])
	}
}

func TestDecodeUnsupported(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "x.psd")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Decode(nil, ".psd"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
