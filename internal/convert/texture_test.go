package convert

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/pierrec/lz4/v4"
)

type texFixture struct {
	container  string
	format     uint32
	w, h       uint32
	imgW, imgH uint32
	freeImage  int32
	data       []byte
	rawSize    uint32
	compressed bool
}

func buildTex(s texFixture) []byte {
	var b bytes.Buffer
	u32 := func(v uint32) { binary.Write(&b, binary.LittleEndian, v) }
	b.WriteString("TEXV0005\x00")
	b.WriteString("TEXI0001\x00")
	u32(s.format)
	u32(0)
	u32(s.w)
	u32(s.h)
	u32(s.imgW)
	u32(s.imgH)
	u32(0)
	b.WriteString(s.container + "\x00")
	u32(1)
	if s.container == "TEXB0003" {
		binary.Write(&b, binary.LittleEndian, s.freeImage)
	}
	u32(1)
	u32(s.w)
	u32(s.h)
	if s.container != "TEXB0001" {
		if s.compressed {
			u32(1)
		} else {
			u32(0)
		}
		u32(s.rawSize)
	}
	u32(uint32(len(s.data)))
	b.Write(s.data)
	return b.Bytes()
}

func TestDecodeTexRGBA(t *testing.T) {
	data := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 10, 20, 30, 40,
	}
	img, err := DecodeTex(bytes.NewReader(buildTex(texFixture{
		container: "TEXB0002", format: TexFormatRGBA8888,
		w: 2, h: 2, imgW: 2, imgH: 2, data: data, rawSize: 16,
	})))
	if err != nil {
		t.Fatalf("DecodeTex: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", got)
	}
	want := color.NRGBA{10, 20, 30, 40}
	if got := color.NRGBAModel.Convert(img.At(1, 1)); got != want {
		t.Fatalf("pixel (1,1) = %v, want %v", got, want)
	}
}

func TestDecodeTexLZ4Cropped(t *testing.T) {
	raw := bytes.Repeat([]byte{200, 100, 50, 255}, 16*16)
	buf := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, buf, nil)
	if err != nil || n == 0 {
		t.Fatalf("CompressBlock: n=%d err=%v", n, err)
	}

	img, err := DecodeTex(bytes.NewReader(buildTex(texFixture{
		container: "TEXB0002", format: TexFormatRGBA8888,
		w: 16, h: 16, imgW: 10, imgH: 12,
		data: buf[:n], rawSize: uint32(len(raw)), compressed: true,
	})))
	if err != nil {
		t.Fatalf("DecodeTex: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 10, 12) {
		t.Fatalf("bounds = %v, want 10x12 crop", got)
	}
	if got := color.NRGBAModel.Convert(img.At(9, 11)); got != (color.NRGBA{200, 100, 50, 255}) {
		t.Fatalf("pixel = %v", got)
	}
}

func TestDecodeTexR8(t *testing.T) {
	img, err := DecodeTex(bytes.NewReader(buildTex(texFixture{
		container: "TEXB0001", format: TexFormatR8,
		w: 2, h: 1, imgW: 2, imgH: 1, data: []byte{0, 128},
	})))
	if err != nil {
		t.Fatalf("DecodeTex: %v", err)
	}
	if got := color.NRGBAModel.Convert(img.At(1, 0)); got != (color.NRGBA{128, 128, 128, 255}) {
		t.Fatalf("pixel = %v", got)
	}
}

func TestDecodeTexDXT1(t *testing.T) {
	// One 4x4 block, color0 pure red, all indices 0.
	block := []byte{0x00, 0xf8, 0x00, 0x00, 0, 0, 0, 0}
	img, err := DecodeTex(bytes.NewReader(buildTex(texFixture{
		container: "TEXB0002", format: TexFormatDXT1,
		w: 4, h: 4, imgW: 4, imgH: 4, data: block, rawSize: 8,
	})))
	if err != nil {
		t.Fatalf("DecodeTex: %v", err)
	}
	r, g, b, _ := img.At(2, 2).RGBA()
	if r>>8 < 240 || g>>8 > 10 || b>>8 > 10 {
		t.Fatalf("pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
	}
}

func TestDecodeTexEmbeddedPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.Set(1, 1, color.NRGBA{1, 2, 3, 255})
	var enc bytes.Buffer
	if err := png.Encode(&enc, src); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeTex(bytes.NewReader(buildTex(texFixture{
		container: "TEXB0003", freeImage: 13,
		w: 3, h: 3, imgW: 3, imgH: 3, data: enc.Bytes(), rawSize: uint32(enc.Len()),
	})))
	if err != nil {
		t.Fatalf("DecodeTex: %v", err)
	}
	if got := color.NRGBAModel.Convert(img.At(1, 1)); got != (color.NRGBA{1, 2, 3, 255}) {
		t.Fatalf("pixel = %v", got)
	}
}

func TestDecodeTexErrors(t *testing.T) {
	good := buildTex(texFixture{container: "TEXB0002", w: 1, h: 1, imgW: 1, imgH: 1, data: []byte{1, 2, 3, 4}, rawSize: 4})

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"bad magic", append([]byte("TEXV0004\x00"), good[9:]...), "invalid texture magic"},
		{"truncated", good[:30], "texture header"},
		{"short mip", good[:len(good)-2], "texture mip"},
		{"bad container", bytes.Replace(good, []byte("TEXB0002"), []byte("TEXB9999"), 1), "unknown texture container"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTex(bytes.NewReader(tc.data))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want %q", err, tc.want)
			}
		})
	}
}

func TestSniffExt(t *testing.T) {
	tests := map[string]string{
		"\x89PNG\r\n":                  ".png",
		"\xff\xd8\xff\xe0":             ".jpg",
		"GIF89a":                       ".gif",
		"BM\x00\x00":                   ".bmp",
		"RIFF\x00\x00\x00\x00WEBPVP8L": ".webp",
		"\x00\x00\x02":                 ".tga",
	}
	for in, want := range tests {
		if got := sniffExt([]byte(in)); got != want {
			t.Errorf("sniffExt(%q) = %s, want %s", in, got, want)
		}
	}
}
