package convert

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/mauserzjeh/dxt"
	"github.com/pierrec/lz4/v4"
)

// Wallpaper Engine texture formats seen in the header.
const (
	TexFormatRGBA8888 = 0
	TexFormatDXT5     = 4
	TexFormatDXT1     = 7
	TexFormatRG88     = 8
	TexFormatR8       = 9
)

var ErrNoTexImage = errors.New("convert: texture holds no image")

// texReader keeps the first read error so the header can be parsed without
// checking every field.
type texReader struct {
	r   io.Reader
	err error
}

func (t *texReader) u32() uint32 {
	var v uint32
	if t.err == nil {
		t.err = binary.Read(t.r, binary.LittleEndian, &v)
	}
	return v
}

func (t *texReader) i32() int32 {
	return int32(t.u32())
}

// magic reads an 8 byte tag followed by its NUL terminator.
func (t *texReader) magic() string {
	b := make([]byte, 9)
	if t.err == nil {
		_, t.err = io.ReadFull(t.r, b)
	}
	return string(bytes.TrimRight(b, "\x00"))
}

func (t *texReader) bytes(n uint32) []byte {
	if t.err != nil {
		return nil
	}
	if n > 1<<28 {
		t.err = fmt.Errorf("convert: texture block of %d bytes", n)
		return nil
	}
	b := make([]byte, n)
	_, t.err = io.ReadFull(t.r, b)
	return b
}

// TexHeader describes the fixed part of a .tex file.
type TexHeader struct {
	Format        uint32
	Flags         uint32
	TextureWidth  uint32
	TextureHeight uint32
	ImageWidth    uint32
	ImageHeight   uint32
	Container     string
	ImageCount    uint32
	// FreeImageFormat is -1 for raw mip data, otherwise the mips hold a
	// complete encoded file (PNG, JPEG, ...).
	FreeImageFormat int32
}

func readTexHeader(t *texReader) (TexHeader, error) {
	var h TexHeader
	if m := t.magic(); t.err == nil && m != "TEXV0005" {
		return h, fmt.Errorf("convert: invalid texture magic %q", m)
	}
	if m := t.magic(); t.err == nil && m != "TEXI0001" {
		return h, fmt.Errorf("convert: invalid texture info magic %q", m)
	}
	h.Format = t.u32()
	h.Flags = t.u32()
	h.TextureWidth = t.u32()
	h.TextureHeight = t.u32()
	h.ImageWidth = t.u32()
	h.ImageHeight = t.u32()
	t.u32()
	h.Container = t.magic()
	h.ImageCount = t.u32()
	h.FreeImageFormat = -1
	if h.Container == "TEXB0003" || h.Container == "TEXB0004" {
		h.FreeImageFormat = t.i32()
	}
	if t.err != nil {
		return h, fmt.Errorf("convert: texture header: %w", t.err)
	}
	switch h.Container {
	case "TEXB0001", "TEXB0002", "TEXB0003", "TEXB0004":
	default:
		return h, fmt.Errorf("convert: unknown texture container %q", h.Container)
	}
	return h, nil
}

// DecodeTex decodes the first mip of the first image of a Wallpaper Engine
// .tex stream, cropped to the image size stored in the header.
func DecodeTex(r io.Reader) (image.Image, error) {
	t := &texReader{r: r}
	h, err := readTexHeader(t)
	if err != nil {
		return nil, err
	}
	log.Debug("Texture format %d, %dx%d in %s", h.Format, h.ImageWidth, h.ImageHeight, h.Container)

	if h.ImageCount == 0 {
		return nil, ErrNoTexImage
	}

	mipCount := t.u32()
	if t.err == nil && mipCount == 0 {
		return nil, ErrNoTexImage
	}
	mw, mh := t.u32(), t.u32()
	var compressed bool
	var rawSize uint32
	if h.Container != "TEXB0001" {
		compressed = t.u32() == 1
		rawSize = t.u32()
	}
	data := t.bytes(t.u32())
	if t.err != nil {
		return nil, fmt.Errorf("convert: texture mip: %w", t.err)
	}

	if compressed {
		if rawSize > 1<<28 {
			return nil, fmt.Errorf("convert: texture mip of %d bytes", rawSize)
		}
		out := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, fmt.Errorf("convert: texture lz4: %w", err)
		}
		data = out[:n]
	}

	if h.FreeImageFormat != -1 {
		img, err := Decode(bytes.NewReader(data), sniffExt(data))
		if err != nil {
			return nil, fmt.Errorf("convert: embedded texture image: %w", err)
		}
		return img, nil
	}

	pix, err := texPixels(h.Format, data, mw, mh)
	if err != nil {
		return nil, err
	}

	img := &image.NRGBA{
		Pix:    pix,
		Stride: int(mw) * 4,
		Rect:   image.Rect(0, 0, int(mw), int(mh)),
	}
	crop := image.Rect(0, 0, int(min(h.ImageWidth, mw)), int(min(h.ImageHeight, mh)))
	if crop.Empty() || crop == img.Rect {
		return img, nil
	}
	return img.SubImage(crop), nil
}

func texPixels(format uint32, data []byte, w, h uint32) ([]byte, error) {
	n := int(w) * int(h)
	blocks := int((w+3)/4) * int((h+3)/4)

	switch {
	case format == TexFormatRGBA8888 && len(data) >= n*4:
		return data[:n*4], nil
	case format == TexFormatDXT5 || (format != TexFormatDXT1 && len(data) == blocks*16):
		return dxt.DecodeDXT5(data, uint(w), uint(h))
	case format == TexFormatDXT1 || len(data) == blocks*8:
		return dxt.DecodeDXT1(data, uint(w), uint(h))
	case format == TexFormatR8 && len(data) >= n:
		pix := make([]byte, n*4)
		for i := 0; i < n; i++ {
			v := data[i]
			pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = v, v, v, 255
		}
		return pix, nil
	case format == TexFormatRG88 && len(data) >= n*2:
		pix := make([]byte, n*4)
		for i := 0; i < n; i++ {
			v, a := data[i*2], data[i*2+1]
			pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = v, v, v, a
		}
		return pix, nil
	}
	return nil, fmt.Errorf("convert: unsupported texture format %d with %d bytes for %dx%d", format, len(data), w, h)
}

// sniffExt names the format of an encoded image by its leading bytes, falling
// back to ".tga" which has no signature.
func sniffExt(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return ".png"
	case bytes.HasPrefix(data, []byte{0xff, 0xd8}):
		return ".jpg"
	case bytes.HasPrefix(data, []byte("GIF8")):
		return ".gif"
	case bytes.HasPrefix(data, []byte("BM")):
		return ".bmp"
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return ".webp"
	}
	return ".tga"
}
