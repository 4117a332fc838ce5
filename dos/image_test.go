//go:build !doslike

package dos

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func testGIF(t *testing.T) []byte {
	t.Helper()
	pal := color.Palette{
		color.RGBA{0, 0, 0, 0xff},
		color.RGBA{0xff, 0xff, 0xff, 0xff},
		color.RGBA{0x80, 0x40, 0x00, 0xff},
	}
	img := image.NewPaletted(image.Rect(0, 0, 3, 2), pal)
	copy(img.Pix, []uint8{0, 1, 2, 2, 1, 0})
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func checkGIF(t *testing.T, m *Image) {
	t.Helper()
	if m.Width() != 3 || m.Height() != 2 {
		t.Fatalf("size %dx%d, want 3x2", m.Width(), m.Height())
	}
	if !bytes.Equal(m.Pixels(), []byte{0, 1, 2, 2, 1, 0}) {
		t.Errorf("Pixels() = %v", m.Pixels())
	}
	if m.PaletteCount() < 3 {
		t.Fatalf("PaletteCount() = %d, want at least 3", m.PaletteCount())
	}
	want := []byte{0, 0, 0, 63, 63, 63, 32, 16, 0}
	if got := m.Palette()[:9]; !bytes.Equal(got, want) {
		t.Errorf("Palette() = %v, want %v", got, want)
	}
	if len(m.Palette()) != m.PaletteCount()*3 {
		t.Errorf("Palette() has %d bytes for %d colors", len(m.Palette()), m.PaletteCount())
	}
	if m.Colors()[2] != (RGB{32, 16, 0}) {
		t.Errorf("Colors()[2] = %v", m.Colors()[2])
	}
}

func TestLoadGIF(t *testing.T) {
	fresh(t)
	path := filepath.Join(t.TempDir(), "test.gif")
	if err := os.WriteFile(path, testGIF(t), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadGIF(path)
	if err != nil {
		t.Fatal(err)
	}
	checkGIF(t, m)
}

func TestDecodeGIF(t *testing.T) {
	m, err := DecodeGIF(bytes.NewReader(testGIF(t)))
	if err != nil {
		t.Fatal(err)
	}
	checkGIF(t, m)

	if _, err := DecodeGIF(bytes.NewReader([]byte("not a gif"))); err == nil {
		t.Error("DecodeGIF accepted garbage")
	}
}

func TestImagePaletted(t *testing.T) {
	m, err := DecodeGIF(bytes.NewReader(testGIF(t)))
	if err != nil {
		t.Fatal(err)
	}
	p := m.Paletted()
	if p.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Bounds() = %v", p.Bounds())
	}
	if p.ColorIndexAt(1, 0) != 1 {
		t.Errorf("ColorIndexAt(1,0) = %d", p.ColorIndexAt(1, 0))
	}
	if got := color.RGBAModel.Convert(p.At(1, 0)).(color.RGBA); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("At(1,0) = %v", got)
	}
	p.Pix[0] = 9
	if m.Pixels()[0] != 0 {
		t.Error("Paletted() shares pixel memory with the image")
	}
}

func TestImagePalettedIndexPastCount(t *testing.T) {
	m := &Image{width: 2, height: 1, pix: []byte{1, 200}, palCount: 2}
	m.palette[3], m.palette[4], m.palette[5] = 63, 63, 63
	p := m.Paletted()
	if len(p.Palette) != PaletteSize {
		t.Fatalf("len(Palette) = %d, want %d", len(p.Palette), PaletteSize)
	}
	if got := color.RGBAModel.Convert(p.At(1, 0)).(color.RGBA); got != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("At(1,0) = %v", got)
	}
}
