package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/drpaneas/godos/dos"
)

func testGIF(t *testing.T) []byte {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, color.White})
	img.Pix[3] = 1
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// TestPack_GIF tests decoding an image stored in a bundle
func TestPack_GIF(t *testing.T) {
	p := newPack("mem")
	p.add("gfx/logo.gif", testGIF(t))
	p.add("gfx/broken.gif", []byte("nope"))

	img, err := p.GIF("GFX/LOGO.GIF")
	if err != nil {
		t.Fatalf("GIF failed: %v", err)
	}
	if img.Width() != 2 || img.Height() != 2 || img.Pixels()[3] != 1 {
		t.Errorf("image %dx%d %v", img.Width(), img.Height(), img.Pixels())
	}
	if _, err := p.GIF("gfx/broken.gif"); err == nil {
		t.Error("GIF accepted garbage")
	}
	if _, err := p.GIF("gfx/missing.gif"); !errors.Is(err, ErrNoFile) {
		t.Errorf("GIF(missing) = %v, want ErrNoFile", err)
	}
}

// TestPack_Music tests format selection by extension
func TestPack_Music(t *testing.T) {
	p := newPack("mem")
	p.add("doom.mus", []byte("MUS\x1a"))
	p.add("simon.MID", []byte("MThd"))
	p.add("readme.txt", []byte("hi"))

	for _, name := range []string{"doom.mus", "simon.MID"} {
		if _, err := p.Music(name); err != nil {
			t.Errorf("Music(%s) failed: %v", name, err)
		}
	}
	if _, err := p.Music("readme.txt"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Music(readme.txt) = %v, want ErrUnsupportedFormat", err)
	}
}

// TestPack_Sound tests that bad sample data is reported
func TestPack_Sound(t *testing.T) {
	p := newPack("mem")
	p.add("beep.wav", []byte("RIFF junk"))
	if _, err := p.Sound("beep.wav"); !errors.Is(err, dos.ErrBadSamples) {
		t.Errorf("Sound = %v, want ErrBadSamples", err)
	}
}
