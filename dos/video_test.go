//go:build !doslike

package dos

import (
	"errors"
	"image/color"
	"testing"
)

func TestVideoModeInfo(t *testing.T) {
	testCases := []struct {
		mode       VideoMode
		kind       VideoModeKind
		w, h       int
		cols, rows int
	}{
		{Text40x25_8x8, TextMode, 320, 200, 40, 25},
		{Text40x25_9x16, TextMode, 360, 400, 40, 25},
		{Text80x25_8x8, TextMode, 640, 200, 80, 25},
		{Text80x25_8x16, TextMode, 640, 400, 80, 25},
		{Text80x25_9x16, TextMode, 720, 400, 80, 25},
		{Text80x43_8x8, TextMode, 640, 344, 80, 43},
		{Text80x50_8x8, TextMode, 640, 400, 80, 50},
		{Graphics320x200, GraphicsMode, 320, 200, 0, 0},
		{Graphics320x240, GraphicsMode, 320, 240, 0, 0},
		{Graphics320x400, GraphicsMode, 320, 400, 0, 0},
		{Graphics640x200, GraphicsMode, 640, 200, 0, 0},
		{Graphics640x350, GraphicsMode, 640, 350, 0, 0},
		{Graphics640x400, GraphicsMode, 640, 400, 0, 0},
		{Graphics640x480, GraphicsMode, 640, 480, 0, 0},
	}
	if len(testCases) != len(VideoModes()) {
		t.Fatalf("%d cases for %d modes", len(testCases), len(VideoModes()))
	}
	for _, tc := range testCases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			if tc.mode.Kind() != tc.kind {
				t.Errorf("Kind() = %v, want %v", tc.mode.Kind(), tc.kind)
			}
			if tc.mode.IsText() == tc.mode.IsGraphics() {
				t.Errorf("IsText() = IsGraphics() = %v", tc.mode.IsText())
			}
			if w, h := tc.mode.Resolution(); w != tc.w || h != tc.h {
				t.Errorf("Resolution() = %dx%d, want %dx%d", w, h, tc.w, tc.h)
			}
			if c, r := tc.mode.TextSize(); c != tc.cols || r != tc.rows {
				t.Errorf("TextSize() = %dx%d, want %dx%d", c, r, tc.cols, tc.rows)
			}
			if tc.mode.IsText() {
				gw, gh := tc.mode.GlyphSize()
				if gw*tc.cols != tc.w || gh*tc.rows != tc.h {
					t.Errorf("GlyphSize() = %dx%d does not tile %dx%d", gw, gh, tc.w, tc.h)
				}
			}
		})
	}
}

func TestVideoModeInvalid(t *testing.T) {
	m := VideoMode(99)
	if m.IsText() || m.IsGraphics() {
		t.Error("invalid mode claims a kind")
	}
	if m.String() != "VideoMode(99)" {
		t.Errorf("String() = %q", m.String())
	}
	fresh(t)
	SetVideoMode(m)
	if CurrentVideoMode() != DefaultVideoMode {
		t.Errorf("invalid mode was applied: %v", CurrentVideoMode())
	}
}

// TestScreenDimensions checks the reported size of every mode
func TestScreenDimensions(t *testing.T) {
	fresh(t)
	for _, m := range VideoModes() {
		SetVideoMode(m)
		w, h := m.Resolution()
		if ScreenWidth() != w || ScreenHeight() != h {
			t.Errorf("%v: screen %dx%d, want %dx%d", m, ScreenWidth(), ScreenHeight(), w, h)
		}
		if CurrentVideoMode() != m {
			t.Errorf("CurrentVideoMode = %v, want %v", CurrentVideoMode(), m)
		}
	}
}

// TestPalRoundTrip checks that entries read back as written
func TestPalRoundTrip(t *testing.T) {
	fresh(t)
	for i := 0; i < PaletteSize; i++ {
		if err := SetPal(i, uint8(i%64), uint8((i*3)%64), uint8(63-i%64)); err != nil {
			t.Fatalf("SetPal(%d): %v", i, err)
		}
	}
	for i := 0; i < PaletteSize; i++ {
		r, g, b, err := Pal(i)
		if err != nil {
			t.Fatalf("Pal(%d): %v", i, err)
		}
		if r != uint8(i%64) || g != uint8((i*3)%64) || b != uint8(63-i%64) {
			t.Errorf("Pal(%d) = %d,%d,%d", i, r, g, b)
		}
	}
}

func TestPalIndexRange(t *testing.T) {
	fresh(t)
	for _, i := range []int{-1, PaletteSize, 1000} {
		if err := SetPal(i, 1, 2, 3); !errors.Is(err, ErrPaletteIndex) {
			t.Errorf("SetPal(%d) = %v, want ErrPaletteIndex", i, err)
		}
		if _, _, _, err := Pal(i); !errors.Is(err, ErrPaletteIndex) {
			t.Errorf("Pal(%d) = %v, want ErrPaletteIndex", i, err)
		}
	}
}

func TestSetPalette(t *testing.T) {
	fresh(t)
	in := make([]RGB, PaletteSize+10)
	for i := range in {
		in[i] = RGB{uint8(i % 64), 0, 1}
	}
	SetPalette(in)
	out := Palette()
	if len(out) != PaletteSize {
		t.Fatalf("Palette() has %d entries", len(out))
	}
	for i := range out {
		if out[i] != in[i] {
			t.Errorf("entry %d = %v, want %v", i, out[i], in[i])
		}
	}
}

// TestColorPalette checks the 6-bit to 8-bit expansion
func TestColorPalette(t *testing.T) {
	fresh(t)
	SetPal(0, 0, 0, 0)
	SetPal(1, 63, 32, 1)
	p := ColorPalette()
	want := []color.RGBA{{0, 0, 0, 0xff}, {0xff, 0x82, 0x04, 0xff}}
	for i, w := range want {
		if got := color.RGBAModel.Convert(p[i]).(color.RGBA); got != w {
			t.Errorf("entry %d = %v, want %v", i, got, w)
		}
	}
}
