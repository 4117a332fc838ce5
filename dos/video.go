package dos

import (
	"image/color"
	"strconv"
)

// VideoMode is one of the text or graphics modes of the emulated adapter.
type VideoMode int

const (
	Text40x25_8x8 VideoMode = iota
	Text40x25_9x16
	Text80x25_8x8
	Text80x25_8x16
	Text80x25_9x16
	Text80x43_8x8
	Text80x50_8x8
	Graphics320x200
	Graphics320x240
	Graphics320x400
	Graphics640x200
	Graphics640x350
	Graphics640x400
	Graphics640x480

	videoModeCount
)

// DefaultVideoMode is the mode active when Run calls the program.
const DefaultVideoMode = Text80x25_8x16

// VideoModeKind tells text modes from graphics modes.
type VideoModeKind int

const (
	TextMode VideoModeKind = iota
	GraphicsMode
)

func (k VideoModeKind) String() string {
	if k == GraphicsMode {
		return "graphics"
	}
	return "text"
}

type modeInfo struct {
	name       string
	kind       VideoModeKind
	w, h       int // pixels
	cols, rows int
	gw, gh     int
}

var videoModes = [videoModeCount]modeInfo{
	Text40x25_8x8:   {"40x25_8x8", TextMode, 320, 200, 40, 25, 8, 8},
	Text40x25_9x16:  {"40x25_9x16", TextMode, 360, 400, 40, 25, 9, 16},
	Text80x25_8x8:   {"80x25_8x8", TextMode, 640, 200, 80, 25, 8, 8},
	Text80x25_8x16:  {"80x25_8x16", TextMode, 640, 400, 80, 25, 8, 16},
	Text80x25_9x16:  {"80x25_9x16", TextMode, 720, 400, 80, 25, 9, 16},
	Text80x43_8x8:   {"80x43_8x8", TextMode, 640, 344, 80, 43, 8, 8},
	Text80x50_8x8:   {"80x50_8x8", TextMode, 640, 400, 80, 50, 8, 8},
	Graphics320x200: {"320x200", GraphicsMode, 320, 200, 0, 0, 0, 0},
	Graphics320x240: {"320x240", GraphicsMode, 320, 240, 0, 0, 0, 0},
	Graphics320x400: {"320x400", GraphicsMode, 320, 400, 0, 0, 0, 0},
	Graphics640x200: {"640x200", GraphicsMode, 640, 200, 0, 0, 0, 0},
	Graphics640x350: {"640x350", GraphicsMode, 640, 350, 0, 0, 0, 0},
	Graphics640x400: {"640x400", GraphicsMode, 640, 400, 0, 0, 0, 0},
	Graphics640x480: {"640x480", GraphicsMode, 640, 480, 0, 0, 0, 0},
}

// VideoModes lists every mode, text modes first.
func VideoModes() []VideoMode {
	modes := make([]VideoMode, videoModeCount)
	for i := range modes {
		modes[i] = VideoMode(i)
	}
	return modes
}

func (m VideoMode) valid() bool { return m >= 0 && m < videoModeCount }

func (m VideoMode) String() string {
	if !m.valid() {
		return "VideoMode(" + strconv.Itoa(int(m)) + ")"
	}
	return "videomode_" + videoModes[m].name
}

func (m VideoMode) Kind() VideoModeKind {
	if !m.valid() {
		return TextMode
	}
	return videoModes[m].kind
}

func (m VideoMode) IsText() bool     { return m.valid() && m.Kind() == TextMode }
func (m VideoMode) IsGraphics() bool { return m.valid() && m.Kind() == GraphicsMode }

// Resolution returns the size of the mode in pixels.
func (m VideoMode) Resolution() (w, h int) {
	if !m.valid() {
		return 0, 0
	}
	return videoModes[m].w, videoModes[m].h
}

// TextSize returns the columns and rows of a text mode, zero otherwise.
func (m VideoMode) TextSize() (cols, rows int) {
	if !m.IsText() {
		return 0, 0
	}
	return videoModes[m].cols, videoModes[m].rows
}

// GlyphSize returns the character cell of a text mode, zero otherwise.
func (m VideoMode) GlyphSize() (w, h int) {
	if !m.IsText() {
		return 0, 0
	}
	return videoModes[m].gw, videoModes[m].gh
}

var current = DefaultVideoMode

// SetVideoMode switches the adapter to m. Any Screen handle becomes invalid.
func SetVideoMode(m VideoMode) {
	if !m.valid() {
		logger.Debug("unknown video mode", "mode", int(m))
		return
	}
	setVideoMode(m)
	current = m
	invalidateScreen()
}

// CurrentVideoMode returns the mode last passed to SetVideoMode.
func CurrentVideoMode() VideoMode { return current }

// SetDoubleBuffer selects whether drawing goes to a back buffer that
// Screen.Swap presents. It ends any held Screen.
func SetDoubleBuffer(enabled bool) {
	setDoubleBuffer(enabled)
	invalidateScreen()
}

func ScreenWidth() int  { return screenWidth() }
func ScreenHeight() int { return screenHeight() }

// PaletteSize is the number of palette entries.
const PaletteSize = 256

// RGB is a palette entry in the VGA DAC range, 0 to 63 per channel.
type RGB struct {
	R, G, B uint8
}

// RGBA scales the 6-bit channels to 16 bits.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: dac8(c.R), G: dac8(c.G), B: dac8(c.B), A: 0xff}.RGBA()
}

func dac8(v uint8) uint8 {
	v &= 0x3f
	return v<<2 | v>>4
}

// SetPal sets palette entry index.
func SetPal(index int, r, g, b uint8) error {
	if index < 0 || index >= PaletteSize {
		return ErrPaletteIndex
	}
	setPal(index, r, g, b)
	return nil
}

// Pal returns palette entry index.
func Pal(index int) (r, g, b uint8, err error) {
	if index < 0 || index >= PaletteSize {
		return 0, 0, 0, ErrPaletteIndex
	}
	r, g, b = getPal(index)
	return r, g, b, nil
}

// SetPalette sets entries from 0 up to len(p), ignoring anything past 256.
func SetPalette(p []RGB) {
	for i, c := range p[:min(len(p), PaletteSize)] {
		setPal(i, c.R, c.G, c.B)
	}
}

// Palette returns all palette entries.
func Palette() []RGB {
	p := make([]RGB, PaletteSize)
	for i := range p {
		p[i].R, p[i].G, p[i].B = getPal(i)
	}
	return p
}

// ColorPalette returns the palette for use with image.Paletted.
func ColorPalette() color.Palette {
	p := make(color.Palette, PaletteSize)
	for i := range p {
		r, g, b := getPal(i)
		p[i] = RGB{r, g, b}
	}
	return p
}
