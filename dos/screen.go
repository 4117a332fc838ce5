package dos

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

var (
	screenHeld bool
	screenGen  uint64
)

func invalidateScreen() {
	screenGen++
	screenHeld = false
}

// Screen is the single owner of the frame buffer of a graphics mode.
// It stays valid until Swap, Release, the next SetVideoMode or
// SetDoubleBuffer.
type Screen struct {
	pix           []byte
	width, height int
	gen           uint64
	done          bool
}

// AcquireScreen hands out the frame buffer. Only one Screen can be held
// at a time.
func AcquireScreen() (*Screen, error) {
	if !current.IsGraphics() {
		return nil, ErrNotGraphics
	}
	if screenHeld {
		logger.Debug("screen busy")
		return nil, ErrScreenBusy
	}
	screenHeld = true
	return newScreen(screenBuffer()), nil
}

func newScreen(pix []byte) *Screen {
	w, h := screenWidth(), screenHeight()
	return &Screen{pix: pix[:w*h], width: w, height: h, gen: screenGen}
}

func (s *Screen) live() bool { return s != nil && !s.done && s.gen == screenGen }

// Pixels returns the buffer, one palette index per pixel, row major. It is
// nil once the handle is no longer valid.
func (s *Screen) Pixels() []byte {
	if !s.live() {
		return nil
	}
	return s.pix
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Set writes one pixel. Points outside the screen are ignored.
func (s *Screen) Set(x, y int, c uint8) {
	if !s.live() || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = c
}

// At reads one pixel.
func (s *Screen) At(x, y int) uint8 {
	if !s.live() || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.pix[y*s.width+x]
}

func (s *Screen) Fill(c uint8) {
	if !s.live() {
		return
	}
	for i := range s.pix {
		s.pix[i] = c
	}
}

// Swap presents the buffer and returns the handle for the next one. The
// receiver is invalid afterwards.
func (s *Screen) Swap() (*Screen, error) {
	if !s.live() {
		return nil, ErrScreenReleased
	}
	s.done = true
	return newScreen(swapBuffers()), nil
}

// Release gives the frame buffer back.
func (s *Screen) Release() {
	if !s.live() {
		return
	}
	s.done = true
	screenHeld = false
}

// Image wraps the buffer, sharing its memory, with the current palette.
func (s *Screen) Image() *image.Paletted {
	if !s.live() {
		return nil
	}
	return &image.Paletted{
		Pix:     s.pix,
		Stride:  s.width,
		Rect:    image.Rect(0, 0, s.width, s.height),
		Palette: ColorPalette(),
	}
}

// DrawImage scales src into r, mapping colors to the nearest palette entry.
func (s *Screen) DrawImage(r image.Rectangle, src image.Image) error {
	dst := s.Image()
	if dst == nil {
		return ErrScreenReleased
	}
	xdraw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), xdraw.Src, nil)
	return nil
}
