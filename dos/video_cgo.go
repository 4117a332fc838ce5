//go:build doslike

package dos

// #include "dos.h"
import "C"

import "unsafe"

var nativeVideoModes = [videoModeCount]C.enum_videomode_t{
	Text40x25_8x8:   C.videomode_40x25_8x8,
	Text40x25_9x16:  C.videomode_40x25_9x16,
	Text80x25_8x8:   C.videomode_80x25_8x8,
	Text80x25_8x16:  C.videomode_80x25_8x16,
	Text80x25_9x16:  C.videomode_80x25_9x16,
	Text80x43_8x8:   C.videomode_80x43_8x8,
	Text80x50_8x8:   C.videomode_80x50_8x8,
	Graphics320x200: C.videomode_320x200,
	Graphics320x240: C.videomode_320x240,
	Graphics320x400: C.videomode_320x400,
	Graphics640x200: C.videomode_640x200,
	Graphics640x350: C.videomode_640x350,
	Graphics640x400: C.videomode_640x400,
	Graphics640x480: C.videomode_640x480,
}

func setVideoMode(m VideoMode) { C.setvideomode(nativeVideoModes[m]) }

func setDoubleBuffer(enabled bool) { C.setdoublebuffer(C.int(cbool(enabled))) }

func screenWidth() int  { return int(C.screenwidth()) }
func screenHeight() int { return int(C.screenheight()) }

func setPal(index int, r, g, b uint8) {
	C.setpal(C.int(index), C.int(r), C.int(g), C.int(b))
}

func getPal(index int) (r, g, b uint8) {
	var cr, cg, cb C.int
	C.getpal(C.int(index), &cr, &cg, &cb)
	return uint8(cr), uint8(cg), uint8(cb)
}

func frame(p *C.uchar) []byte {
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), screenWidth()*screenHeight())
}

func screenBuffer() []byte { return frame(C.screenbuffer()) }

func swapBuffers() []byte { return frame(C.swapbuffers()) }
