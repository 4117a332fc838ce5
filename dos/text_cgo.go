//go:build doslike

package dos

// #include <stdlib.h>
// #include "dos.h"
import "C"

import "unsafe"

const (
	nativeFont8x8  = C.DEFAULT_FONT_8X8
	nativeFont8x16 = C.DEFAULT_FONT_8X16
	nativeFont9x16 = C.DEFAULT_FONT_9X16
)

func cputs(s string) {
	withCString(s, func(cs *C.char) { C.cputs(cs) })
}

func textColor(c int)      { C.textcolor(C.int(c)) }
func textBackground(c int) { C.textbackground(C.int(c)) }
func gotoXY(x, y int)      { C.gotoxy(C.int(x), C.int(y)) }
func whereX() int          { return int(C.wherex()) }
func whereY() int          { return int(C.wherey()) }
func clrScr()              { C.clrscr() }
func cursOn()              { C.curson() }
func cursOff()             { C.cursoff() }

func installUserFont(path string) int {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	return int(C.installuserfont(cs))
}

func setTextStyle(font int, bold, italic, underline bool) {
	C.settextstyle(C.int(font), C.int(cbool(bold)), C.int(cbool(italic)), C.int(cbool(underline)))
}
