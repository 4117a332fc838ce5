//go:build doslike

package dos

// #include <stdlib.h>
// #include "dos.h"
import "C"

import "unsafe"

func blit(x, y int, src []byte, width, height, srcX, srcY, srcW, srcH int) {
	C.blit(C.int(x), C.int(y), (*C.uchar)(unsafe.Pointer(&src[0])), C.int(width), C.int(height),
		C.int(srcX), C.int(srcY), C.int(srcW), C.int(srcH))
}

func maskBlit(x, y int, src []byte, width, height, srcX, srcY, srcW, srcH int, colorKey uint8) {
	C.maskblit(C.int(x), C.int(y), (*C.uchar)(unsafe.Pointer(&src[0])), C.int(width), C.int(height),
		C.int(srcX), C.int(srcY), C.int(srcW), C.int(srcH), C.int(colorKey))
}

func clearScreen()               { C.clearscreen() }
func getPixel(x, y int) uint8    { return uint8(C.getpixel(C.int(x), C.int(y))) }
func putPixel(x, y int, c uint8) { C.putpixel(C.int(x), C.int(y), C.int(c)) }
func hLine(x, y, n int, c uint8) { C.hline(C.int(x), C.int(y), C.int(n), C.int(c)) }
func setColor(c uint8)           { C.setcolor(C.int(c)) }
func getColor() uint8            { return uint8(C.getcolor()) }

func line(x1, y1, x2, y2 int) { C.line(C.int(x1), C.int(y1), C.int(x2), C.int(y2)) }

func rectangle(x1, y1, x2, y2 int) { C.rectangle(C.int(x1), C.int(y1), C.int(x2), C.int(y2)) }

func bar(x1, y1, x2, y2 int) { C.bar(C.int(x1), C.int(y1), C.int(x2), C.int(y2)) }

func circle(x, y, r int)           { C.circle(C.int(x), C.int(y), C.int(r)) }
func fillCircle(x, y, r int)       { C.fillcircle(C.int(x), C.int(y), C.int(r)) }
func ellipse(x, y, rx, ry int)     { C.ellipse(C.int(x), C.int(y), C.int(rx), C.int(ry)) }
func fillEllipse(x, y, rx, ry int) { C.fillellipse(C.int(x), C.int(y), C.int(rx), C.int(ry)) }

func cints(v []int) []C.int {
	c := make([]C.int, len(v))
	for i, n := range v {
		c[i] = C.int(n)
	}
	return c
}

// The native count is in points, not coordinates.
func drawPoly(points []int) {
	C.drawpoly(&cints(points)[0], C.int(len(points)/2))
}

func fillPoly(points []int) {
	C.fillpoly(&cints(points)[0], C.int(len(points)/2))
}

func floodFill(x, y int)                    { C.floodfill(C.int(x), C.int(y)) }
func boundaryFill(x, y int, boundary uint8) { C.boundaryfill(C.int(x), C.int(y), C.int(boundary)) }

func withCString(s string, f func(*C.char)) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	f(cs)
}

func outTextXY(x, y int, text string) {
	withCString(text, func(cs *C.char) { C.outtextxy(C.int(x), C.int(y), cs) })
}

func wrapTextXY(x, y int, text string, width int) {
	withCString(text, func(cs *C.char) { C.wraptextxy(C.int(x), C.int(y), cs, C.int(width)) })
}

func centerTextXY(x, y int, text string, width int) {
	withCString(text, func(cs *C.char) { C.centertextxy(C.int(x), C.int(y), cs, C.int(width)) })
}
