//go:build doslike

package dos

// #include <stdlib.h>
// #include "dos.h"
import "C"

import "unsafe"

func loadGIF(path string) *Image {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))

	var w, h, n C.int
	var pal [PaletteSize * 3]C.uchar
	data := C.loadgif(cs, &w, &h, &n, &pal[0])
	if data == nil {
		return nil
	}
	defer C.free(unsafe.Pointer(data))

	m := &Image{
		width:    int(w),
		height:   int(h),
		pix:      C.GoBytes(unsafe.Pointer(data), w*h),
		palCount: min(int(n), PaletteSize),
	}
	for i, c := range pal {
		m.palette[i] = byte(c)
	}
	return m
}
