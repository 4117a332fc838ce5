//go:build doslike

package dos

/*
#cgo CFLAGS: -I${SRCDIR}/../third_party/dos-like/source
#cgo doslike_noframe CFLAGS: -DDISABLE_SCREEN_FRAME
#cgo doslike_nocursor CFLAGS: -DDISABLE_SYSTEM_CURSOR
#cgo linux pkg-config: sdl2
#cgo linux LDFLAGS: -lGLEW -lGL -lm -lpthread
#cgo darwin pkg-config: sdl2 glew
#cgo darwin LDFLAGS: -framework OpenGL

#define NO_MAIN_DEF 1
#include <stdlib.h>
#include "dos.h"

int doslike_main(int argc, char** argv);
*/
import "C"

import (
	"os"
	"runtime"
	"unsafe"
)

func init() {
	// SDL wants its window on the main thread.
	runtime.LockOSThread()
}

var (
	appMain func() error
	appErr  error
)

func run(app func() error) error {
	appMain = app
	argc := len(os.Args)
	argv := (**C.char)(C.malloc(C.size_t(argc+1) * C.size_t(unsafe.Sizeof(uintptr(0)))))
	args := unsafe.Slice(argv, argc+1)
	for i, a := range os.Args {
		args[i] = C.CString(a)
	}
	args[argc] = nil
	defer func() {
		for _, p := range args[:argc] {
			C.free(unsafe.Pointer(p))
		}
		C.free(unsafe.Pointer(argv))
	}()

	if code := C.doslike_main(C.int(argc), argv); code != 0 && appErr == nil {
		logger.Debug("native main failed", "code", int(code))
	}
	return appErr
}

//export dosmain
func dosmain(argc C.int, argv **C.char) C.int {
	if appMain == nil {
		return 0
	}
	if appErr = appMain(); appErr != nil {
		return 1
	}
	return 0
}

func waitVBL() { C.waitvbl() }

func shuttingDown() bool { return C.shuttingdown() != 0 }
