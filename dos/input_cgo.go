//go:build doslike

package dos

// #include "dos.h"
import "C"

import "unsafe"

var goKeys = func() map[C.enum_keycode_t]Key {
	m := make(map[C.enum_keycode_t]Key, len(nativeKeys))
	for k, c := range nativeKeys {
		// Aliased codes resolve to the first name listed.
		if _, ok := m[c]; !ok {
			m[c] = Key(k)
		}
	}
	return m
}()

func nativeKey(k Key) C.enum_keycode_t { return nativeKeys[k] }

func goKey(c C.enum_keycode_t) Key {
	if k, ok := goKeys[c]; ok {
		return k
	}
	return KeyInvalid
}

func keyState(k Key) bool { return C.keystate(nativeKey(k)) != 0 }

func readKeys() []KeyEvent {
	p := C.readkeys()
	if p == nil {
		return nil
	}
	raw := unsafe.Slice(p, maxEvents)
	var keys []KeyEvent
	for _, c := range raw {
		if c == 0 {
			break
		}
		keys = append(keys, KeyEvent{
			Key:      goKey(c &^ C.KEY_MODIFIER_RELEASED),
			Released: c&C.KEY_MODIFIER_RELEASED != 0,
		})
	}
	return keys
}

func readChars() []byte {
	p := C.readchars()
	if p == nil {
		return nil
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(p)), maxEvents)
	var chars []byte
	for _, c := range raw {
		if c == 0 {
			break
		}
		chars = append(chars, c)
	}
	return chars
}

func mouseX() int    { return int(C.mousex()) }
func mouseY() int    { return int(C.mousey()) }
func mouseRelX() int { return int(C.mouserelx()) }
func mouseRelY() int { return int(C.mouserely()) }
