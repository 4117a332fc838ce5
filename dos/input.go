package dos

import "golang.org/x/text/encoding/charmap"

// maxEvents bounds the native key and char buffers.
const maxEvents = 256

// KeyEvent is one entry of the key buffer.
type KeyEvent struct {
	Key      Key
	Released bool
}

// Pressed reports whether the event is a key press.
func (e KeyEvent) Pressed() bool { return !e.Released }

func (e KeyEvent) String() string {
	if e.Released {
		return e.Key.String() + " released"
	}
	return e.Key.String() + " pressed"
}

// KeyState reports whether k is held down.
func KeyState(k Key) bool {
	if k >= KeyCount {
		return false
	}
	return keyState(k)
}

// ReadKeys drains the key events queued since the previous call.
func ReadKeys() []KeyEvent { return readKeys() }

// ReadChars drains the characters typed since the previous call, as
// code page 437 bytes.
func ReadChars() []byte { return readChars() }

// ReadText is ReadChars decoded to UTF-8.
func ReadText() string {
	chars := readChars()
	if len(chars) == 0 {
		return ""
	}
	s, err := charmap.CodePage437.NewDecoder().Bytes(chars)
	if err != nil {
		return string(chars)
	}
	return string(s)
}

func MouseX() int    { return mouseX() }
func MouseY() int    { return mouseY() }
func MouseRelX() int { return mouseRelX() }
func MouseRelY() int { return mouseRelY() }
