//go:build !doslike

package dos

func keyState(k Key) bool { return headless.held[k] }

func readKeys() []KeyEvent {
	keys := headless.keys
	headless.keys = nil
	return keys
}

func readChars() []byte {
	chars := headless.chars
	headless.chars = nil
	return chars
}

func mouseX() int    { return 0 }
func mouseY() int    { return 0 }
func mouseRelX() int { return 0 }
func mouseRelY() int { return 0 }
