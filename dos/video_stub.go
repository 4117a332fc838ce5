//go:build !doslike

package dos

func setVideoMode(m VideoMode) {
	headless.mode = m
	headless.allocBuffers()
	headless.cursorX, headless.cursorY = 0, 0
}

func setDoubleBuffer(enabled bool) { headless.double = enabled }

func screenWidth() int {
	w, _ := headless.mode.Resolution()
	return w
}

func screenHeight() int {
	_, h := headless.mode.Resolution()
	return h
}

func setPal(index int, r, g, b uint8) { headless.palette[index] = RGB{r, g, b} }

func getPal(index int) (r, g, b uint8) {
	c := headless.palette[index]
	return c.R, c.G, c.B
}

func screenBuffer() []byte { return headless.draw() }

func swapBuffers() []byte {
	if headless.double {
		headless.back ^= 1
	}
	return headless.draw()
}
