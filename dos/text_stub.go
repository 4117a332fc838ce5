//go:build !doslike

package dos

import "os"

// cputs moves the cursor as if s was printed, wrapping at the last column.
func cputs(s string) {
	cols, rows := headless.mode.TextSize()
	if cols == 0 {
		return
	}
	for _, c := range []byte(s) {
		if c != '\n' {
			headless.cursorX++
		}
		if c == '\n' || headless.cursorX >= cols {
			headless.cursorX = 0
			headless.cursorY++
		}
	}
	headless.cursorY = min(headless.cursorY, rows-1)
}

func textColor(c int)      { headless.textFG = c }
func textBackground(c int) { headless.textBG = c }

func gotoXY(x, y int) {
	headless.cursorX, headless.cursorY = x, y
}

func whereX() int { return headless.cursorX }
func whereY() int { return headless.cursorY }

func clrScr() {
	headless.cursorX, headless.cursorY = 0, 0
}

func cursOn()  { headless.cursor = true }
func cursOff() { headless.cursor = false }

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func installUserFont(path string) int {
	if !readable(path) {
		return 0
	}
	headless.fonts++
	return headless.fonts
}

func setTextStyle(font int, bold, italic, underline bool) { headless.font = font }
