//go:build !doslike

package dos

func (s *headlessState) inside(x, y int) bool {
	w, h := s.mode.Resolution()
	return s.mode.IsGraphics() && x >= 0 && y >= 0 && x < w && y < h
}

func (s *headlessState) plot(x, y int, c uint8) {
	if s.inside(x, y) {
		w, _ := s.mode.Resolution()
		s.draw()[y*w+x] = c
	}
}

func blit(x, y int, src []byte, width, height, srcX, srcY, srcW, srcH int) {
	for j := 0; j < srcH; j++ {
		for i := 0; i < srcW; i++ {
			headless.plot(x+i, y+j, src[(srcY+j)*width+srcX+i])
		}
	}
}

func maskBlit(x, y int, src []byte, width, height, srcX, srcY, srcW, srcH int, colorKey uint8) {
	for j := 0; j < srcH; j++ {
		for i := 0; i < srcW; i++ {
			if c := src[(srcY+j)*width+srcX+i]; c != colorKey {
				headless.plot(x+i, y+j, c)
			}
		}
	}
}

func clearScreen() {
	clear(headless.draw())
}

func getPixel(x, y int) uint8 {
	if !headless.inside(x, y) {
		return 0
	}
	w, _ := headless.mode.Resolution()
	return headless.draw()[y*w+x]
}

func putPixel(x, y int, c uint8) { headless.plot(x, y, c) }

func hLine(x, y, n int, c uint8) {
	for i := 0; i < n; i++ {
		headless.plot(x+i, y, c)
	}
}

func setColor(c uint8) { headless.color = c }
func getColor() uint8  { return headless.color }

func line(x1, y1, x2, y2 int)      {}
func rectangle(x1, y1, x2, y2 int) {}
func bar(x1, y1, x2, y2 int)       {}
func circle(x, y, r int)           {}
func fillCircle(x, y, r int)       {}
func ellipse(x, y, rx, ry int)     {}
func fillEllipse(x, y, rx, ry int) {}
func drawPoly(points []int)        {}
func fillPoly(points []int)        {}
func floodFill(x, y int)           {}

func boundaryFill(x, y int, boundary uint8)         {}
func outTextXY(x, y int, text string)               {}
func wrapTextXY(x, y int, text string, width int)   {}
func centerTextXY(x, y int, text string, width int) {}
