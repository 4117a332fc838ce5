package dos

import "math"

// Drawing functions only have an effect in graphics modes. Coordinates are
// in pixels and colors are palette indices.

func checkSource(src []byte, width, height, srcX, srcY, srcW, srcH int) error {
	switch {
	case width < 0 || height < 0 || width > math.MaxInt32 || height > math.MaxInt32:
		return ErrShortSource
	case width > 0 && height > len(src)/width:
		return ErrShortSource
	case srcX < 0 || srcY < 0 || srcW < 0 || srcH < 0:
		return ErrShortSource
	case srcW > width-srcX || srcH > height-srcY:
		return ErrShortSource
	}
	return nil
}

// Blit copies the srcW by srcH rectangle at (srcX, srcY) of the width by
// height image src to (x, y).
func Blit(x, y int, src []byte, width, height, srcX, srcY, srcW, srcH int) error {
	if err := checkSource(src, width, height, srcX, srcY, srcW, srcH); err != nil {
		return err
	}
	if srcW == 0 || srcH == 0 {
		return nil
	}
	blit(x, y, src, width, height, srcX, srcY, srcW, srcH)
	return nil
}

// MaskBlit is Blit that skips source pixels equal to colorKey.
func MaskBlit(x, y int, src []byte, width, height, srcX, srcY, srcW, srcH int, colorKey uint8) error {
	if err := checkSource(src, width, height, srcX, srcY, srcW, srcH); err != nil {
		return err
	}
	if srcW == 0 || srcH == 0 {
		return nil
	}
	maskBlit(x, y, src, width, height, srcX, srcY, srcW, srcH, colorKey)
	return nil
}

func ClearScreen()                 { clearScreen() }
func Pixel(x, y int) uint8         { return getPixel(x, y) }
func PutPixel(x, y int, c uint8)   { putPixel(x, y, c) }
func HLine(x, y, n int, c uint8)   { hLine(x, y, n, c) }
func SetColor(c uint8)             { setColor(c) }
func Color() uint8                 { return getColor() }
func Line(x1, y1, x2, y2 int)      { line(x1, y1, x2, y2) }
func Rectangle(x1, y1, x2, y2 int) { rectangle(x1, y1, x2, y2) }
func Bar(x1, y1, x2, y2 int)       { bar(x1, y1, x2, y2) }
func Circle(x, y, r int)           { circle(x, y, r) }
func FillCircle(x, y, r int)       { fillCircle(x, y, r) }
func Ellipse(x, y, rx, ry int)     { ellipse(x, y, rx, ry) }
func FillEllipse(x, y, rx, ry int) { fillEllipse(x, y, rx, ry) }
func FloodFill(x, y int)           { floodFill(x, y) }

// BoundaryFill fills from (x, y) up to pixels of color boundary.
func BoundaryFill(x, y int, boundary uint8) { boundaryFill(x, y, boundary) }

func checkPoints(points []int) error {
	if len(points) == 0 || len(points)%2 != 0 {
		return ErrBadPoints
	}
	return nil
}

// DrawPoly outlines the polygon given as a flat list of x, y pairs.
func DrawPoly(points []int) error {
	if err := checkPoints(points); err != nil {
		return err
	}
	drawPoly(points)
	return nil
}

// FillPoly fills the polygon given as a flat list of x, y pairs.
func FillPoly(points []int) error {
	if err := checkPoints(points); err != nil {
		return err
	}
	fillPoly(points)
	return nil
}

// OutTextXY draws text with the current font and color.
func OutTextXY(x, y int, text string) { outTextXY(x, y, cstr(text)) }

// WrapTextXY draws text, breaking lines before they pass width pixels.
func WrapTextXY(x, y int, text string, width int) { wrapTextXY(x, y, cstr(text), width) }

// CenterTextXY draws text centered within width pixels.
func CenterTextXY(x, y int, text string, width int) { centerTextXY(x, y, cstr(text), width) }
