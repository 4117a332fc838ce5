package dos

// Text mode output. Strings end at their first NUL byte.

// PutStr writes s at the cursor and advances it.
func PutStr(s string) { cputs(cstr(s)) }

func TextColor(c int)      { textColor(c) }
func TextBackground(c int) { textBackground(c) }
func GotoXY(x, y int)      { gotoXY(x, y) }
func WhereX() int          { return whereX() }
func WhereY() int          { return whereY() }
func ClrScr()              { clrScr() }
func CursOn()              { cursOn() }
func CursOff()             { cursOff() }

// Font identifies a font usable with SetTextStyle.
type Font int

const (
	DefaultFont8x8  Font = 1
	DefaultFont8x16 Font = 2
	DefaultFont9x16 Font = 3
)

// InstallUserFont loads a .fnt file.
func InstallUserFont(path string) (Font, error) {
	if err := checkPath("installuserfont", path); err != nil {
		return 0, err
	}
	id := installUserFont(path)
	if id == 0 {
		return 0, notFound("installuserfont", path)
	}
	return Font(id), nil
}

// SetTextStyle selects the font and style used by the graphics text
// functions.
func SetTextStyle(f Font, bold, italic, underline bool) {
	setTextStyle(int(f), bold, italic, underline)
}
