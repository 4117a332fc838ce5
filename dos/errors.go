package dos

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrBadPath        = errors.New("dos: invalid file path")
	ErrNotFound       = errors.New("dos: file not found or not loadable")
	ErrChannel        = errors.New("dos: channel out of range")
	ErrPaletteIndex   = errors.New("dos: palette index out of range")
	ErrShortSource    = errors.New("dos: source buffer too small")
	ErrBadPoints      = errors.New("dos: point list must be non-empty and even")
	ErrBadSamples     = errors.New("dos: invalid sample data")
	ErrBadMusic       = errors.New("dos: invalid music data")
	ErrNotGraphics    = errors.New("dos: not in a graphics mode")
	ErrScreenBusy     = errors.New("dos: screen already acquired")
	ErrScreenReleased = errors.New("dos: screen handle released")
)

// FileError records a failed load and the path that caused it.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Op + " " + strconv.Quote(e.Path) + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error { return e.Err }

// checkPath rejects paths that cannot cross the boundary as C strings.
func checkPath(op, path string) error {
	if strings.IndexByte(path, 0) >= 0 {
		logger.Debug("rejected path", "op", op, "path", path)
		return &FileError{Op: op, Path: path, Err: ErrBadPath}
	}
	return nil
}

func notFound(op, path string) error {
	logger.Debug("load failed", "op", op, "path", path)
	return &FileError{Op: op, Path: path, Err: ErrNotFound}
}

// cstr cuts s at the first NUL, which is where C stops reading.
func cstr(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

func checkChannel(ch, max int) error {
	if ch < 0 || ch >= max {
		return ErrChannel
	}
	return nil
}
