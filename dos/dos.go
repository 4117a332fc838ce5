// Package dos binds dos-like, a C framework for writing programs that look
// and sound like MS-DOS software from the early 1990s.
//
// Build with -tags doslike to link the native library; cmd/godos sets the
// tags and the cgo flags. Without the tag the package runs on a headless
// backend that keeps the library state in memory and opens no window.
//
// All functions must be called from the function passed to Run.
package dos

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger installs l as the destination for the package's debug records.
// A nil logger discards them.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

// Run starts the library and calls app as its main function. It must be
// called from main and returns the error returned by app.
func Run(app func() error) error {
	invalidateScreen()
	return run(app)
}

// WaitVBL blocks until the next vertical blank.
func WaitVBL() { waitVBL() }

// ShuttingDown reports whether the window was closed.
func ShuttingDown() bool { return shuttingDown() }

func cbool(b bool) int {
	if b {
		return 1
	}
	return 0
}
