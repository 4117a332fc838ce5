//go:build !doslike

package dos

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// fresh resets the headless backend as Run does.
func fresh(t *testing.T) {
	t.Helper()
	if err := Run(func() error { return nil }); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func pushKey(e KeyEvent) {
	headless.held[e.Key] = !e.Released
	headless.keys = append(headless.keys, e)
}

func pushChars(b []byte) {
	headless.chars = append(headless.chars, b...)
}

// TestRunReturnsAppError checks that the app's error comes back from Run
func TestRunReturnsAppError(t *testing.T) {
	want := errTest("boom")
	if err := Run(func() error { return want }); err != want {
		t.Errorf("Run = %v, want %v", err, want)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

// TestRunResetsState checks that Run starts from the default modes
func TestRunResetsState(t *testing.T) {
	fresh(t)
	SetVideoMode(Graphics320x200)
	SetSoundMode(Stereo16Bit44100)
	fresh(t)

	if m := CurrentVideoMode(); m != DefaultVideoMode {
		t.Errorf("CurrentVideoMode = %v, want %v", m, DefaultVideoMode)
	}
	if headless.soundMode != DefaultSoundMode {
		t.Errorf("sound mode = %v, want %v", headless.soundMode, DefaultSoundMode)
	}
	if ShuttingDown() {
		t.Error("ShuttingDown = true after Run")
	}
}

func TestWaitVBLCountsFrames(t *testing.T) {
	fresh(t)
	for i := 0; i < 3; i++ {
		WaitVBL()
	}
	if headless.frames != 3 {
		t.Errorf("frames = %d, want 3", headless.frames)
	}
}

func TestSetLoggerReceivesLoadFailures(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if _, err := LoadGIF("no/such/file.gif"); err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(buf.String(), "load failed") {
		t.Errorf("log = %q, want a load failed record", buf.String())
	}
}
