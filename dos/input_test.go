//go:build !doslike

package dos

import (
	"strconv"
	"testing"
)

// TestReadKeysDrains checks that events are returned once, in order
func TestReadKeysDrains(t *testing.T) {
	fresh(t)
	pushKey(KeyEvent{Key: KeyA})
	pushKey(KeyEvent{Key: KeyA, Released: true})
	pushKey(KeyEvent{Key: KeyEscape})

	got := ReadKeys()
	want := []KeyEvent{{KeyA, false}, {KeyA, true}, {KeyEscape, false}}
	if len(got) != len(want) {
		t.Fatalf("ReadKeys returned %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	if again := ReadKeys(); len(again) != 0 {
		t.Errorf("second ReadKeys returned %v, want nothing", again)
	}
}

func TestKeyState(t *testing.T) {
	fresh(t)
	pushKey(KeyEvent{Key: KeySpace})
	if !KeyState(KeySpace) {
		t.Error("KeySpace not held after press")
	}
	pushKey(KeyEvent{Key: KeySpace, Released: true})
	if KeyState(KeySpace) {
		t.Error("KeySpace held after release")
	}
	if KeyState(KeyCount + 10) {
		t.Error("out of range key reported held")
	}
}

// TestReadText checks the code page 437 decoding of typed characters
func TestReadText(t *testing.T) {
	fresh(t)
	pushChars([]byte{'d', 'o', 's', 0x82, 0xe1})
	if got, want := ReadText(), "doséß"; got != want {
		t.Errorf("ReadText = %q, want %q", got, want)
	}
	if got := ReadText(); got != "" {
		t.Errorf("ReadText after drain = %q, want empty", got)
	}
}

func TestReadChars(t *testing.T) {
	fresh(t)
	pushChars([]byte("hi"))
	if got := string(ReadChars()); got != "hi" {
		t.Errorf("ReadChars = %q, want %q", got, "hi")
	}
}

func TestKeyString(t *testing.T) {
	testCases := []struct {
		key  Key
		want string
	}{
		{KeyInvalid, "KEY_INVALID"},
		{KeyEscape, "KEY_ESCAPE"},
		{Key0, "KEY_0"},
		{KeyZ, "KEY_Z"},
		{KeyNumpad7, "KEY_NUMPAD7"},
		{KeyF24, "KEY_F24"},
		{KeyOEMPlus, "KEY_OEM_PLUS"},
		{KeyOEMClear, "KEY_OEM_CLEAR"},
		{KeyCount, "Key(" + strconv.Itoa(int(KeyCount)) + ")"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.key.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

// TestKeyNamesComplete checks that every key below KeyCount has a name
func TestKeyNamesComplete(t *testing.T) {
	seen := make(map[string]Key)
	for k := KeyInvalid; k < KeyCount; k++ {
		name := k.String()
		if name == "" {
			t.Errorf("key %d has no name", k)
			continue
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("keys %d and %d share the name %s", prev, k, name)
		}
		seen[name] = k
	}
}

func TestKeyEventString(t *testing.T) {
	if got := (KeyEvent{Key: KeyA}).String(); got != "KEY_A pressed" {
		t.Errorf("String() = %q", got)
	}
	e := KeyEvent{Key: KeyA, Released: true}
	if e.Pressed() || e.String() != "KEY_A released" {
		t.Errorf("released event = %v, Pressed() = %v", e, e.Pressed())
	}
}
