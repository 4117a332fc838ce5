//go:build !doslike

package dos

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func TestSoundModes(t *testing.T) {
	modes := SoundModes()
	if len(modes) != 28 {
		t.Fatalf("%d sound modes, want 28", len(modes))
	}
	testCases := []struct {
		mode           SoundMode
		bits, ch, rate int
		name           string
	}{
		{Mono8Bit5000, 8, 1, 5000, "soundmode_8bit_mono_5000"},
		{Mono8Bit11025, 8, 1, 11025, "soundmode_8bit_mono_11025"},
		{Mono16Bit22050, 16, 1, 22050, "soundmode_16bit_mono_22050"},
		{Stereo8Bit32000, 8, 2, 32000, "soundmode_8bit_stereo_32000"},
		{Stereo16Bit44100, 16, 2, 44100, "soundmode_16bit_stereo_44100"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.mode.Bits() != tc.bits || tc.mode.Channels() != tc.ch || tc.mode.Rate() != tc.rate {
				t.Errorf("%v = %d bit, %d ch, %d Hz", tc.mode, tc.mode.Bits(), tc.mode.Channels(), tc.mode.Rate())
			}
			if tc.mode.String() != tc.name {
				t.Errorf("String() = %q, want %q", tc.mode.String(), tc.name)
			}
		})
	}
	if SoundMode(-1).Rate() != 0 {
		t.Error("invalid mode has a rate")
	}
}

func TestCreateSoundChecks(t *testing.T) {
	fresh(t)
	testCases := []struct {
		name     string
		channels int
		rate     int
		samples  []int16
		ok       bool
	}{
		{"mono", 1, 11025, []int16{1, 2, 3}, true},
		{"stereo", 2, 44100, []int16{1, 2, 3, 4}, true},
		{"no samples", 1, 11025, nil, false},
		{"odd stereo", 2, 44100, []int16{1, 2, 3}, false},
		{"three channels", 3, 44100, []int16{1, 2, 3}, false},
		{"zero rate", 1, 0, []int16{1}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := CreateSound(tc.channels, tc.rate, tc.samples)
			if tc.ok {
				if err != nil || s == nil {
					t.Fatalf("CreateSound = %v, %v", s, err)
				}
				if len(s.h.samples) != len(tc.samples) || s.h.channels != tc.channels {
					t.Errorf("sound holds %d samples on %d channels", len(s.h.samples), s.h.channels)
				}
				return
			}
			if !errors.Is(err, ErrBadSamples) {
				t.Errorf("CreateSound = %v, want ErrBadSamples", err)
			}
		})
	}
}

// TestCreateSoundCopies checks that the caller may reuse its buffer
func TestCreateSoundCopies(t *testing.T) {
	fresh(t)
	samples := []int16{5, 6}
	s, err := CreateSound(1, 8000, samples)
	if err != nil {
		t.Fatal(err)
	}
	samples[0] = 99
	if s.h.samples[0] != 5 {
		t.Error("sound shares the caller's sample buffer")
	}
}

// TestSoundChannels checks channel validation and playback state
func TestSoundChannels(t *testing.T) {
	fresh(t)
	s, err := CreateSound(1, 8000, []int16{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, ch := range []int{-1, SoundChannels} {
		if err := s.Play(ch, false, 255); !errors.Is(err, ErrChannel) {
			t.Errorf("Play(%d) = %v, want ErrChannel", ch, err)
		}
		if err := StopSound(ch); !errors.Is(err, ErrChannel) {
			t.Errorf("StopSound(%d) = %v, want ErrChannel", ch, err)
		}
		if err := SoundVolume(ch, 1, 1); !errors.Is(err, ErrChannel) {
			t.Errorf("SoundVolume(%d) = %v, want ErrChannel", ch, err)
		}
		if SoundPlaying(ch) {
			t.Errorf("SoundPlaying(%d) = true", ch)
		}
	}
	if err := PlaySound(0, nil, false, 255); !errors.Is(err, ErrBadSamples) {
		t.Errorf("PlaySound(nil) = %v", err)
	}

	if err := s.Play(SoundChannels-1, true, 128); err != nil {
		t.Fatal(err)
	}
	if !SoundPlaying(SoundChannels - 1) {
		t.Error("sound not playing after Play")
	}
	if err := SoundVolume(SoundChannels-1, 10, 20); err != nil {
		t.Fatal(err)
	}
	if c := headless.channels[SoundChannels-1]; c.left != 10 || c.right != 20 || !c.loop {
		t.Errorf("channel state = %+v", c)
	}
	StopSound(SoundChannels - 1)
	if SoundPlaying(SoundChannels - 1) {
		t.Error("sound playing after StopSound")
	}
}

func TestSetSoundMode(t *testing.T) {
	fresh(t)
	SetSoundMode(Stereo16Bit22050)
	if headless.soundMode != Stereo16Bit22050 {
		t.Errorf("sound mode = %v", headless.soundMode)
	}
	SetSoundMode(SoundMode(100))
	if headless.soundMode != Stereo16Bit22050 {
		t.Error("invalid sound mode was applied")
	}
}

func writeWAV(t *testing.T, path string, depth int, data []int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc := wav.NewEncoder(f, 8000, depth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           data,
		SourceBitDepth: depth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadWAV(t *testing.T) {
	fresh(t)
	path := filepath.Join(t.TempDir(), "beep.wav")
	writeWAV(t, path, 16, []int{0, 1000, -1000, 32767})

	s, err := LoadWAV(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []int16{0, 1000, -1000, 32767}
	if len(s.h.samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(s.h.samples), len(want))
	}
	for i := range want {
		if s.h.samples[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, s.h.samples[i], want[i])
		}
	}
	if s.h.rate != 8000 || s.h.channels != 1 {
		t.Errorf("format %d Hz %d ch", s.h.rate, s.h.channels)
	}
}

func TestDecodeWAV(t *testing.T) {
	fresh(t)
	path := filepath.Join(t.TempDir(), "beep.wav")
	writeWAV(t, path, 16, []int{-2, 2})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s, err := DecodeWAV(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.h.samples) != 2 || s.h.samples[0] != -2 {
		t.Errorf("samples = %v", s.h.samples)
	}

	if _, err := DecodeWAV(bytes.NewReader([]byte("RIFF but not really"))); !errors.Is(err, ErrBadSamples) {
		t.Errorf("DecodeWAV(garbage) = %v, want ErrBadSamples", err)
	}
}

func TestCreateSoundBufferChecks(t *testing.T) {
	fresh(t)
	if _, err := CreateSoundBuffer(nil); !errors.Is(err, ErrBadSamples) {
		t.Errorf("CreateSoundBuffer(nil) = %v", err)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 11025},
		Data:           []int{0, 255, 128, 128},
		SourceBitDepth: 8,
	}
	s, err := CreateSoundBuffer(buf)
	if err != nil {
		t.Fatal(err)
	}
	want := []int16{-32768, 32512, 0, 0}
	for i := range want {
		if s.h.samples[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, s.h.samples[i], want[i])
		}
	}
}

func TestTo16(t *testing.T) {
	testCases := []struct {
		v, depth int
		want     int16
	}{
		{128, 8, 0},
		{0, 8, -32768},
		{-1234, 16, -1234},
		{0x7fffff, 24, 0x7fff},
		{-0x800000, 24, -0x8000},
		{0x7fffffff, 32, 0x7fff},
		{70000, 16, 32767},
		{-70000, 0, -32768},
	}
	for _, tc := range testCases {
		if got := to16(tc.v, tc.depth); got != tc.want {
			t.Errorf("to16(%d, %d) = %d, want %d", tc.v, tc.depth, got, tc.want)
		}
	}
}

func TestDecodeMP3Garbage(t *testing.T) {
	if _, err := DecodeMP3(bytes.NewReader([]byte{1, 2, 3})); err == nil {
		t.Error("DecodeMP3 accepted garbage")
	}
}
