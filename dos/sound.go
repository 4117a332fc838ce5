package dos

import (
	"fmt"
	"strconv"
)

// SoundChannels is the number of sound effect channels.
const SoundChannels = 16

// SoundMode selects the sample format and rate of the mixer output.
type SoundMode int

const (
	Mono8Bit5000 SoundMode = iota
	Mono8Bit8000
	Mono8Bit11025
	Mono8Bit16000
	Mono8Bit22050
	Mono8Bit32000
	Mono8Bit44100
	Mono16Bit5000
	Mono16Bit8000
	Mono16Bit11025
	Mono16Bit16000
	Mono16Bit22050
	Mono16Bit32000
	Mono16Bit44100
	Stereo8Bit5000
	Stereo8Bit8000
	Stereo8Bit11025
	Stereo8Bit16000
	Stereo8Bit22050
	Stereo8Bit32000
	Stereo8Bit44100
	Stereo16Bit5000
	Stereo16Bit8000
	Stereo16Bit11025
	Stereo16Bit16000
	Stereo16Bit22050
	Stereo16Bit32000
	Stereo16Bit44100

	soundModeCount
)

// DefaultSoundMode is the mode active when Run calls the program.
const DefaultSoundMode = Mono8Bit11025

type soundModeInfo struct {
	name           string
	bits, channels int
	rate           int
}

var soundModes = [soundModeCount]soundModeInfo{
	Mono8Bit5000:     {"soundmode_8bit_mono_5000", 8, 1, 5000},
	Mono8Bit8000:     {"soundmode_8bit_mono_8000", 8, 1, 8000},
	Mono8Bit11025:    {"soundmode_8bit_mono_11025", 8, 1, 11025},
	Mono8Bit16000:    {"soundmode_8bit_mono_16000", 8, 1, 16000},
	Mono8Bit22050:    {"soundmode_8bit_mono_22050", 8, 1, 22050},
	Mono8Bit32000:    {"soundmode_8bit_mono_32000", 8, 1, 32000},
	Mono8Bit44100:    {"soundmode_8bit_mono_44100", 8, 1, 44100},
	Mono16Bit5000:    {"soundmode_16bit_mono_5000", 16, 1, 5000},
	Mono16Bit8000:    {"soundmode_16bit_mono_8000", 16, 1, 8000},
	Mono16Bit11025:   {"soundmode_16bit_mono_11025", 16, 1, 11025},
	Mono16Bit16000:   {"soundmode_16bit_mono_16000", 16, 1, 16000},
	Mono16Bit22050:   {"soundmode_16bit_mono_22050", 16, 1, 22050},
	Mono16Bit32000:   {"soundmode_16bit_mono_32000", 16, 1, 32000},
	Mono16Bit44100:   {"soundmode_16bit_mono_44100", 16, 1, 44100},
	Stereo8Bit5000:   {"soundmode_8bit_stereo_5000", 8, 2, 5000},
	Stereo8Bit8000:   {"soundmode_8bit_stereo_8000", 8, 2, 8000},
	Stereo8Bit11025:  {"soundmode_8bit_stereo_11025", 8, 2, 11025},
	Stereo8Bit16000:  {"soundmode_8bit_stereo_16000", 8, 2, 16000},
	Stereo8Bit22050:  {"soundmode_8bit_stereo_22050", 8, 2, 22050},
	Stereo8Bit32000:  {"soundmode_8bit_stereo_32000", 8, 2, 32000},
	Stereo8Bit44100:  {"soundmode_8bit_stereo_44100", 8, 2, 44100},
	Stereo16Bit5000:  {"soundmode_16bit_stereo_5000", 16, 2, 5000},
	Stereo16Bit8000:  {"soundmode_16bit_stereo_8000", 16, 2, 8000},
	Stereo16Bit11025: {"soundmode_16bit_stereo_11025", 16, 2, 11025},
	Stereo16Bit16000: {"soundmode_16bit_stereo_16000", 16, 2, 16000},
	Stereo16Bit22050: {"soundmode_16bit_stereo_22050", 16, 2, 22050},
	Stereo16Bit32000: {"soundmode_16bit_stereo_32000", 16, 2, 32000},
	Stereo16Bit44100: {"soundmode_16bit_stereo_44100", 16, 2, 44100},
}

// SoundModes lists every sound mode.
func SoundModes() []SoundMode {
	modes := make([]SoundMode, soundModeCount)
	for i := range modes {
		modes[i] = SoundMode(i)
	}
	return modes
}

func (m SoundMode) valid() bool { return m >= 0 && m < soundModeCount }

func (m SoundMode) String() string {
	if !m.valid() {
		return "SoundMode(" + strconv.Itoa(int(m)) + ")"
	}
	return soundModes[m].name
}

// Bits returns the sample size, 8 or 16.
func (m SoundMode) Bits() int {
	if !m.valid() {
		return 0
	}
	return soundModes[m].bits
}

// Channels returns 1 for mono and 2 for stereo.
func (m SoundMode) Channels() int {
	if !m.valid() {
		return 0
	}
	return soundModes[m].channels
}

// Rate returns the sample rate in Hz.
func (m SoundMode) Rate() int {
	if !m.valid() {
		return 0
	}
	return soundModes[m].rate
}

// SetSoundMode changes the mixer output format.
func SetSoundMode(m SoundMode) {
	if !m.valid() {
		logger.Debug("unknown sound mode", "mode", int(m))
		return
	}
	setSoundMode(m)
}

// Sound is a sample loaded into the mixer. The library keeps it for the
// lifetime of the program.
type Sound struct {
	h soundHandle
}

// LoadWAV loads a sound from a WAV file.
func LoadWAV(path string) (*Sound, error) {
	if err := checkPath("loadwav", path); err != nil {
		return nil, err
	}
	h := loadWAV(path)
	if h == nil {
		return nil, notFound("loadwav", path)
	}
	return &Sound{h: h}, nil
}

// CreateSound makes a sound from interleaved 16-bit samples. The samples
// are copied.
func CreateSound(channels, rate int, samples []int16) (*Sound, error) {
	switch {
	case channels != 1 && channels != 2:
		return nil, fmt.Errorf("%w: %d channels", ErrBadSamples, channels)
	case rate <= 0:
		return nil, fmt.Errorf("%w: sample rate %d", ErrBadSamples, rate)
	case len(samples) == 0 || len(samples)%channels != 0:
		return nil, fmt.Errorf("%w: %d samples for %d channels", ErrBadSamples, len(samples), channels)
	}
	h := createSound(channels, rate, samples)
	if h == nil {
		return nil, ErrBadSamples
	}
	return &Sound{h: h}, nil
}

// Play is PlaySound on channel.
func (s *Sound) Play(channel int, loop bool, volume uint8) error {
	return PlaySound(channel, s, loop, volume)
}

// PlaySound starts s on channel, replacing whatever played there.
func PlaySound(channel int, s *Sound, loop bool, volume uint8) error {
	if err := checkChannel(channel, SoundChannels); err != nil {
		return err
	}
	if s == nil || s.h == nil {
		return ErrBadSamples
	}
	playSound(channel, s.h, loop, volume)
	return nil
}

func StopSound(channel int) error {
	if err := checkChannel(channel, SoundChannels); err != nil {
		return err
	}
	stopSound(channel)
	return nil
}

// SoundPlaying reports whether channel is playing. Out of range channels
// never play.
func SoundPlaying(channel int) bool {
	if checkChannel(channel, SoundChannels) != nil {
		return false
	}
	return soundPlaying(channel)
}

func SoundVolume(channel int, left, right uint8) error {
	if err := checkChannel(channel, SoundChannels); err != nil {
		return err
	}
	soundVolume(channel, left, right)
	return nil
}
