package dos

import (
	"fmt"
	"os"
	"strconv"
)

// MusicChannels is the number of MIDI channels reachable with NoteOn.
const MusicChannels = 16

// MusicFormat names the song formats the library plays.
type MusicFormat int

const (
	FormatMID MusicFormat = iota
	FormatMUS
	FormatMOD
	FormatOPB
)

var musicFormats = [...]struct{ name, ext, op string }{
	FormatMID: {"MID", ".mid", "loadmid"},
	FormatMUS: {"MUS", ".mus", "loadmus"},
	FormatMOD: {"MOD", ".mod", "loadmod"},
	FormatOPB: {"OPB", ".opb", "loadopb"},
}

func (f MusicFormat) valid() bool { return f >= 0 && int(f) < len(musicFormats) }

func (f MusicFormat) String() string {
	if !f.valid() {
		return "MusicFormat(" + strconv.Itoa(int(f)) + ")"
	}
	return musicFormats[f].name
}

// Ext returns the file extension of the format, with the leading dot.
func (f MusicFormat) Ext() string {
	if !f.valid() {
		return ""
	}
	return musicFormats[f].ext
}

// Music is a loaded song. The library keeps it for the lifetime of the
// program.
type Music struct {
	h musicHandle
}

func loadMusicFile(f MusicFormat, path string) (*Music, error) {
	op := musicFormats[f].op
	if err := checkPath(op, path); err != nil {
		return nil, err
	}
	h := loadMusic(f, path)
	if h == nil {
		return nil, notFound(op, path)
	}
	return &Music{h: h}, nil
}

// LoadMID loads a standard MIDI file.
func LoadMID(path string) (*Music, error) { return loadMusicFile(FormatMID, path) }

// LoadMUS loads a DMX MUS song, as used by Doom.
func LoadMUS(path string) (*Music, error) { return loadMusicFile(FormatMUS, path) }

// LoadMOD loads a tracker module.
func LoadMOD(path string) (*Music, error) { return loadMusicFile(FormatMOD, path) }

// LoadOPB loads an OPL register capture.
func LoadOPB(path string) (*Music, error) { return loadMusicFile(FormatOPB, path) }

// CreateMUS makes a song from MUS data in memory. The data is copied and
// never freed.
func CreateMUS(data []byte) (*Music, error) {
	if len(data) == 0 {
		return nil, ErrBadMusic
	}
	h := createMUS(data)
	if h == nil {
		return nil, ErrBadMusic
	}
	return &Music{h: h}, nil
}

// LoadMusicData loads a song of format f from memory. Formats the library
// only reads from disk go through a temporary file.
func LoadMusicData(f MusicFormat, data []byte) (*Music, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: format %d", ErrBadMusic, int(f))
	}
	if f == FormatMUS {
		return CreateMUS(data)
	}
	if len(data) == 0 {
		return nil, ErrBadMusic
	}
	tmp, err := os.CreateTemp("", "godos-*"+f.Ext())
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}
	m, err := loadMusicFile(f, tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: %s data not accepted", ErrBadMusic, f)
	}
	return m, nil
}

// Play is PlayMusic.
func (m *Music) Play(loop bool, volume uint8) { PlayMusic(m, loop, volume) }

// PlayMusic starts m, replacing the current song.
func PlayMusic(m *Music, loop bool, volume uint8) {
	if m == nil || m.h == nil {
		return
	}
	playMusic(m.h, loop, volume)
}

func StopMusic()          { stopMusic() }
func MusicPlaying() bool  { return musicPlaying() }
func MusicVolume(v uint8) { musicVolume(v) }

// Soundbank identifies the instruments used for MIDI and MUS playback.
type Soundbank int

const (
	SoundbankAWE32 Soundbank = 1
	SoundbankSB16  Soundbank = 2
)

// InstallUserSoundbank loads an SF2 or OP2 soundbank.
func InstallUserSoundbank(path string) (Soundbank, error) {
	if err := checkPath("installusersoundbank", path); err != nil {
		return 0, err
	}
	id := installUserSoundbank(path)
	if id == 0 {
		return 0, notFound("installusersoundbank", path)
	}
	return Soundbank(id), nil
}

func SetSoundbank(b Soundbank) { setSoundbank(int(b)) }

// Set is SetSoundbank.
func (b Soundbank) Set() { setSoundbank(int(b)) }

func NoteOn(channel int, note, velocity uint8) error {
	if err := checkChannel(channel, MusicChannels); err != nil {
		return err
	}
	noteOn(channel, note, velocity)
	return nil
}

func NoteOff(channel int, note uint8) error {
	if err := checkChannel(channel, MusicChannels); err != nil {
		return err
	}
	noteOff(channel, note)
	return nil
}

func AllNotesOff(channel int) error {
	if err := checkChannel(channel, MusicChannels); err != nil {
		return err
	}
	allNotesOff(channel)
	return nil
}

func SetInstrument(channel int, instrument uint8) error {
	if err := checkChannel(channel, MusicChannels); err != nil {
		return err
	}
	setInstrument(channel, instrument)
	return nil
}
