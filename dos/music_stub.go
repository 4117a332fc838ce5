//go:build !doslike

package dos

import "os"

type musicHandle = *headlessMusic

func loadMusic(f MusicFormat, path string) musicHandle {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil
	}
	return &headlessMusic{format: f, data: data}
}

func createMUS(data []byte) musicHandle {
	return &headlessMusic{format: FormatMUS, data: append([]byte(nil), data...)}
}

func playMusic(h musicHandle, loop bool, volume uint8) {
	headless.music = h
	headless.musicLoop = loop
	headless.musicVolume = volume
}

func stopMusic()          { headless.music = nil }
func musicPlaying() bool  { return headless.music != nil }
func musicVolume(v uint8) { headless.musicVolume = v }

func installUserSoundbank(path string) int {
	if !readable(path) {
		return 0
	}
	headless.banks++
	return headless.banks
}

func setSoundbank(id int) { headless.soundbank = id }

func noteOn(channel int, note, velocity uint8) {
	if headless.notes[channel] == nil {
		headless.notes[channel] = make(map[uint8]uint8)
	}
	headless.notes[channel][note] = velocity
}

func noteOff(channel int, note uint8) { delete(headless.notes[channel], note) }
func allNotesOff(channel int)         { clear(headless.notes[channel]) }

func setInstrument(channel int, instrument uint8) { headless.instruments[channel] = instrument }
