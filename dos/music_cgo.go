//go:build doslike

package dos

// #include <stdlib.h>
// #include "dos.h"
import "C"

import "unsafe"

const (
	nativeMusicChannels  = C.MUSIC_CHANNELS
	nativeSoundbankAWE32 = C.DEFAULT_SOUNDBANK_AWE32
	nativeSoundbankSB16  = C.DEFAULT_SOUNDBANK_SB16
)

type musicHandle = *C.struct_music_t

func loadMusic(f MusicFormat, path string) musicHandle {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	switch f {
	case FormatMID:
		return C.loadmid(cs)
	case FormatMUS:
		return C.loadmus(cs)
	case FormatMOD:
		return C.loadmod(cs)
	case FormatOPB:
		return C.loadopb(cs)
	}
	return nil
}

func createMUS(data []byte) musicHandle {
	// data is handed to the library and never freed.
	return C.createmus(C.CBytes(data), C.int(len(data)))
}

func playMusic(h musicHandle, loop bool, volume uint8) {
	C.playmusic(h, C.int(cbool(loop)), C.int(volume))
}

func stopMusic()          { C.stopmusic() }
func musicPlaying() bool  { return C.musicplaying() != 0 }
func musicVolume(v uint8) { C.musicvolume(C.int(v)) }

func installUserSoundbank(path string) int {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	return int(C.installusersoundbank(cs))
}

func setSoundbank(id int) { C.setsoundbank(C.int(id)) }

func noteOn(channel int, note, velocity uint8) {
	C.noteon(C.int(channel), C.int(note), C.int(velocity))
}

func noteOff(channel int, note uint8)             { C.noteoff(C.int(channel), C.int(note)) }
func allNotesOff(channel int)                     { C.allnotesoff(C.int(channel)) }
func setInstrument(channel int, instrument uint8) { C.setinstrument(C.int(channel), C.int(instrument)) }
