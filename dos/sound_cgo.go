//go:build doslike

package dos

// #include <stdlib.h>
// #include "dos.h"
import "C"

import "unsafe"

const nativeSoundChannels = C.SOUND_CHANNELS

var nativeSoundModes = [soundModeCount]C.enum_soundmode_t{
	Mono8Bit5000:     C.soundmode_8bit_mono_5000,
	Mono8Bit8000:     C.soundmode_8bit_mono_8000,
	Mono8Bit11025:    C.soundmode_8bit_mono_11025,
	Mono8Bit16000:    C.soundmode_8bit_mono_16000,
	Mono8Bit22050:    C.soundmode_8bit_mono_22050,
	Mono8Bit32000:    C.soundmode_8bit_mono_32000,
	Mono8Bit44100:    C.soundmode_8bit_mono_44100,
	Mono16Bit5000:    C.soundmode_16bit_mono_5000,
	Mono16Bit8000:    C.soundmode_16bit_mono_8000,
	Mono16Bit11025:   C.soundmode_16bit_mono_11025,
	Mono16Bit16000:   C.soundmode_16bit_mono_16000,
	Mono16Bit22050:   C.soundmode_16bit_mono_22050,
	Mono16Bit32000:   C.soundmode_16bit_mono_32000,
	Mono16Bit44100:   C.soundmode_16bit_mono_44100,
	Stereo8Bit5000:   C.soundmode_8bit_stereo_5000,
	Stereo8Bit8000:   C.soundmode_8bit_stereo_8000,
	Stereo8Bit11025:  C.soundmode_8bit_stereo_11025,
	Stereo8Bit16000:  C.soundmode_8bit_stereo_16000,
	Stereo8Bit22050:  C.soundmode_8bit_stereo_22050,
	Stereo8Bit32000:  C.soundmode_8bit_stereo_32000,
	Stereo8Bit44100:  C.soundmode_8bit_stereo_44100,
	Stereo16Bit5000:  C.soundmode_16bit_stereo_5000,
	Stereo16Bit8000:  C.soundmode_16bit_stereo_8000,
	Stereo16Bit11025: C.soundmode_16bit_stereo_11025,
	Stereo16Bit16000: C.soundmode_16bit_stereo_16000,
	Stereo16Bit22050: C.soundmode_16bit_stereo_22050,
	Stereo16Bit32000: C.soundmode_16bit_stereo_32000,
	Stereo16Bit44100: C.soundmode_16bit_stereo_44100,
}

type soundHandle = *C.struct_sound_t

func setSoundMode(m SoundMode) { C.setsoundmode(nativeSoundModes[m]) }

func loadWAV(path string) soundHandle {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	return C.loadwav(cs)
}

func createSound(channels, rate int, samples []int16) soundHandle {
	frames := len(samples) / channels
	return C.createsound(C.int(channels), C.int(rate), C.int(frames), (*C.short)(unsafe.Pointer(&samples[0])))
}

func playSound(channel int, h soundHandle, loop bool, volume uint8) {
	C.playsound(C.int(channel), h, C.int(cbool(loop)), C.int(volume))
}

func stopSound(channel int)         { C.stopsound(C.int(channel)) }
func soundPlaying(channel int) bool { return C.soundplaying(C.int(channel)) != 0 }

func soundVolume(channel int, left, right uint8) {
	C.soundvolume(C.int(channel), C.int(left), C.int(right))
}
