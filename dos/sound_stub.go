//go:build !doslike

package dos

import (
	"os"

	"github.com/go-audio/wav"
)

type soundHandle = *headlessSound

func setSoundMode(m SoundMode) { headless.soundMode = m }

func loadWAV(path string) soundHandle {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil || buf.Format == nil {
		return nil
	}
	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = to16(v, buf.SourceBitDepth)
	}
	return &headlessSound{channels: buf.Format.NumChannels, rate: buf.Format.SampleRate, samples: samples}
}

func createSound(channels, rate int, samples []int16) soundHandle {
	return &headlessSound{channels: channels, rate: rate, samples: append([]int16(nil), samples...)}
}

func playSound(channel int, h soundHandle, loop bool, volume uint8) {
	headless.channels[channel] = headlessChannel{sound: h, loop: loop, left: volume, right: volume}
}

func stopSound(channel int) { headless.channels[channel].sound = nil }

// A started sound plays until stopped.
func soundPlaying(channel int) bool { return headless.channels[channel].sound != nil }

func soundVolume(channel int, left, right uint8) {
	headless.channels[channel].left = left
	headless.channels[channel].right = right
}
