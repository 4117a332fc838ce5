package dos

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// DecodeWAV reads a PCM WAV stream into a new sound.
func DecodeWAV(r io.ReadSeeker) (*Sound, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a PCM WAV stream", ErrBadSamples)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	return CreateSoundBuffer(buf)
}

// DecodeMP3 reads an MP3 stream into a new 16-bit stereo sound.
func DecodeMP3(r io.Reader) (*Sound, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	// Always 16-bit little endian, two channels.
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(uint16(data[2*i]) | uint16(data[2*i+1])<<8)
	}
	return CreateSound(2, dec.SampleRate(), samples)
}

// LoadMP3 is DecodeMP3 for a file.
func LoadMP3(path string) (*Sound, error) {
	if err := checkPath("loadmp3", path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, notFound("loadmp3", path)
	}
	defer f.Close()
	return DecodeMP3(f)
}

// CreateSoundBuffer makes a sound from decoded PCM, scaling the samples to
// 16 bits.
func CreateSoundBuffer(buf *audio.IntBuffer) (*Sound, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: missing format", ErrBadSamples)
	}
	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = to16(v, buf.SourceBitDepth)
	}
	return CreateSound(buf.Format.NumChannels, buf.Format.SampleRate, samples)
}

func to16(v, depth int) int16 {
	switch depth {
	case 8:
		// 8-bit PCM is unsigned.
		v = (v - 128) << 8
	case 24:
		v >>= 8
	case 32:
		v >>= 16
	}
	return int16(max(math.MinInt16, min(math.MaxInt16, v)))
}
