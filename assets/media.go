package assets

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/drpaneas/godos/dos"
)

var musicFormats = map[string]dos.MusicFormat{
	".mid": dos.FormatMID,
	".mus": dos.FormatMUS,
	".mod": dos.FormatMOD,
	".opb": dos.FormatOPB,
}

// GIF decodes the GIF image name.
func (p *Pack) GIF(name string) (*dos.Image, error) {
	data, err := p.ReadFile(name)
	if err != nil {
		return nil, err
	}
	img, err := dos.DecodeGIF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

// Sound decodes the WAV or MP3 file name.
func (p *Pack) Sound(name string) (*dos.Sound, error) {
	data, err := p.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var s *dos.Sound
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		s, err = dos.DecodeMP3(bytes.NewReader(data))
	default:
		s, err = dos.DecodeWAV(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

// Music loads the song name, choosing the format from its extension.
func (p *Pack) Music(name string) (*dos.Music, error) {
	f, ok := musicFormats[strings.ToLower(path.Ext(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	data, err := p.ReadFile(name)
	if err != nil {
		return nil, err
	}
	m, err := dos.LoadMusicData(f, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}
