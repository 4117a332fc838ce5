//go:build !doslike

package dos

import "os"

func loadGIF(path string) *Image {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	m, err := DecodeGIF(f)
	if err != nil {
		logger.Debug("gif decode failed", "path", path, "err", err)
		return nil
	}
	return m
}
