// Package assets loads the data files of a program from a directory, a
// single file or a ZIP, 7z, RAR or gzip archive, so that GIFs, sounds and
// songs can be shipped as one bundle.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Magic bytes for format detection
var (
	magicZIP    = []byte{0x50, 0x4B, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4B, 0x05, 0x06} // empty zip
	magic7z     = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}
	magicGzip   = []byte{0x1F, 0x8B}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21} // "Rar!"
)

// MaxFileSize bounds every file read into a pack.
const MaxFileSize = 32 * 1024 * 1024

// ErrNoFile is returned when a name is not in the pack
var ErrNoFile = errors.New("assets: file not found")

// ErrUnsupportedFormat is returned for unrecognized archive formats
var ErrUnsupportedFormat = errors.New("assets: unsupported file format")

// ErrFileTooLarge is returned when a file exceeds MaxFileSize
var ErrFileTooLarge = errors.New("assets: file exceeds maximum size limit")

type formatType int

const (
	formatUnknown formatType = iota
	formatDir
	formatRaw
	formatZIP
	format7z
	formatGzip
	formatRAR
)

// Pack holds the files of one bundle in memory. Names are slash separated
// and matched without regard to case, as DOS did.
type Pack struct {
	source string
	names  []string
	files  map[string][]byte
}

func newPack(source string) *Pack {
	return &Pack{source: source, files: make(map[string][]byte)}
}

func key(name string) string {
	return strings.ToLower(path.Clean(strings.TrimPrefix(filepath.ToSlash(name), "/")))
}

func (p *Pack) add(name string, data []byte) {
	k := key(name)
	if _, ok := p.files[k]; !ok {
		p.names = append(p.names, path.Clean(filepath.ToSlash(name)))
	}
	p.files[k] = data
}

// Open reads every file of the bundle at src.
func Open(src string) (*Pack, error) {
	fi, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle: %w", err)
	}
	if fi.IsDir() {
		return openDir(src)
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle: %w", err)
	}
	defer f.Close()

	// Read header for magic byte detection
	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	switch detectFormat(header[:n], src) {
	case formatZIP:
		return openZIP(src)
	case format7z:
		return open7z(src)
	case formatGzip:
		return openGzip(src)
	case formatRAR:
		return openRAR(src)
	case formatRaw:
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to seek file: %w", err)
		}
		data, err := limitedRead(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", src, err)
		}
		p := newPack(src)
		p.add(filepath.Base(src), data)
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, src)
}

// detectFormat determines the bundle format based on magic bytes and
// extension. Anything else is a single raw file.
func detectFormat(header []byte, name string) formatType {
	if len(header) >= 4 {
		if bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEnd) {
			return formatZIP
		}
		if bytes.HasPrefix(header, magicRAR) {
			return formatRAR
		}
	}
	if len(header) >= 6 && bytes.HasPrefix(header, magic7z) {
		return format7z
	}
	if len(header) >= 2 && bytes.HasPrefix(header, magicGzip) {
		return formatGzip
	}

	// Archive extension without the matching header: corrupt
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zip", ".7z", ".gz", ".tgz", ".rar":
		return formatUnknown
	}
	return formatRaw
}

func openDir(root string) (*Pack, error) {
	p := newPack(root)
	err := filepath.WalkDir(root, func(name string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, name)
		if err != nil {
			return err
		}
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		data, err := limitedRead(f)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rel, err)
		}
		p.add(rel, data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// limitedRead reads from r up to MaxFileSize bytes, returning an error if exceeded
func limitedRead(r io.Reader) ([]byte, error) {
	lr := io.LimitReader(r, MaxFileSize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// Source returns the path the pack was opened from.
func (p *Pack) Source() string { return p.source }

// Names lists the files in the pack, sorted.
func (p *Pack) Names() []string {
	names := append([]string(nil), p.names...)
	sort.Strings(names)
	return names
}

// Has reports whether name is in the pack.
func (p *Pack) Has(name string) bool {
	_, ok := p.files[key(name)]
	return ok
}

// ReadFile returns the contents of name. The slice is shared with the pack.
func (p *Pack) ReadFile(name string) ([]byte, error) {
	data, ok := p.files[key(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoFile, name)
	}
	return data, nil
}
