package dos

import (
	"image"
	"image/color"
	"image/gif"
	"io"
)

// Image is a decoded GIF. Palette channels use the same 0 to 63 range as
// SetPal.
type Image struct {
	width, height int
	pix           []byte
	palette       [PaletteSize * 3]byte
	palCount      int
}

func (m *Image) Width() int  { return m.width }
func (m *Image) Height() int { return m.height }

// Pixels returns the palette indices, row major.
func (m *Image) Pixels() []byte { return m.pix }

// PaletteCount returns the number of colors in the palette.
func (m *Image) PaletteCount() int { return m.palCount }

// Palette returns PaletteCount RGB triplets.
func (m *Image) Palette() []byte { return m.palette[:m.palCount*3] }

// RawPalette returns the full palette array, including unused entries.
func (m *Image) RawPalette() *[PaletteSize * 3]byte { return &m.palette }

// Colors returns the palette as entries for SetPalette.
func (m *Image) Colors() []RGB {
	c := make([]RGB, m.palCount)
	for i := range c {
		c[i] = RGB{m.palette[3*i], m.palette[3*i+1], m.palette[3*i+2]}
	}
	return c
}

// Paletted converts the image for use with the image packages. The result
// always has PaletteSize colors.
func (m *Image) Paletted() *image.Paletted {
	p := make(color.Palette, PaletteSize)
	for i := range p {
		p[i] = RGB{m.palette[3*i], m.palette[3*i+1], m.palette[3*i+2]}
	}
	pix := make([]byte, len(m.pix))
	copy(pix, m.pix)
	return &image.Paletted{
		Pix:     pix,
		Stride:  m.width,
		Rect:    image.Rect(0, 0, m.width, m.height),
		Palette: p,
	}
}

// LoadGIF reads the first frame of a GIF file.
func LoadGIF(path string) (*Image, error) {
	if err := checkPath("loadgif", path); err != nil {
		return nil, err
	}
	img := loadGIF(path)
	if img == nil {
		return nil, notFound("loadgif", path)
	}
	return img, nil
}

// DecodeGIF is LoadGIF for data that is not in a file.
func DecodeGIF(r io.Reader) (*Image, error) {
	g, err := gif.Decode(r)
	if err != nil {
		return nil, err
	}
	return fromImage(g), nil
}

func fromImage(g image.Image) *Image {
	b := g.Bounds()
	m := &Image{width: b.Dx(), height: b.Dy(), pix: make([]byte, b.Dx()*b.Dy())}
	p, ok := g.(*image.Paletted)
	if !ok {
		// Not indexed: quantize to the current palette.
		p = image.NewPaletted(b, ColorPalette())
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				p.Set(x, y, g.At(x, y))
			}
		}
	}
	for y := 0; y < m.height; y++ {
		row := p.Pix[(y+b.Min.Y-p.Rect.Min.Y)*p.Stride+(b.Min.X-p.Rect.Min.X):]
		copy(m.pix[y*m.width:(y+1)*m.width], row[:m.width])
	}
	m.palCount = min(len(p.Palette), PaletteSize)
	for i, c := range p.Palette[:m.palCount] {
		cr, cg, cb, _ := c.RGBA()
		m.palette[3*i] = uint8(cr >> 10)
		m.palette[3*i+1] = uint8(cg >> 10)
		m.palette[3*i+2] = uint8(cb >> 10)
	}
	return m
}
