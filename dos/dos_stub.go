//go:build !doslike

package dos

// The headless backend keeps the library state in memory. It draws pixels,
// horizontal lines, clears and blits into the frame buffers and treats the
// other shapes as no-ops. Sounds and songs are recorded, never mixed.

type headlessSound struct {
	channels, rate int
	samples        []int16
}

type headlessMusic struct {
	format MusicFormat
	data   []byte
}

type headlessChannel struct {
	sound       *headlessSound
	loop        bool
	left, right uint8
}

type headlessState struct {
	mode    VideoMode
	double  bool
	palette [PaletteSize]RGB
	buffers [2][]byte
	back    int
	color   uint8

	textFG, textBG   int
	cursorX, cursorY int
	cursor           bool
	font             int
	fonts            int

	keys  []KeyEvent
	chars []byte
	held  [KeyCount]bool

	soundMode   SoundMode
	channels    [SoundChannels]headlessChannel
	music       *headlessMusic
	musicLoop   bool
	musicVolume uint8
	soundbank   int
	banks       int
	instruments [MusicChannels]uint8
	notes       [MusicChannels]map[uint8]uint8

	frames   int
	shutdown bool
}

// The sixteen CGA colors in DAC units.
var cgaColors = [16]RGB{
	{0, 0, 0}, {0, 0, 42}, {0, 42, 0}, {0, 42, 42},
	{42, 0, 0}, {42, 0, 42}, {42, 21, 0}, {42, 42, 42},
	{21, 21, 21}, {21, 21, 63}, {21, 63, 21}, {21, 63, 63},
	{63, 21, 21}, {63, 21, 63}, {63, 63, 21}, {63, 63, 63},
}

var headless = newHeadless()

func newHeadless() *headlessState {
	s := &headlessState{
		mode:        DefaultVideoMode,
		textFG:      7,
		cursor:      true,
		font:        int(DefaultFont8x8),
		fonts:       int(DefaultFont9x16),
		soundMode:   DefaultSoundMode,
		musicVolume: 255,
		soundbank:   int(SoundbankAWE32),
		banks:       int(SoundbankSB16),
	}
	copy(s.palette[:], cgaColors[:])
	s.allocBuffers()
	return s
}

func (s *headlessState) allocBuffers() {
	w, h := s.mode.Resolution()
	s.buffers[0] = make([]byte, w*h)
	s.buffers[1] = make([]byte, w*h)
	s.back = 0
}

func (s *headlessState) draw() []byte { return s.buffers[s.back] }

func run(app func() error) error {
	headless = newHeadless()
	current = DefaultVideoMode
	return app()
}

func waitVBL() { headless.frames++ }

func shuttingDown() bool { return headless.shutdown }
