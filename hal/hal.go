package hal

// Button line assignments. The primary button drives start/pause and mode
// entry, the secondary button drives reset and face toggling.
const (
	LinePrimary = iota
	LineSecondary

	ButtonLines
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Buttons reads the raw digital level of each button line.
//
// The lines idle high; the active (pressed) level is LOW. Levels are raw
// contact state, debouncing happens above the HAL.
type Buttons interface {
	ReadLevel(line int) bool
}

// Clock is the monotonic time source. One tick is one millisecond.
type Clock interface {
	NowTicks() uint64
}

// DateTime carries calendar fields as reported by the time-of-day source.
// Fields are not validated; an unset RTC reads back whatever it holds.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Calendar provides the wall-clock time, read fresh on every use.
type Calendar interface {
	Now() DateTime
}

// Font selects one of the surface's fixed fonts.
type Font uint8

const (
	FontSmall Font = iota
	FontLarge
)

// Surface is the monochrome draw target for one frame.
//
// A render pass issues exactly one Clear/Present pair with arbitrary pixel,
// line and text calls in between. Coordinates outside the panel are clipped,
// never an error. DrawText's y is the text baseline.
type Surface interface {
	Size() (w, h int)
	Clear()
	SetPixel(x, y int)
	DrawLine(x0, y0, x1, y1 int)
	TextWidth(f Font, s string) int
	DrawText(f Font, x, y int, s string)
	Present() error
}

// HAL provides the only contact point between the watch core and the
// outside world.
type HAL interface {
	Logger() Logger
	Buttons() Buttons
	Clock() Clock
	Calendar() Calendar
	Surface() Surface
}
