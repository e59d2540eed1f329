//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Panel geometry of the simulated display, matching the device OLED.
const (
	hostPanelW = 128
	hostPanelH = 64
)

type hostHAL struct {
	logger *hostLogger
	btns   *hostButtons
	clk    *hostClock
	cal    hostCalendar
	surf   *monoSurface
}

// New returns a host HAL implementation.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		btns:   newHostButtons(),
		clk:    &hostClock{start: time.Now()},
		surf:   newMonoSurface(hostPanelW, hostPanelH, nil),
	}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) Buttons() Buttons   { return h.btns }
func (h *hostHAL) Clock() Clock       { return h.clk }
func (h *hostHAL) Calendar() Calendar { return h.cal }
func (h *hostHAL) Surface() Surface   { return h.surf }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostButtons holds one level per line, driven by the window's key polling.
// Lines idle high; out-of-range lines read as idle.
type hostButtons struct {
	mu     sync.Mutex
	levels [ButtonLines]bool
}

func newHostButtons() *hostButtons {
	b := &hostButtons{}
	for i := range b.levels {
		b.levels[i] = true
	}
	return b
}

func (b *hostButtons) ReadLevel(line int) bool {
	if line < 0 || line >= len(b.levels) {
		return true
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.levels[line]
}

func (b *hostButtons) setLevel(line int, level bool) {
	if line < 0 || line >= len(b.levels) {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.levels[line] = level
}

type hostClock struct {
	start time.Time
}

func (c *hostClock) NowTicks() uint64 {
	return uint64(time.Since(c.start) / time.Millisecond)
}

type hostCalendar struct{}

func (hostCalendar) Now() DateTime {
	t := time.Now()
	return DateTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}
