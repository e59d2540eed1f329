// Package input turns noisy raw button levels into single-shot press events.
package input

// DefaultWindowTicks is the debounce window: how long a raw level must stay
// stable before the debounced state trusts it.
const DefaultWindowTicks = 30

// Channel tracks one physical button line.
//
// The line is active low: a stable LOW level arms a press event, which
// TakePress hands out exactly once. A fresh event needs a full release and
// re-press.
type Channel struct {
	Line   int
	Window uint64

	lastLevel  bool
	lastChange uint64
	pressed    bool
	consumed   bool
}

// NewChannel returns a channel for a line idling at the high level.
func NewChannel(line int) *Channel {
	return &Channel{
		Line:      line,
		Window:    DefaultWindowTicks,
		lastLevel: true,
		consumed:  true,
	}
}

// Update feeds one raw sample taken at tick now.
//
// Every raw transition, chatter included, restarts the debounce window.
// The tick difference is unsigned, so a wrapped counter never fakes a
// stable interval.
func (c *Channel) Update(raw bool, now uint64) {
	if raw != c.lastLevel {
		c.lastLevel = raw
		c.lastChange = now
		return
	}
	if now-c.lastChange <= c.Window {
		return
	}
	if raw {
		c.pressed = false
		return
	}
	if !c.pressed {
		c.pressed = true
		c.consumed = false
	}
}

// Pressed reports the debounced level.
func (c *Channel) Pressed() bool { return c.pressed }

// TakePress returns true at most once per press edge.
func (c *Channel) TakePress() bool {
	if c.pressed && !c.consumed {
		c.consumed = true
		return true
	}
	return false
}
