// Package watch owns the top-level mode and the nested stopwatch run state.
package watch

// Mode is the active face.
type Mode uint8

const (
	ModeStopwatch Mode = iota
	ModeClock
	ModeAnimation
)

// Event is a debounced, unconsumed button press.
type Event uint8

const (
	EventPrimary Event = iota
	EventSecondary
)

type action uint8

const (
	actToggleRun action = iota
	actEnterAnimation
	actLeaveAnimation
	actResetThenClock
	actToggleFace
)

type transition struct {
	mode Mode
	ev   Event
	act  action
}

// The stopwatch/secondary entry is a compound action: one press clears the
// timer (unless it is running) and also switches to the clock face. The
// original hardware behaves this way and users rely on it.
var transitions = [...]transition{
	{ModeAnimation, EventPrimary, actLeaveAnimation},
	{ModeAnimation, EventSecondary, actLeaveAnimation},
	{ModeStopwatch, EventPrimary, actToggleRun},
	{ModeStopwatch, EventSecondary, actResetThenClock},
	{ModeClock, EventPrimary, actEnterAnimation},
	{ModeClock, EventSecondary, actToggleFace},
}

// Machine holds the (mode, run state) pair and applies the transition table.
// The zero value is the power-on state: stopwatch face, stopped, zero time.
type Machine struct {
	mode Mode
	sw   Stopwatch
}

func NewMachine() *Machine { return &Machine{} }

func (m *Machine) Mode() Mode    { return m.mode }
func (m *Machine) Run() RunState { return m.sw.State() }

// Elapsed returns the live stopwatch reading at tick now.
func (m *Machine) Elapsed(now uint64) uint64 { return m.sw.Elapsed(now) }

// HandleButtons consumes the press events of one scheduler pass.
//
// In animation mode either button leaves for the clock face; a simultaneous
// pair is swallowed whole instead of replaying the second press against the
// new mode. Outside animation the events dispatch in button order, each one
// seeing the mode the previous one left behind.
func (m *Machine) HandleButtons(primary, secondary bool, now uint64) {
	if m.mode == ModeAnimation {
		if primary || secondary {
			m.mode = ModeClock
		}
		return
	}
	if primary {
		m.dispatch(EventPrimary, now)
	}
	if secondary {
		m.dispatch(EventSecondary, now)
	}
}

func (m *Machine) dispatch(ev Event, now uint64) {
	for _, tr := range transitions {
		if tr.mode != m.mode || tr.ev != ev {
			continue
		}
		m.apply(tr.act, now)
		return
	}
}

func (m *Machine) apply(act action, now uint64) {
	switch act {
	case actToggleRun:
		m.sw.toggle(now)
	case actEnterAnimation:
		m.mode = ModeAnimation
	case actLeaveAnimation:
		m.mode = ModeClock
	case actResetThenClock:
		if m.sw.State() != RunRunning {
			m.sw.reset()
		}
		m.mode = ModeClock
	case actToggleFace:
		if m.mode == ModeClock {
			m.mode = ModeStopwatch
		} else {
			m.mode = ModeClock
		}
	}
}
