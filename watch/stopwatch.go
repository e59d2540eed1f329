package watch

// RunState is the stopwatch's nested status inside the top-level mode.
type RunState uint8

const (
	RunStopped RunState = iota
	RunRunning
	RunPaused
)

// Stopwatch accumulates run time across running intervals. The accumulated
// duration only moves forward, except for an explicit reset, and the live
// value is recomputed on every read rather than on state changes.
type Stopwatch struct {
	state RunState
	start uint64
	accum uint64
}

func (s *Stopwatch) State() RunState { return s.state }

// Elapsed returns the displayed elapsed time at tick now.
func (s *Stopwatch) Elapsed(now uint64) uint64 {
	if s.state == RunRunning {
		return s.accum + (now - s.start)
	}
	return s.accum
}

func (s *Stopwatch) toggle(now uint64) {
	if s.state == RunRunning {
		s.accum += now - s.start
		s.state = RunPaused
		return
	}
	s.state = RunRunning
	s.start = now
}

// reset is only reachable while not running.
func (s *Stopwatch) reset() {
	s.state = RunStopped
	s.accum = 0
}
