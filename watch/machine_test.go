package watch

import "testing"

func TestPowerOnState(t *testing.T) {
	m := NewMachine()
	if m.Mode() != ModeStopwatch {
		t.Fatalf("boot mode = %v, want stopwatch", m.Mode())
	}
	if m.Run() != RunStopped {
		t.Fatalf("boot run state = %v, want stopped", m.Run())
	}
	if m.Elapsed(1234) != 0 {
		t.Fatalf("boot elapsed = %d, want 0", m.Elapsed(1234))
	}
}

func TestStopwatchPrimaryTogglesRun(t *testing.T) {
	m := NewMachine()

	m.HandleButtons(true, false, 1000)
	if m.Run() != RunRunning {
		t.Fatalf("after first press run = %v, want running", m.Run())
	}
	if got := m.Elapsed(1500); got != 500 {
		t.Fatalf("elapsed while running = %d, want 500", got)
	}

	m.HandleButtons(true, false, 3000)
	if m.Run() != RunPaused {
		t.Fatalf("after second press run = %v, want paused", m.Run())
	}
	if got := m.Elapsed(9999); got != 2000 {
		t.Fatalf("elapsed while paused = %d, want frozen 2000", got)
	}

	// Resume: the paused interval does not count.
	m.HandleButtons(true, false, 5000)
	if got := m.Elapsed(5400); got != 2400 {
		t.Fatalf("elapsed after resume = %d, want 2400", got)
	}
}

func TestStopwatchSecondaryResetsAndTogglesWhenStopped(t *testing.T) {
	m := NewMachine()
	m.HandleButtons(false, true, 100)
	if m.Mode() != ModeClock {
		t.Fatalf("mode = %v, want clock", m.Mode())
	}
	if m.Run() != RunStopped || m.Elapsed(200) != 0 {
		t.Fatal("reset did not leave a stopped zero stopwatch")
	}
}

func TestStopwatchSecondaryResetsAndTogglesWhenPaused(t *testing.T) {
	m := NewMachine()
	m.HandleButtons(true, false, 0)    // run
	m.HandleButtons(true, false, 2000) // pause, accum 2000
	m.HandleButtons(false, true, 3000)
	if m.Mode() != ModeClock {
		t.Fatalf("mode = %v, want clock", m.Mode())
	}
	if m.Run() != RunStopped {
		t.Fatalf("run = %v, want stopped", m.Run())
	}
	if m.Elapsed(9000) != 0 {
		t.Fatal("paused time survived the reset")
	}
}

func TestStopwatchSecondaryWhileRunningKeepsTime(t *testing.T) {
	m := NewMachine()
	m.HandleButtons(true, false, 0)
	m.HandleButtons(false, true, 1000)
	if m.Mode() != ModeClock {
		t.Fatalf("mode = %v, want clock", m.Mode())
	}
	if m.Run() != RunRunning {
		t.Fatalf("run = %v, want still running", m.Run())
	}
	if got := m.Elapsed(1500); got != 1500 {
		t.Fatalf("elapsed = %d, want 1500 still counting", got)
	}
}

func TestClockPrimaryEntersAnimation(t *testing.T) {
	m := NewMachine()
	m.HandleButtons(false, true, 0) // to clock
	m.HandleButtons(true, false, 100)
	if m.Mode() != ModeAnimation {
		t.Fatalf("mode = %v, want animation", m.Mode())
	}
}

func TestClockSecondaryTogglesBackToStopwatch(t *testing.T) {
	m := NewMachine()
	m.HandleButtons(true, false, 0)    // run
	m.HandleButtons(true, false, 800)  // pause, accum 800
	m.HandleButtons(false, true, 1000) // reset + to clock
	m.HandleButtons(false, true, 1100) // back to stopwatch
	if m.Mode() != ModeStopwatch {
		t.Fatalf("mode = %v, want stopwatch", m.Mode())
	}
	if m.Run() != RunStopped || m.Elapsed(2000) != 0 {
		t.Fatal("face toggle disturbed the stopwatch")
	}
}

func TestAnimationEitherButtonLeaves(t *testing.T) {
	for _, both := range []struct {
		name               string
		primary, secondary bool
	}{
		{"primary", true, false},
		{"secondary", false, true},
		{"both", true, true},
	} {
		t.Run(both.name, func(t *testing.T) {
			m := NewMachine()
			m.HandleButtons(false, true, 0) // to clock
			m.HandleButtons(true, false, 1) // to animation
			m.HandleButtons(both.primary, both.secondary, 2)
			if m.Mode() != ModeClock {
				t.Fatalf("mode = %v, want clock", m.Mode())
			}
		})
	}
}

func TestAnimationSwallowsSimultaneousPair(t *testing.T) {
	// Both presses in one pass exit animation exactly once; the second press
	// must not replay against the clock face.
	m := NewMachine()
	m.HandleButtons(false, true, 0)
	m.HandleButtons(true, false, 1)
	if m.Mode() != ModeAnimation {
		t.Fatalf("setup failed, mode = %v", m.Mode())
	}
	m.HandleButtons(true, true, 2)
	if m.Mode() != ModeClock {
		t.Fatalf("mode = %v, want clock after swallowed pair", m.Mode())
	}
	if m.Run() != RunStopped {
		t.Fatalf("run = %v, pair leaked into the stopwatch", m.Run())
	}
}

func TestSequentialDispatchOutsideAnimation(t *testing.T) {
	// On the clock face a simultaneous pair dispatches in button order:
	// primary enters animation, then secondary leaves it again.
	m := NewMachine()
	m.HandleButtons(false, true, 0) // to clock
	m.HandleButtons(true, true, 1)
	if m.Mode() != ModeClock {
		t.Fatalf("mode = %v, want clock", m.Mode())
	}
}

func TestNoEventsNoChange(t *testing.T) {
	m := NewMachine()
	m.HandleButtons(false, false, 500)
	if m.Mode() != ModeStopwatch || m.Run() != RunStopped {
		t.Fatal("empty pass changed state")
	}
}
