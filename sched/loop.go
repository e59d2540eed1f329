// Package sched runs the cooperative main loop: every iteration samples and
// debounces the buttons and advances the state machine; a frame is rendered
// only when the frame interval has elapsed. Input latency is bounded by the
// debounce window, render cadence by the frame interval, and neither delays
// the other.
package sched

import (
	"quartz/face"
	"quartz/gfx"
	"quartz/hal"
	"quartz/input"
	"quartz/watch"
)

// FrameIntervalTicks caps the render cadence (~30 frames/second).
const FrameIntervalTicks = 33

// Loop owns all mutable watch state. Nothing else touches it; the loop is
// single-threaded by construction.
type Loop struct {
	h hal.HAL

	primary   *input.Channel
	secondary *input.Channel
	machine   *watch.Machine
	stars     *gfx.Starfield

	lastFrame uint64
	frames    uint64
}

func New(h hal.HAL) *Loop {
	return &Loop{
		h:         h,
		primary:   input.NewChannel(hal.LinePrimary),
		secondary: input.NewChannel(hal.LineSecondary),
		machine:   watch.NewMachine(),
		stars:     gfx.NewStarfield(0x2a6f1d4b),
	}
}

// Step performs one scheduler iteration: one sample/debounce/state pass,
// plus a render pass when due.
func (l *Loop) Step() error {
	now := l.h.Clock().NowTicks()
	btns := l.h.Buttons()

	l.primary.Update(btns.ReadLevel(l.primary.Line), now)
	l.secondary.Update(btns.ReadLevel(l.secondary.Line), now)
	l.machine.HandleButtons(l.primary.TakePress(), l.secondary.TakePress(), now)

	if l.frames != 0 && now-l.lastFrame < FrameIntervalTicks {
		return nil
	}
	l.lastFrame = now
	l.frames++
	return l.render(now)
}

// Run drives the loop forever (device entrypoint).
func (l *Loop) Run() {
	for {
		_ = l.Step()
	}
}

func (l *Loop) render(now uint64) error {
	s := l.h.Surface()
	s.Clear()
	switch l.machine.Mode() {
	case watch.ModeClock:
		face.Clock(s, l.h.Calendar().Now())
	case watch.ModeAnimation:
		l.stars.Advance()
		face.Animation(s, l.stars, now)
	default:
		face.Stopwatch(s, l.machine.Elapsed(now), l.machine.Run())
	}
	return s.Present()
}
