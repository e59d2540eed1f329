// Package app wires a HAL into the watch loop.
package app

import (
	"quartz/hal"
	"quartz/internal/buildinfo"
	"quartz/sched"
)

// New initializes the watch and returns the host step function.
func New(h hal.HAL) func() error {
	if lg := h.Logger(); lg != nil {
		lg.WriteLineString("quartz " + buildinfo.Short())
	}
	return sched.New(h).Step
}

// Run starts the watch and polls forever (device entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		_ = step()
	}
}
