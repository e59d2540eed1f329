// Package face renders the three full-screen faces onto a draw surface.
// Each renderer fills a cleared surface; the scheduler owns Clear/Present.
package face

import (
	"fmt"

	"quartz/gfx"
	"quartz/hal"
	"quartz/watch"
)

// Stopwatch draws the elapsed time as MM:SS:CC with the run-state caption.
func Stopwatch(s hal.Surface, elapsed uint64, run watch.RunState) {
	w, h := s.Size()

	text := formatElapsed(elapsed)
	tw := s.TextWidth(hal.FontLarge, text)
	s.DrawText(hal.FontLarge, (w-tw)/2, h/2+8, text)

	s.DrawText(hal.FontSmall, 2, 8, "STOPWATCH")
	if caption := runCaption(run); caption != "" {
		cw := s.TextWidth(hal.FontSmall, caption)
		s.DrawText(hal.FontSmall, w-cw-2, 8, caption)
	}
}

// Clock draws the calendar fields positionally. The fields are shown as
// returned by the time source; an uninitialized RTC renders as zeros rather
// than failing.
func Clock(s hal.Surface, dt hal.DateTime) {
	w, h := s.Size()

	text := fmt.Sprintf("%02d:%02d:%02d", dt.Hour, dt.Minute, dt.Second)
	tw := s.TextWidth(hal.FontLarge, text)
	s.DrawText(hal.FontLarge, (w-tw)/2, h/2+4, text)

	date := fmt.Sprintf("%02d.%02d.%04d", dt.Day, dt.Month, dt.Year)
	dw := s.TextWidth(hal.FontSmall, date)
	s.DrawText(hal.FontSmall, (w-dw)/2, h-4, date)
}

// Animation draws the starfield as single pixels and the ship wireframe as
// one line per edge.
func Animation(s hal.Surface, stars *gfx.Starfield, t uint64) {
	w, h := s.Size()
	stars.EachVisible(w, h, s.SetPixel)

	pts := gfx.ProjectShip(t, w, h)
	for _, e := range gfx.ShipEdges {
		a := pts[e[0]]
		b := pts[e[1]]
		s.DrawLine(a.X, a.Y, b.X, b.Y)
	}
}

func runCaption(run watch.RunState) string {
	switch run {
	case watch.RunRunning:
		return "RUN"
	case watch.RunPaused:
		return "HOLD"
	default:
		return ""
	}
}

// formatElapsed renders milliseconds as minutes:seconds:centiseconds.
func formatElapsed(ms uint64) string {
	return fmt.Sprintf("%02d:%02d:%02d", ms/60000, (ms/1000)%60, (ms%1000)/10)
}
