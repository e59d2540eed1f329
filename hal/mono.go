package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

// monoSurface is a 1bpp framebuffer, row-major, MSB-first within each byte,
// shared by the host simulator and the device target. Only Present differs:
// the blit hook pushes the buffer to whatever panel backs the surface.
type monoSurface struct {
	mu     sync.Mutex
	w      int
	h      int
	stride int
	buf    []byte
	blit   func(*monoSurface) error
}

func newMonoSurface(w, h int, blit func(*monoSurface) error) *monoSurface {
	stride := (w + 7) / 8
	return &monoSurface{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*h),
		blit:   blit,
	}
}

func (s *monoSurface) Size() (int, int) { return s.w, s.h }

func (s *monoSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.buf {
		s.buf[i] = 0
	}
}

func (s *monoSurface) SetPixel(x, y int) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.buf[y*s.stride+x>>3] |= 0x80 >> (x & 7)
}

// bit reports whether the pixel at x, y is lit. Out of range reads as unlit.
func (s *monoSurface) bit(x, y int) bool {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return false
	}
	return s.buf[y*s.stride+x>>3]&(0x80>>(x&7)) != 0
}

func (s *monoSurface) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.SetPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (s *monoSurface) TextWidth(f Font, str string) int {
	_, outboxWidth := tinyfont.LineWidth(fontOf(f), str)
	return int(outboxWidth)
}

func (s *monoSurface) DrawText(f Font, x, y int, str string) {
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(&monoDisplayer{s: s}, fontOf(f), int16(x), int16(y), str, white)
}

func (s *monoSurface) Present() error {
	if s.blit == nil {
		return nil
	}
	return s.blit(s)
}

func (s *monoSurface) snapshot(dst []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(dst, s.buf)
}

func fontOf(f Font) tinyfont.Fonter {
	if f == FontLarge {
		return &freemono.Bold12pt7b
	}
	return &proggy.TinySZ8pt7b
}

// monoDisplayer adapts the surface to the displayer contract tinyfont draws
// against. Any non-black color lights the pixel.
type monoDisplayer struct {
	s *monoSurface
}

func (d *monoDisplayer) Size() (int16, int16) {
	return int16(d.s.w), int16(d.s.h)
}

func (d *monoDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return
	}
	d.s.SetPixel(int(x), int(y))
}

func (d *monoDisplayer) Display() error { return nil }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
