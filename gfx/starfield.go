// Package gfx holds the animation geometry: the starfield and the ship
// wireframe pipeline. All math is float32, screen output is integer pixels.
package gfx

// StarCount is the fixed size of the star arena.
const StarCount = 64

const (
	starMaxDepth float32 = 32
	starStep     float32 = 0.45 // depth lost per render pass, not dt-scaled
	starSpread   float32 = 26
	starScale    float32 = 42
)

type star struct {
	x, y, z float32
}

// Starfield is a fixed arena of points drifting toward the camera. A point
// crossing the near plane is reseeded at full depth with new lateral
// offsets, so 0 < z <= max depth holds for every live point.
type Starfield struct {
	stars [StarCount]star
	rng   uint32
}

// NewStarfield seeds the arena. Depths are staggered so the field does not
// start as a single shell.
func NewStarfield(seed uint32) *Starfield {
	f := &Starfield{rng: seed}
	if f.rng == 0 {
		f.rng = 0x6d2b79f5
	}
	for i := range f.stars {
		s := &f.stars[i]
		f.reseed(s)
		s.z = 1 + f.randUnit()*(starMaxDepth-1)
	}
	return f
}

// Advance moves every star one render step toward the camera, reseeding any
// star that reaches the near plane. Reseeding happens here, before any
// projection of the same tick, so projection never divides by z <= 0.
func (f *Starfield) Advance() {
	for i := range f.stars {
		s := &f.stars[i]
		s.z -= starStep
		if s.z <= 0 {
			f.reseed(s)
		}
	}
}

// EachVisible projects every star onto a w×h screen and calls fn for the
// ones inside it. Offscreen points are skipped, nothing else.
func (f *Starfield) EachVisible(w, h int, fn func(x, y int)) {
	cx := float32(w) / 2
	cy := float32(h) / 2
	for i := range f.stars {
		s := &f.stars[i]
		sx := int(s.x/s.z*starScale + cx)
		sy := int(s.y/s.z*starScale + cy)
		if sx < 0 || sx >= w || sy < 0 || sy >= h {
			continue
		}
		fn(sx, sy)
	}
}

func (f *Starfield) reseed(s *star) {
	s.x = f.randRange(starSpread)
	s.y = f.randRange(starSpread)
	s.z = starMaxDepth
}

func (f *Starfield) next() uint32 {
	x := f.rng
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	f.rng = x
	return x
}

// randUnit returns a value in [0, 1).
func (f *Starfield) randUnit() float32 {
	return float32(f.next()>>8) / float32(1<<24)
}

// randRange returns a value in [-r, r].
func (f *Starfield) randRange(r float32) float32 {
	return (f.randUnit()*2 - 1) * r
}
