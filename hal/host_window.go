//go:build !tinygo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"quartz/internal/buildinfo"
)

const hostWindowScale = 4

// RunWindow opens a desktop window showing the panel and mapping the Z and X
// keys to the primary and secondary buttons. It blocks until the window
// closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Quartz (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(hostPanelW*hostWindowScale, hostPanelH*hostWindowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	step    func() error
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	// Held key = closed contact = LOW line.
	g.h.btns.setLevel(LinePrimary, !ebiten.IsKeyPressed(ebiten.KeyZ))
	g.h.btns.setLevel(LineSecondary, !ebiten.IsKeyPressed(ebiten.KeyX))
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	s := g.h.surf
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, s.w, s.h))
		g.scratch = make([]byte, len(s.buf))
		g.fbImg = ebiten.NewImage(s.w, s.h)
	}

	s.snapshot(g.scratch)

	dst := g.img.Pix
	for y := 0; y < s.h; y++ {
		row := y * s.stride
		for x := 0; x < s.w; x++ {
			var v uint8 = 0x10
			if g.scratch[row+x>>3]&(0x80>>(x&7)) != 0 {
				v = 0xE8
			}
			j := (y*s.w + x) * 4
			dst[j+0] = v
			dst[j+1] = v
			dst[j+2] = v
			dst[j+3] = 0xFF
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return hostPanelW, hostPanelH
}
