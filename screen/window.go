package screen

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window presenting fb at the given integer scale
// and calls step once per tick with the polled input. It blocks until the
// window closes or step returns an error; ebiten.Termination is treated as a
// normal exit.
func RunWindow(title string, fb *Framebuffer, scale int, step func(*Input) error) error {
	if scale < 1 {
		scale = 1
	}
	g := &game{fb: fb, step: step}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(fb.Width()*scale, fb.Height()*scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type game struct {
	fb      *Framebuffer
	in      Input
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func(*Input) error
}

func (g *game) Update() error {
	g.in.poll()
	if g.step != nil {
		if err := g.step(&g.in); err != nil {
			return err
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.Width() || g.img.Bounds().Dy() != fb.Height() {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
		g.scratch = make([]byte, len(fb.Buffer()))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
	}

	fb.Snapshot(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}
