//go:build cgo

package hal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ledsim/internal/buildinfo"
	"ledsim/led"
)

// RunWindow opens a desktop window presenting the panel through the GPU glow
// shader and forwards touches and mouse presses. It blocks until the window
// closes.
func RunWindow(cfg Config, newApp func(HAL) func() error) error {
	cfg = cfg.withDefaults()
	h := newHost(cfg)
	step := newApp(h)

	g := &hostGame{h: h, cfg: cfg, step: step, surface: &ebitenSurface{}}
	ebiten.SetWindowTitle("LED panel (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	cfg     Config
	step    func() error
	surface *ebitenSurface
	comp    *led.Compositor

	outW int
	outH int
}

func (g *hostGame) Update() error {
	if g.comp == nil {
		comp, err := g.h.newCompositor(g.surface, g.cfg)
		if err != nil {
			return err
		}
		g.comp = comp
	}

	g.h.touch.poll(g.touchMapper())
	g.h.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.comp == nil {
		return
	}
	g.surface.dev.target = screen
	g.comp.Render()
	g.surface.dev.target = nil

	if g.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %0.1f FPS %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

// Layout renders at the window's own resolution so the blur works on the
// upscaled image rather than on the bare grid.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.cfg.Width, g.cfg.Height
	}
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *hostGame) touchMapper() led.TouchMapper {
	m := led.TouchMapper{ScaleX: 1, ScaleY: 1}
	if g.outW > 0 && g.outH > 0 {
		m.ScaleX = float64(g.cfg.Width) / float64(g.outW)
		m.ScaleY = float64(g.cfg.Height) / float64(g.outH)
	}
	return m
}
