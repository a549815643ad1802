// Package term presents the LED panel in a terminal. Each character cell shows
// two vertically stacked pixels using an upper half block, the upper one as
// foreground colour and the lower one as background.
package term

import (
	"fmt"
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"ledsim/led"
)

const halfBlock = '▀'

// Surface is a led.Surface backed by a tcell screen.
type Surface struct {
	mu     sync.Mutex
	screen tcell.Screen
	dev    *device

	gridW int
	gridH int

	// Panel placement in half-cell pixels.
	offX  int
	offY  int
	frame *image.RGBA
}

// NewSurface wraps screen. The screen is initialised by Acquire.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Acquire initialises the terminal and returns a software-rendered device
// whose frames are copied onto the screen.
func (s *Surface) Acquire(width, height int) (led.Device, error) {
	if s.screen == nil {
		return nil, fmt.Errorf("terminal: %w", led.ErrNoContext)
	}
	if err := s.screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init: %w", err)
	}
	s.screen.EnableMouse()
	s.screen.HideCursor()
	s.screen.Clear()

	soft, err := led.NewSoftwareSurface(1).Acquire(width, height)
	if err != nil {
		s.screen.Fini()
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gridW, s.gridH = width, height
	s.dev = &device{SoftwareDevice: soft.(*led.SoftwareDevice), s: s}
	s.layout()
	return s.dev, nil
}

// Screen returns the wrapped tcell screen.
func (s *Surface) Screen() tcell.Screen { return s.screen }

// Close restores the terminal.
func (s *Surface) Close() {
	if s.screen != nil {
		s.screen.Fini()
	}
}

// Resize recomputes the panel placement after a terminal resize.
func (s *Surface) Resize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Clear()
	s.layout()
}

// Touch converts a mouse press on cell (col, row) into a device point and the
// mapping from device points to grid cells. ok is false while the terminal is
// too small to show the panel.
func (s *Surface) Touch(col, row int) (p led.TouchPoint, m led.TouchMapper, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frame == nil {
		return p, m, false
	}

	p = led.TouchPoint{X: float64(col) + 0.5, Y: float64(row*2) + 1}
	b := s.frame.Bounds()
	m = led.TouchMapper{
		OriginX: float64(s.offX),
		OriginY: float64(s.offY),
		ScaleX:  float64(s.gridW) / float64(b.Dx()),
		ScaleY:  float64(s.gridH) / float64(b.Dy()),
	}
	return p, m, true
}

// layout fits the panel into the terminal keeping its aspect ratio. One cell
// is one pixel wide and two pixels tall.
func (s *Surface) layout() {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 || s.gridW <= 0 || s.gridH <= 0 {
		s.frame = nil
		return
	}
	maxH := rows * 2
	pw := cols
	ph := pw * s.gridH / s.gridW
	if ph > maxH {
		ph = maxH
		pw = ph * s.gridW / s.gridH
	}
	ph &^= 1
	if pw < 1 || ph < 2 {
		s.frame = nil
		return
	}
	s.frame = image.NewRGBA(image.Rect(0, 0, pw, ph))
	s.offX = (cols - pw) / 2
	s.offY = ((maxH - ph) / 2) &^ 1
}

// present scales the rendered panel onto the cell grid and shows it.
func (s *Surface) present(img *image.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frame == nil {
		return
	}

	xdraw.ApproxBiLinear.Scale(s.frame, s.frame.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	b := s.frame.Bounds()
	for py := 0; py+1 < b.Dy(); py += 2 {
		for px := 0; px < b.Dx(); px++ {
			top := s.frame.RGBAAt(px, py)
			bottom := s.frame.RGBAAt(px, py+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.screen.SetContent(s.offX+px, (s.offY+py)/2, halfBlock, nil, style)
		}
	}
	s.screen.Show()
}

// device renders on the CPU and then mirrors the frame to the terminal.
type device struct {
	*led.SoftwareDevice
	s *Surface
}

func (d *device) Draw(p led.GlowParams) {
	d.SoftwareDevice.Draw(p)
	d.s.present(d.Image())
}
