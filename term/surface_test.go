package term

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"ledsim/led"
)

func newSimSurface(t *testing.T, fb *led.FrameBuffer) (*Surface, tcell.SimulationScreen, *led.Compositor) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewSurface(sim)
	comp, err := led.NewCompositor(s, fb)
	if err != nil {
		t.Fatalf("NewCompositor() error = %v", err)
	}
	t.Cleanup(s.Close)
	return s, sim, comp
}

func TestAcquireWithoutScreen(t *testing.T) {
	_, err := NewSurface(nil).Acquire(16, 8)
	if !errors.Is(err, led.ErrNoContext) {
		t.Fatalf("Acquire() error = %v, want ErrNoContext", err)
	}
}

func TestRenderDrawsHalfBlocks(t *testing.T) {
	fb := led.NewFrameBuffer(16, 8)
	_, sim, comp := newSimSurface(t, fb)

	comp.Render()

	// 80x25 cells hold an 80x40 pixel panel starting at cell row 2.
	cells, w, _ := sim.GetContents()
	c := cells[2*w+10]
	if len(c.Runes) == 0 || c.Runes[0] != halfBlock {
		t.Fatalf("cell runes = %q, want %q", c.Runes, halfBlock)
	}
	fg, bg, _ := c.Style.Decompose()
	for _, col := range []tcell.Color{fg, bg} {
		r, g, b := col.RGB()
		if r < 50 || r > 52 || g != 0 || b != 0 {
			t.Fatalf("cell colour = (%d,%d,%d), want dark tint (51,0,0)", r, g, b)
		}
	}

	above := cells[1*w+10]
	if len(above.Runes) > 0 && above.Runes[0] == halfBlock {
		t.Fatalf("cell above the panel was drawn")
	}
}

func TestRenderShowsLitPixels(t *testing.T) {
	fb := led.NewFrameBuffer(16, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			fb.SetPixel(x, y, true)
		}
	}
	_, sim, comp := newSimSurface(t, fb)

	comp.Render()

	cells, w, _ := sim.GetContents()
	fg, _, _ := cells[10*w+40].Style.Decompose()
	if r, _, _ := fg.RGB(); r < 250 {
		t.Fatalf("lit cell red = %d, want ~255", r)
	}
}

func TestTouchMapsCellToGrid(t *testing.T) {
	fb := led.NewFrameBuffer(16, 8)
	s, _, _ := newSimSurface(t, fb)

	p, m, ok := s.Touch(40, 12)
	if !ok {
		t.Fatalf("Touch(40,12) ok = false")
	}
	x, y := m.Cell(p)
	if x != 8 || y != 4 {
		t.Fatalf("Cell() = (%d,%d), want (8,4)", x, y)
	}

	if n := m.Apply(fb, []led.TouchPoint{p}); n != 1 {
		t.Fatalf("Apply() = %d, want 1", n)
	}
	if got := fb.Pixel(8, 4); got != led.PixelOn {
		t.Fatalf("Pixel(8,4) = %d, want %d", got, led.PixelOn)
	}

	// Cell row 0 is above the panel.
	p, m, _ = s.Touch(0, 0)
	if n := m.Apply(fb, []led.TouchPoint{p}); n != 0 {
		t.Fatalf("Apply() above panel = %d, want 0", n)
	}
}

func TestResizeRelayouts(t *testing.T) {
	fb := led.NewFrameBuffer(16, 8)
	s, sim, comp := newSimSurface(t, fb)

	sim.SetSize(40, 25)
	s.Resize()
	comp.Render()

	p, m, _ := s.Touch(20, 12)
	x, y := m.Cell(p)
	if x != 8 || y < 0 || y >= 8 {
		t.Fatalf("Cell() after resize = (%d,%d), want x=8 inside the grid", x, y)
	}
}

func TestTouchWithoutRoomForPanel(t *testing.T) {
	fb := led.NewFrameBuffer(16, 8)
	s, sim, _ := newSimSurface(t, fb)

	sim.SetSize(1, 1)
	s.Resize()

	p, m, ok := s.Touch(0, 0)
	if ok {
		t.Fatalf("Touch() ok = true with no panel on screen")
	}
	if n := m.Apply(fb, []led.TouchPoint{p}); n != 0 {
		t.Fatalf("Apply() = %d, want 0", n)
	}
	if got := fb.Pixel(0, 0); got != led.PixelOff {
		t.Fatalf("Pixel(0,0) = %d, want %d", got, led.PixelOff)
	}
}
