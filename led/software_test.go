package led

import (
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func render(t *testing.T, fb *FrameBuffer, scale int, opts ...CompositorOption) *SoftwareSurface {
	t.Helper()
	s := NewSoftwareSurface(scale)
	c, err := NewCompositor(s, fb, opts...)
	if err != nil {
		t.Fatalf("NewCompositor() error = %v", err)
	}
	c.Render()
	return s
}

func TestTintEndpoints(t *testing.T) {
	p := DefaultGlowParams()
	if got := toRGBA(p.Tint(0)); got != (color.RGBA{R: 51, A: 255}) {
		t.Fatalf("Tint(0) = %v, want dark red", got)
	}
	if got := toRGBA(p.Tint(1)); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("Tint(1) = %v, want red", got)
	}
	if got := toRGBA(p.Tint(4)); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("Tint(4) = %v, want clamp to red", got)
	}
}

func TestSoftwareDarkAndLit(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	fb.SetPixel(4, 4, true)
	img := render(t, fb, 1).Image()

	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 51, A: 255}) {
		t.Fatalf("unlit pixel = %v, want (51,0,0)", got)
	}
	// A radius of 0.2 keeps every tap of a texel centre inside the texel.
	if got := img.RGBAAt(4, 4); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("lit pixel = %v, want (255,0,0)", got)
	}
}

func TestSoftwareBlurAtTexelEdge(t *testing.T) {
	fb := NewFrameBuffer(32, 32)
	fb.SetPixel(10, 10, true)
	img := render(t, fb, 5).Image()

	// Output (54,52) samples texel coordinate (10.9,10.5): six of nine taps
	// land on the lit texel.
	got := img.RGBAAt(54, 52)
	want := math.Round((0.2 + 0.8*6.0/9.0) * 255)
	if math.Abs(float64(got.R)-want) > 1 || got.G != 0 || got.B != 0 {
		t.Fatalf("edge pixel = %v, want R=%v", got, want)
	}
}

func TestSoftwareInvalidRadiusFillsDark(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.SetPixel(1, 1, true)
	img := render(t, fb, 1, WithBlurRadius(math.NaN())).Image()
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 51, A: 255}) {
		t.Fatalf("pixel = %v, want dark fill", got)
	}
}

func TestSoftwareCustomTint(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.SetPixel(0, 0, true)
	dark := colorful.Color{R: 0, G: 0, B: 0}
	bright := colorful.Color{R: 0, G: 1, B: 0}
	img := render(t, fb, 1, WithTint(dark, bright)).Image()
	if got := img.RGBAAt(0, 0); got != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("lit pixel = %v, want green", got)
	}
}

func TestSoftwareUncompiled(t *testing.T) {
	s := NewSoftwareSurface(1)
	d, err := s.Acquire(2, 2)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	dev := d.(*SoftwareDevice)
	if err := dev.CompileProgram(ProgramSource{Name: "empty"}); err == nil {
		t.Fatalf("CompileProgram(empty) error = nil")
	}
	if err := dev.NewTexture(2, 2, []byte{255, 255, 255, 255}); err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	if err := dev.NewQuad(FullScreenQuad()); err != nil {
		t.Fatalf("NewQuad() error = %v", err)
	}
	dev.Draw(DefaultGlowParams())
	if got := dev.Image().RGBAAt(0, 0); got.R != 51 {
		t.Fatalf("uncompiled draw = %v, want dark fill", got)
	}
	if dev.Frames() != 1 {
		t.Fatalf("Frames() = %d, want 1", dev.Frames())
	}
}

func TestSoftwareTextureSizeMismatch(t *testing.T) {
	d, _ := NewSoftwareSurface(1).Acquire(2, 2)
	if err := d.NewTexture(3, 2, nil); err == nil {
		t.Fatalf("NewTexture(3x2) on 2x2 surface error = nil")
	}
	if _, err := NewSoftwareSurface(1).Acquire(0, 2); err == nil {
		t.Fatalf("Acquire(0x2) error = nil")
	}
}

func TestFullScreenQuad(t *testing.T) {
	q := FullScreenQuad()
	tl := q[2]
	if tl.X != -1 || tl.Y != 1 || tl.U != 0 || tl.V != 0 {
		t.Fatalf("top-left = %+v, want NDC (-1,1) UV (0,0)", tl)
	}
	br := q[1]
	if br.X != 1 || br.Y != -1 || br.U != 1 || br.V != 1 {
		t.Fatalf("bottom-right = %+v, want NDC (1,-1) UV (1,1)", br)
	}
}

func TestSoftwareSurfaceDevice(t *testing.T) {
	s := NewSoftwareSurface(1)
	if s.Device() != nil || s.Image() != nil {
		t.Fatalf("surface has a device before Acquire")
	}

	fb := NewFrameBuffer(2, 2)
	c, err := NewCompositor(s, fb)
	if err != nil {
		t.Fatalf("NewCompositor() error = %v", err)
	}
	fb.SetPixel(1, 0, true)
	c.Render()

	dev := s.Device()
	if dev == nil {
		t.Fatalf("Device() = nil after Acquire")
	}
	want := []byte{0, PixelOn, 0, 0}
	tex := dev.Texture()
	for i := range want {
		if tex[i] != want[i] {
			t.Fatalf("Texture()[%d] = %d, want %d", i, tex[i], want[i])
		}
	}
}
