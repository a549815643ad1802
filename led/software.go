package led

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// SoftwareSurface is an off-screen surface rasterized on the CPU. It runs the
// same glow program as the GPU path and backs headless runs, the terminal
// host and snapshots.
type SoftwareSurface struct {
	scale int
	dev   *SoftwareDevice
}

// NewSoftwareSurface returns a surface whose output is scale times the grid
// size in each direction.
func NewSoftwareSurface(scale int) *SoftwareSurface {
	if scale < 1 {
		scale = 1
	}
	return &SoftwareSurface{scale: scale}
}

func (s *SoftwareSurface) Acquire(width, height int) (Device, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("software surface %dx%d: %w", width, height, ErrNoContext)
	}
	s.dev = &SoftwareDevice{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width*s.scale, height*s.scale)),
	}
	return s.dev, nil
}

// Device returns the most recently acquired device, or nil.
func (s *SoftwareSurface) Device() *SoftwareDevice { return s.dev }

// Image returns the last drawn frame, or nil before Acquire.
func (s *SoftwareSurface) Image() *image.RGBA {
	if s.dev == nil {
		return nil
	}
	return s.dev.Image()
}

// SoftwareDevice implements Device on the CPU.
type SoftwareDevice struct {
	width  int
	height int

	compiled bool
	tex      []byte
	quad     [4]QuadVertex
	img      *image.RGBA
	frames   uint64
}

// CompileProgram accepts the glow program. There is nothing to compile on the
// CPU; an empty fragment stage is still rejected so both paths fail alike.
func (d *SoftwareDevice) CompileProgram(src ProgramSource) error {
	if len(src.Fragment) == 0 {
		d.compiled = false
		return errors.New("empty fragment stage")
	}
	d.compiled = true
	return nil
}

func (d *SoftwareDevice) NewTexture(width, height int, pix []byte) error {
	if width != d.width || height != d.height {
		return fmt.Errorf("texture %dx%d does not match surface %dx%d", width, height, d.width, d.height)
	}
	d.tex = make([]byte, width*height)
	copy(d.tex, pix)
	return nil
}

func (d *SoftwareDevice) NewQuad(q [4]QuadVertex) error {
	if q[1].X == q[0].X || q[2].Y == q[0].Y {
		return errors.New("degenerate quad")
	}
	d.quad = q
	return nil
}

func (d *SoftwareDevice) Upload(pix []byte) {
	copy(d.tex, pix)
}

// Draw rasterizes one frame into Image().
func (d *SoftwareDevice) Draw(p GlowParams) {
	d.frames++
	b := d.img.Bounds()
	if !d.compiled || !validRadius(p.BlurRadius) {
		fill(d.img, toRGBA(p.Tint(0)))
		return
	}

	q := d.quad
	outW := float64(b.Dx())
	outH := float64(b.Dy())
	for oy := 0; oy < b.Dy(); oy++ {
		ndcY := 1 - (float64(oy)+0.5)/outH*2
		v := lerp(ndcY, q[0].Y, q[2].Y, q[0].V, q[2].V)
		ty := v * float64(d.height)
		for ox := 0; ox < b.Dx(); ox++ {
			ndcX := (float64(ox)+0.5)/outW*2 - 1
			u := lerp(ndcX, q[0].X, q[1].X, q[0].U, q[1].U)
			tx := u * float64(d.width)
			d.img.SetRGBA(b.Min.X+ox, b.Min.Y+oy, toRGBA(p.Tint(d.blur(tx, ty, p.BlurRadius))))
		}
	}
}

// Image returns the frame buffer Draw renders into.
func (d *SoftwareDevice) Image() *image.RGBA { return d.img }

// Frames returns the number of Draw calls so far.
func (d *SoftwareDevice) Frames() uint64 { return d.frames }

// Texture returns the current texture contents.
func (d *SoftwareDevice) Texture() []byte { return d.tex }

func (d *SoftwareDevice) blur(tx, ty, radius float64) float64 {
	var sum float64
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			sum += float64(d.sample(tx+float64(i)*radius, ty+float64(j)*radius))
		}
	}
	return sum / 9 / 255
}

// sample reads the nearest texel with clamp-to-edge addressing.
func (d *SoftwareDevice) sample(tx, ty float64) uint8 {
	x := clampInt(int(math.Floor(tx)), 0, d.width-1)
	y := clampInt(int(math.Floor(ty)), 0, d.height-1)
	return d.tex[y*d.width+x]
}

func lerp(t float64, t0, t1, v0, v1 float32) float64 {
	return float64(v0) + (t-float64(t0))/float64(t1-t0)*float64(v1-v0)
}

func validRadius(r float64) bool {
	return r >= 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func fill(img *image.RGBA, c color.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
