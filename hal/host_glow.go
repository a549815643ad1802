//go:build cgo

package hal

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"ledsim/led"
)

// ebitenSurface hands out a GPU device that draws into the current ebiten
// screen image.
type ebitenSurface struct {
	dev *ebitenDevice
}

func (s *ebitenSurface) Acquire(width, height int) (led.Device, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ebiten surface %dx%d: %w", width, height, led.ErrNoContext)
	}
	s.dev = &ebitenDevice{width: width, height: height}
	return s.dev, nil
}

// ebitenDevice runs the glow program as a Kage shader.
type ebitenDevice struct {
	width  int
	height int

	shader   *ebiten.Shader
	tex      *ebiten.Image
	rgba     []byte
	quad     [4]led.QuadVertex
	vertices [4]ebiten.Vertex
	uniforms map[string]any

	// target is the screen image of the frame being drawn.
	target *ebiten.Image
}

func (d *ebitenDevice) CompileProgram(src led.ProgramSource) error {
	sh, err := ebiten.NewShader(src.Fragment)
	if err != nil {
		return err
	}
	d.shader = sh
	return nil
}

// NewTexture allocates the LED texture. Ebiten images are always RGBA, so
// the single channel is carried in red (and mirrored into green and blue).
func (d *ebitenDevice) NewTexture(width, height int, pix []byte) error {
	if width != d.width || height != d.height {
		return fmt.Errorf("texture %dx%d does not match surface %dx%d", width, height, d.width, d.height)
	}
	d.tex = ebiten.NewImage(width, height)
	d.rgba = make([]byte, width*height*4)
	d.Upload(pix)
	return nil
}

func (d *ebitenDevice) NewQuad(q [4]led.QuadVertex) error {
	d.quad = q
	return nil
}

func (d *ebitenDevice) Upload(pix []byte) {
	expandGray(d.rgba, pix)
	d.tex.WritePixels(d.rgba)
}

func (d *ebitenDevice) Draw(p led.GlowParams) {
	if d.target == nil {
		return
	}
	if d.shader == nil {
		d.target.Fill(rgba(p.Dark))
		return
	}

	b := d.target.Bounds()
	tw, th := float32(b.Dx()), float32(b.Dy())
	for i, v := range d.quad {
		d.vertices[i] = ebiten.Vertex{
			DstX:   float32(b.Min.X) + (v.X+1)/2*tw,
			DstY:   float32(b.Min.Y) + (1-v.Y)/2*th,
			SrcX:   v.U * float32(d.width),
			SrcY:   v.V * float32(d.height),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}

	if d.uniforms == nil {
		d.uniforms = map[string]any{}
	}
	d.uniforms["BlurRadius"] = float32(p.BlurRadius)
	d.uniforms["Dark"] = vec4(p.Dark)
	d.uniforms["Bright"] = vec4(p.Bright)

	op := &ebiten.DrawTrianglesShaderOptions{Uniforms: d.uniforms}
	op.Images[0] = d.tex
	d.target.DrawTrianglesShader(d.vertices[:], led.QuadStripIndices[:], d.shader, op)
}

func vec4(c colorful.Color) []float32 {
	return []float32{float32(c.R), float32(c.G), float32(c.B), 1}
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
