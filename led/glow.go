package led

import (
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultBlurRadius scales the 3x3 blur tap offsets, in texels.
const DefaultBlurRadius = 0.2

// Default tints: dim red for an unlit LED, full red for a lit one.
var (
	DefaultDarkTint   = colorful.Color{R: 0.2, G: 0, B: 0}
	DefaultBrightTint = colorful.Color{R: 1, G: 0, B: 0}
)

// GlowParams are the uniforms of the glow program.
type GlowParams struct {
	BlurRadius float64
	Dark       colorful.Color
	Bright     colorful.Color
}

// DefaultGlowParams returns the stock red LED look.
func DefaultGlowParams() GlowParams {
	return GlowParams{
		BlurRadius: DefaultBlurRadius,
		Dark:       DefaultDarkTint,
		Bright:     DefaultBrightTint,
	}
}

// Tint maps a blurred intensity in [0,1] to the output colour.
func (p GlowParams) Tint(v float64) colorful.Color {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return p.Dark.BlendRgb(p.Bright, v)
}

// ProgramSource is the source handed to a Device for compilation.
type ProgramSource struct {
	Name     string
	Fragment []byte
}

// GlowProgram is the fragment stage: a 3x3 equally weighted box blur over the
// single-channel LED texture, then a linear blend between the two tints.
// Sampling clamps to the texture edge.
var GlowProgram = ProgramSource{
	Name: "glow",
	Fragment: []byte(`//kage:unit pixels

package main

var BlurRadius float
var Dark vec4
var Bright vec4

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	limit := origin + imageSrc0Size() - vec2(0.5)
	blur := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p := srcPos + vec2(float(i-1), float(j-1))*BlurRadius
			p = clamp(p, origin, limit)
			blur += imageSrc0UnsafeAt(p).r / 9.0
		}
	}
	return mix(Dark, Bright, blur)
}
`),
}

// QuadVertex is one corner of the full-screen quad: a position in normalized
// device coordinates and the texture coordinate sampled there.
type QuadVertex struct {
	X, Y float32
	U, V float32
}

// FullScreenQuad returns the four corners in triangle-strip order
// (bottom-left, bottom-right, top-left, top-right). V is flipped so texture
// row 0 lands on the top edge.
func FullScreenQuad() [4]QuadVertex {
	corners := [4][2]float32{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	var q [4]QuadVertex
	for i, c := range corners {
		q[i] = QuadVertex{
			X: c[0],
			Y: c[1],
			U: c[0]*0.5 + 0.5,
			V: 0.5 - c[1]*0.5,
		}
	}
	return q
}

// QuadStripIndices expands the triangle strip into a triangle list.
var QuadStripIndices = [6]uint16{0, 1, 2, 2, 1, 3}
