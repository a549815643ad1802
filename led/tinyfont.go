package led

import (
	"image/color"
	"sort"
	"sync"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Displayer adapts a FrameBuffer to drivers.Displayer so tinyfont and other
// tinygo drawing code can target the LED grid.
type Displayer struct {
	fb *FrameBuffer
}

var _ drivers.Displayer = (*Displayer)(nil)

// Displayer returns a drivers.Displayer view of f.
func (f *FrameBuffer) Displayer() *Displayer { return &Displayer{fb: f} }

func (d *Displayer) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

// SetPixel lights the LED when any colour channel is non-zero. Pixels outside
// the grid are dropped.
func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if !d.fb.inBounds(ix, iy) {
		return
	}
	d.fb.SetPixel(ix, iy, c.R|c.G|c.B != 0)
}

func (d *Displayer) Display() error { return nil }

var (
	tinyFontOnce sync.Once
	tinyFont     tinyfont.Font
)

// TinyFont returns the built-in 5x7 font encoded as a tinyfont.Font. Glyphs
// sit on the baseline: drawing at y puts the top scanline at y-GlyphHeight.
func TinyFont() *tinyfont.Font {
	tinyFontOnce.Do(func() {
		runes := make([]rune, 0, len(font5x7))
		for r := range font5x7 {
			runes = append(runes, r)
		}
		sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

		glyphs := make([]tinyfont.Glyph, 0, len(runes))
		for _, r := range runes {
			glyphs = append(glyphs, tinyfont.Glyph{
				Rune:     r,
				Width:    GlyphWidth,
				Height:   GlyphHeight,
				XAdvance: GlyphWidth + charSpacing,
				XOffset:  0,
				YOffset:  -GlyphHeight,
				Bitmaps:  packGlyph(font5x7[r]),
			})
		}
		tinyFont = tinyfont.Font{
			BBox:     [4]int8{GlyphWidth, GlyphHeight, 0, -GlyphHeight},
			Glyphs:   glyphs,
			YAdvance: GlyphHeight + defaultLineSpacing,
		}
	})
	return &tinyFont
}

// packGlyph flattens the scanlines into a continuous MSB-first bit stream,
// which is the layout tinyfont glyph bitmaps use.
func packGlyph(g Glyph) []byte {
	out := make([]byte, (GlyphWidth*GlyphHeight+7)/8)
	bit := 0
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if g[y]>>uint(GlyphWidth-x-1)&1 != 0 {
				out[bit/8] |= 0x80 >> uint(bit%8)
			}
			bit++
		}
	}
	return out
}

// TextWidth returns the pixel width tinyfont measures for s in the built-in
// font, including the trailing inter-character column.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(TinyFont(), s)
	return int(outbox)
}
