package led

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	defaultLineSpacing = 2
	charSpacing        = 1
)

// Renderer rasterizes lines of text into a scratch bitmap using the built-in
// 5x7 font.
type Renderer struct {
	buf *Bitmap

	charWidth   int
	charHeight  int
	lineSpacing int

	upper bool
	fold  cases.Caser
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithCharSize overrides the glyph cell size. Rows past the font's seven
// scanlines render blank.
func WithCharSize(width, height int) RendererOption {
	return func(r *Renderer) {
		if width > 0 {
			r.charWidth = width
		}
		if height > 0 {
			r.charHeight = height
		}
	}
}

// WithLineSpacing sets the number of blank rows between lines.
func WithLineSpacing(n int) RendererOption {
	return func(r *Renderer) {
		if n >= 0 {
			r.lineSpacing = n
		}
	}
}

// WithUppercase folds text to upper case before glyph lookup.
func WithUppercase(on bool) RendererOption {
	return func(r *Renderer) { r.upper = on }
}

// NewRenderer returns a renderer drawing into a width x height bitmap.
func NewRenderer(width, height int, opts ...RendererOption) *Renderer {
	r := &Renderer{
		buf:         NewBitmap(width, height),
		charWidth:   GlyphWidth,
		charHeight:  GlyphHeight,
		lineSpacing: defaultLineSpacing,
		fold:        cases.Upper(language.Und),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Buffer returns the scratch bitmap. It is reused across renders.
func (r *Renderer) Buffer() *Bitmap { return r.buf }

// LineHeight is the vertical advance between lines.
func (r *Renderer) LineHeight() int { return r.charHeight + r.lineSpacing }

// CharAdvance is the horizontal advance between characters.
func (r *Renderer) CharAdvance() int { return r.charWidth + charSpacing }

// LineWidth returns the lit width of text in pixels, without the spacing
// column after the last character.
func (r *Renderer) LineWidth(text string) int {
	if r.upper {
		text = r.fold.String(text)
	}
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	return n*r.CharAdvance() - charSpacing
}

// Clear blanks the scratch bitmap.
func (r *Renderer) Clear() { r.buf.Clear() }

// RenderText draws lines top to bottom starting at row 0 and returns the
// scratch bitmap. Cells outside the glyph cells are left as they were.
func (r *Renderer) RenderText(lines []string) *Bitmap {
	y := 0
	for _, line := range lines {
		r.RenderLine(line, y)
		y += r.LineHeight()
	}
	return r.buf
}

// RenderLine draws one line with its top edge at startY. Characters without a
// glyph render as blank cells; anything past the bitmap edge is clipped.
func (r *Renderer) RenderLine(text string, startY int) {
	if r.upper {
		text = r.fold.String(text)
	}
	x := 0
	for _, ch := range text {
		g, _ := LookupGlyph(ch)
		r.drawGlyph(g, x, startY)
		x += r.CharAdvance()
	}
}

func (r *Renderer) drawGlyph(g Glyph, startX, startY int) {
	for y := 0; y < r.charHeight; y++ {
		row := g.Row(y)
		for x := 0; x < r.charWidth; x++ {
			shift := r.charWidth - x - 1
			var v uint8
			if shift < 8 {
				v = (row >> uint(shift)) & 1
			}
			r.buf.Set(startX+x, startY+y, v)
		}
	}
}
