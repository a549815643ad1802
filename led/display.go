package led

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
)

var litColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Display ties the text renderer to the framebuffer: each Update replaces the
// whole panel with freshly rendered lines.
type Display struct {
	fb  *FrameBuffer
	r   *Renderer
	log Logger

	current  []string
	overflow []int
}

// NewDisplay returns a display system rendering into fb. A nil logger
// discards diagnostics.
func NewDisplay(fb *FrameBuffer, log Logger, opts ...RendererOption) *Display {
	if log == nil {
		log = nopLogger{}
	}
	return &Display{
		fb:  fb,
		r:   NewRenderer(fb.Width(), fb.Height(), opts...),
		log: log,
	}
}

func (d *Display) FrameBuffer() *FrameBuffer { return d.fb }
func (d *Display) Renderer() *Renderer       { return d.r }

// Lines returns the text shown by the last Update.
func (d *Display) Lines() []string {
	return append([]string(nil), d.current...)
}

// Update clears the render buffer, renders lines and applies the result to
// the framebuffer.
func (d *Display) Update(lines []string) {
	d.current = append(d.current[:0], lines...)
	d.r.Clear()
	d.fb.ApplyBuffer(d.r.RenderText(lines))
	d.checkOverflow(lines)
}

// DrawText draws s with its top-left corner at (x, y) straight into the
// framebuffer, outside the line grid. Only lit pixels are written.
func (d *Display) DrawText(x, y int, s string) {
	tinyfont.WriteLine(d.fb.Displayer(), TinyFont(), int16(x), int16(y+GlyphHeight), s, litColor)
}

// checkOverflow logs lines that do not fit the panel, once per change in the
// set of clipped lines.
func (d *Display) checkOverflow(lines []string) {
	var over []int
	for i, line := range lines {
		top := i * d.r.LineHeight()
		if d.r.LineWidth(line) > d.fb.Width() || (line != "" && top+d.r.charHeight > d.fb.Height()) {
			over = append(over, i)
		}
	}
	if equalInts(over, d.overflow) {
		return
	}
	d.overflow = over
	for _, i := range over {
		d.log.WriteLineString(fmt.Sprintf("display: line %d clipped (%dpx wide, panel %dx%d)",
			i, d.r.LineWidth(lines[i]), d.fb.Width(), d.fb.Height()))
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
