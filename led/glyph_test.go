package led

import "testing"

func TestFontCoversPrintableASCII(t *testing.T) {
	for r := rune(0x20); r <= 0x7E; r++ {
		if _, ok := LookupGlyph(r); !ok {
			t.Fatalf("LookupGlyph(%q) missing", r)
		}
	}
	if _, ok := LookupGlyph('☃'); ok {
		t.Fatalf("LookupGlyph(snowman) = ok, want missing")
	}
}

// Every glyph cell must come out exactly as the bit rows describe.
func TestRenderLineDecodesEveryGlyph(t *testing.T) {
	r := NewRenderer(GlyphWidth+1, GlyphHeight)
	for ch, g := range font5x7 {
		r.Clear()
		r.RenderLine(string(ch), 0)
		buf := r.Buffer()
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				want := (g[y] >> uint(GlyphWidth-x-1)) & 1
				if got := buf.At(x, y); got != want {
					t.Fatalf("%q at (%d,%d) = %d, want %d", ch, x, y, got, want)
				}
			}
			if got := buf.At(GlyphWidth, y); got != 0 {
				t.Fatalf("%q spacing column row %d = %d, want 0", ch, y, got)
			}
		}
	}
}

func TestRenderLineUnmappedIsBlank(t *testing.T) {
	r := NewRenderer(16, 8)
	r.RenderLine("☃", 0)
	for _, v := range r.Buffer().Pix() {
		if v != 0 {
			t.Fatalf("unmapped character lit a cell")
		}
	}
}

func TestRenderTextStacksLines(t *testing.T) {
	r := NewRenderer(32, 32)
	buf := r.RenderText([]string{"", "A"})

	if r.LineHeight() != 9 {
		t.Fatalf("LineHeight() = %d, want 9", r.LineHeight())
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 32; x++ {
			if buf.At(x, y) != 0 {
				t.Fatalf("blank line lit (%d,%d)", x, y)
			}
		}
	}
	// Top row of 'A' is 01110.
	if buf.At(1, 9) != 1 || buf.At(0, 9) != 0 {
		t.Fatalf("'A' not drawn at row 9")
	}
}

func TestRenderLineAdvancesSixColumns(t *testing.T) {
	r := NewRenderer(32, 8)
	r.RenderLine("AB", 0)
	buf := r.Buffer()
	// Top row of 'B' is 11110 starting at x=6.
	for x, want := range []uint8{1, 1, 1, 1, 0} {
		if got := buf.At(6+x, 0); got != want {
			t.Fatalf("B top row x=%d: got %d, want %d", 6+x, got, want)
		}
	}
	if buf.At(5, 0) != 0 {
		t.Fatalf("spacing column lit")
	}
}

func TestRenderLineClips(t *testing.T) {
	r := NewRenderer(8, 4)
	r.RenderLine("WWWWWWWW", 2)
	r.RenderLine("W", -3)
	r.RenderText([]string{"a", "b", "c", "d"})
}

func TestRenderTextLeavesOtherCells(t *testing.T) {
	r := NewRenderer(16, 16)
	r.Buffer().Set(15, 15, 1)
	r.RenderText([]string{"A"})
	if r.Buffer().At(15, 15) != 1 {
		t.Fatalf("cell outside the glyph cells was touched")
	}
}

func TestUppercase(t *testing.T) {
	lower := NewRenderer(16, 8, WithUppercase(true))
	upper := NewRenderer(16, 8)
	lower.RenderLine("ab", 0)
	upper.RenderLine("AB", 0)
	for i, v := range upper.Buffer().Pix() {
		if lower.Buffer().Pix()[i] != v {
			t.Fatalf("folded text differs at %d", i)
		}
	}
}

func TestLineWidth(t *testing.T) {
	r := NewRenderer(16, 8)
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"A", 5},
		{"AB", 11},
		{"äöü", 17},
	}
	for _, tt := range tests {
		if got := r.LineWidth(tt.in); got != tt.want {
			t.Fatalf("LineWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWithLineSpacing(t *testing.T) {
	r := NewRenderer(16, 16, WithLineSpacing(0))
	buf := r.RenderText([]string{"", "A"})
	// Top row of 'A' is 01110; with no spacing the second line starts at 7.
	if buf.At(1, 7) != 1 {
		t.Fatalf("second line not at row 7")
	}
	for x := 0; x < 16; x++ {
		if buf.At(x, 6) != 0 {
			t.Fatalf("row 6 lit at x=%d", x)
		}
	}
}

func TestWithCharSizeNarrow(t *testing.T) {
	r := NewRenderer(16, 8, WithCharSize(4, 7))
	if r.CharAdvance() != 5 {
		t.Fatalf("CharAdvance() = %d, want 5", r.CharAdvance())
	}
	r.RenderLine("AA", 0)
	buf := r.Buffer()
	// A four-column cell shows the low four bits: 01110 -> 1110.
	for _, x0 := range []int{0, 5} {
		for x, want := range []uint8{1, 1, 1, 0} {
			if got := buf.At(x0+x, 0); got != want {
				t.Fatalf("(%d,0) = %d, want %d", x0+x, got, want)
			}
		}
	}
	if buf.At(4, 0) != 0 {
		t.Fatalf("spacing column lit")
	}
}

func TestWithCharSizeWide(t *testing.T) {
	r := NewRenderer(16, 10, WithCharSize(10, 9))
	r.Buffer().Set(0, 8, 1)
	r.RenderLine("A", 0)
	buf := r.Buffer()
	// Columns 0-4 map to bits 9-5 and stay blank; the glyph sits in 5-9.
	for x := 0; x < 5; x++ {
		for y := 0; y < 9; y++ {
			if buf.At(x, y) != 0 {
				t.Fatalf("(%d,%d) lit, want blank", x, y)
			}
		}
	}
	if buf.At(6, 0) != 1 || buf.At(5, 0) != 0 {
		t.Fatalf("'A' not right-aligned in the wide cell")
	}
	// Rows past the font's seven scanlines are written blank.
	if buf.At(6, 7) != 0 || buf.At(6, 8) != 0 {
		t.Fatalf("rows past the glyph lit")
	}
}
