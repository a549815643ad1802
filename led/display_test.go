package led

import (
	"strings"
	"testing"
)

func TestDisplayUpdateScenario(t *testing.T) {
	fb := NewFrameBuffer(256, 128)
	d := NewDisplay(fb, nil)
	lines := []string{"", " 12:00:00", "", " Bus line 1234     arrives in  10 minutes"}
	d.Update(lines)

	for y := 0; y < 7; y++ {
		for x := 0; x < 256; x++ {
			if fb.Pixel(x, y) != PixelOff {
				t.Fatalf("first line lit at (%d,%d)", x, y)
			}
		}
	}

	// Line 1 starts with a space, so its first glyph column is blank and
	// '1' (top row 00100) begins at x=6.
	for y := 9; y < 16; y++ {
		if fb.Pixel(0, y) != PixelOff {
			t.Fatalf("leading space lit at (0,%d)", y)
		}
	}
	if fb.Pixel(8, 9) != PixelOn {
		t.Fatalf("'1' top row not lit at (8,9)")
	}

	if got := d.Lines(); len(got) != 4 || got[3] != lines[3] {
		t.Fatalf("Lines() = %q", got)
	}

	img := render(t, fb, 1).Image()
	if got := img.RGBAAt(8, 9); got.R != 255 {
		t.Fatalf("composited lit pixel = %v, want full red", got)
	}
}

func TestDisplayUpdateReplacesText(t *testing.T) {
	fb := NewFrameBuffer(32, 16)
	d := NewDisplay(fb, nil)
	d.Update([]string{"WWW"})
	d.Update([]string{""})
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			if fb.Pixel(x, y) != PixelOff {
				t.Fatalf("stale pixel at (%d,%d)", x, y)
			}
		}
	}
}

func TestDisplayLogsOverflowOnce(t *testing.T) {
	var log lineLog
	d := NewDisplay(NewFrameBuffer(16, 16), &log)

	d.Update([]string{"ABCDEF"})
	d.Update([]string{"ABCDEF"})
	if len(log) != 1 || !strings.Contains(log[0], "line 0 clipped") {
		t.Fatalf("log = %q, want a single clip message", log)
	}

	d.Update([]string{"AB"})
	d.Update([]string{"ABCDEF"})
	if len(log) != 2 {
		t.Fatalf("log = %q, want the clip reported again after it cleared", log)
	}
}

func TestDisplayRendererOptions(t *testing.T) {
	d := NewDisplay(NewFrameBuffer(32, 32), nil, WithLineSpacing(0), WithUppercase(true))
	r := d.Renderer()
	if r.LineHeight() != GlyphHeight {
		t.Fatalf("LineHeight() = %d, want %d", r.LineHeight(), GlyphHeight)
	}
	if r.LineWidth("ab") != 11 {
		t.Fatalf("LineWidth(ab) = %d, want 11", r.LineWidth("ab"))
	}
	if d.FrameBuffer().Width() != 32 {
		t.Fatalf("FrameBuffer() width = %d, want 32", d.FrameBuffer().Width())
	}
}
