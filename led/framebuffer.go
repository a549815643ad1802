package led

import (
	"errors"
	"fmt"
	"sync"
)

// Pixel states stored in a FrameBuffer.
const (
	PixelOff uint8 = 0
	PixelOn  uint8 = 255
)

// ErrInvalidCoordinate is returned by Set for cells outside the grid.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// FrameBuffer is the authoritative on/off state of every LED, one byte per
// cell, row-major with the origin at the top left. Its size never changes.
type FrameBuffer struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []uint8
}

// NewFrameBuffer returns a width x height grid with every LED off.
func NewFrameBuffer(width, height int) *FrameBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &FrameBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

func (f *FrameBuffer) Width() int  { return f.width }
func (f *FrameBuffer) Height() int { return f.height }

// SetPixel switches the LED at (x, y). The coordinate is not validated;
// callers must stay within Width() x Height().
func (f *FrameBuffer) SetPixel(x, y int, on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pix[y*f.width+x] = state(on)
}

// Set is the bounds-checked form of SetPixel.
func (f *FrameBuffer) Set(x, y int, on bool) error {
	if !f.inBounds(x, y) {
		return fmt.Errorf("set pixel (%d,%d) on %dx%d grid: %w", x, y, f.width, f.height, ErrInvalidCoordinate)
	}
	f.SetPixel(x, y, on)
	return nil
}

// Pixel returns the stored state at (x, y), or PixelOff outside the grid.
func (f *FrameBuffer) Pixel(x, y int) uint8 {
	if !f.inBounds(x, y) {
		return PixelOff
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pix[y*f.width+x]
}

// ApplyBuffer replaces every cell covered by src: non-zero cells turn on,
// zero cells turn off. Cells beyond src's size are untouched. A nil src,
// including a nil *Bitmap, is a no-op.
func (f *FrameBuffer) ApplyBuffer(src Buffer) {
	if b, ok := src.(*Bitmap); src == nil || ok && b == nil {
		return
	}
	w, h := src.Size()
	if w > f.width {
		w = f.width
	}
	if h > f.height {
		h = f.height
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for y := 0; y < h; y++ {
		row := f.pix[y*f.width : y*f.width+w]
		for x := range row {
			row[x] = state(src.At(x, y) != 0)
		}
	}
}

// Clear switches every LED off.
func (f *FrameBuffer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.pix {
		f.pix[i] = PixelOff
	}
}

// Snapshot copies the grid into dst and returns the number of bytes copied.
func (f *FrameBuffer) Snapshot(dst []byte) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copy(dst, f.pix)
}

func (f *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

func state(on bool) uint8 {
	if on {
		return PixelOn
	}
	return PixelOff
}
