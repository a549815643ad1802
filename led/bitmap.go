package led

// Buffer is a read-only 2D grid of cell values. A zero cell is off; any other
// value is on.
type Buffer interface {
	Size() (width, height int)
	At(x, y int) uint8
}

// Bitmap is a row-major grid of cell values with its origin at the top left.
type Bitmap struct {
	width  int
	height int
	pix    []uint8
}

// NewBitmap returns a cleared width x height bitmap.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{width: width, height: height, pix: make([]uint8, width*height)}
}

func (b *Bitmap) Size() (width, height int) { return b.width, b.height }

// Pix returns the backing row-major slice.
func (b *Bitmap) Pix() []uint8 { return b.pix }

// At returns the cell at (x, y), or 0 outside the bitmap.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// Set writes v at (x, y). Writes outside the bitmap are dropped.
func (b *Bitmap) Set(x, y int, v uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = v
}

// Clear zeroes every cell in place.
func (b *Bitmap) Clear() {
	for i := range b.pix {
		b.pix[i] = 0
	}
}
