package led

import "math"

// TouchPoint is one pointer contact in device coordinates.
type TouchPoint struct {
	X, Y float64
}

// TouchMapper converts device coordinates into grid cells. Scale is the
// grid-to-device ratio of the surface (grid width / displayed width).
type TouchMapper struct {
	OriginX, OriginY float64
	ScaleX, ScaleY   float64
}

// Cell returns the grid cell under p, floor-rounded.
func (m TouchMapper) Cell(p TouchPoint) (x, y int) {
	x = int(math.Floor((p.X - m.OriginX) * m.ScaleX))
	y = int(math.Floor((p.Y - m.OriginY) * m.ScaleY))
	return x, y
}

// Apply lights the cell under each point, in order. Points that land outside
// the grid are ignored, as is every point when the mapper has no scale (the
// panel is not on screen). It returns the number of cells lit.
func (m TouchMapper) Apply(fb *FrameBuffer, points []TouchPoint) int {
	if m.ScaleX <= 0 || m.ScaleY <= 0 {
		return 0
	}
	n := 0
	for _, p := range points {
		x, y := m.Cell(p)
		if !fb.inBounds(x, y) {
			continue
		}
		fb.SetPixel(x, y, true)
		n++
	}
	return n
}
