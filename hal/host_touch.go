//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ledsim/led"
)

var touchIDs []ebiten.TouchID

// poll collects every active touch plus a held left mouse button, so the
// panel can be drawn on from a desktop as well.
func (t *hostTouch) poll(m led.TouchMapper) {
	var pts []led.TouchPoint

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, led.TouchPoint{X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, led.TouchPoint{X: float64(x), Y: float64(y)})
	}

	t.push(TouchEvent{Points: pts, Mapper: m})
}
