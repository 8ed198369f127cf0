package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/debugui"
	"github.com/plus3/pong/pong"
)

// cursorPointer reads the mouse cursor. Positions outside the playfield or
// captured by the debug overlay are ignored.
type cursorPointer struct {
	geometry pong.Geometry
	capture  *debugui.ImguiInputState
}

func (c *cursorPointer) PointerY() (float64, bool) {
	if c.capture != nil && c.capture.WantCaptureMouse {
		return 0, false
	}
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || float64(x) > c.geometry.Width || float64(y) > c.geometry.Height {
		return 0, false
	}
	return float64(y), true
}
