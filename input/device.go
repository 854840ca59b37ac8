package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Device is the raw state the host exposes for one tick.
type Device interface {
	IsKeyPressed(key ebiten.Key) bool
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	CursorPosition() (x, y int)
	Wheel() (xoff, yoff float64)
}

// EbitenDevice reads the live keyboard and mouse through ebiten.
type EbitenDevice struct{}

func (EbitenDevice) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenDevice) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (EbitenDevice) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (EbitenDevice) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (EbitenDevice) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenDevice) Wheel() (float64, float64) {
	return ebiten.Wheel()
}
