package component

import "github.com/go-gl/mathgl/mgl64"

// CursorWorldPosition is where the pointer hits the ground plane (Y = 0).
type CursorWorldPosition struct {
	Position mgl64.Vec3
	Valid    bool
}

var CursorWorldPositionComponent = NewComponent[CursorWorldPosition]()
