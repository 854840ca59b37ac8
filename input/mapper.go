package input

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/snowfield/ecs/component"
)

// Mapper turns raw device state into a semantic ActionState once per tick.
type Mapper struct {
	device   Device
	bindings Bindings

	lastCursor mgl64.Vec2
	primed     bool
}

func NewMapper(device Device, bindings Bindings) *Mapper {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Mapper{device: device, bindings: bindings}
}

// SetBindings swaps the action map, e.g. after a prefab reload.
func (m *Mapper) SetBindings(b Bindings) {
	if b != nil {
		m.bindings = b
	}
}

// Snapshot polls the device. Mouse motion is the cursor delta since the previous
// snapshot, so the first call reports no motion.
func (m *Mapper) Snapshot() component.ActionState {
	var state component.ActionState
	if m == nil || m.device == nil {
		return state
	}

	cx, cy := m.device.CursorPosition()
	cursor := mgl64.Vec2{float64(cx), float64(cy)}
	motion := mgl64.Vec2{}
	if m.primed {
		motion = cursor.Sub(m.lastCursor)
	}
	m.lastCursor = cursor
	m.primed = true
	state.Pointer = cursor

	wheelX, wheelY := m.device.Wheel()

	for action, b := range m.bindings {
		state.SetPressed(action, m.held(b))
		state.SetJustPressed(action, m.justPressed(b))

		switch b.Axis {
		case AxisMouseMotion:
			state.SetAxisPair(action, motion.Mul(b.Scale))
		case AxisWheelY:
			state.SetValue(action, wheelY*b.Scale)
		case AxisWheelX:
			state.SetValue(action, wheelX*b.Scale)
		}
	}
	return state
}

func (m *Mapper) held(b Binding) bool {
	for _, k := range b.Keys {
		if m.device.IsKeyPressed(k) {
			return true
		}
	}
	for _, mb := range b.MouseButtons {
		if m.device.IsMouseButtonPressed(mb) {
			return true
		}
	}
	return false
}

func (m *Mapper) justPressed(b Binding) bool {
	for _, k := range b.Keys {
		if m.device.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, mb := range b.MouseButtons {
		if m.device.IsMouseButtonJustPressed(mb) {
			return true
		}
	}
	return false
}
