package component

import "github.com/go-gl/mathgl/mgl64"

// Action is a named, device-independent input signal.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionLook
	ActionZoom
	ActionAllowLook
	ActionShoot

	ActionCount
)

var actionNames = [ActionCount]string{
	ActionUp:        "up",
	ActionDown:      "down",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionLook:      "look",
	ActionZoom:      "zoom",
	ActionAllowLook: "allow_look",
	ActionShoot:     "shoot",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction maps a config name back to its Action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// ActionState is the per-tick input snapshot for an entity.
type ActionState struct {
	held  [ActionCount]bool
	fresh [ActionCount]bool
	value [ActionCount]float64
	pair  [ActionCount]mgl64.Vec2

	// Pointer is the cursor position in screen pixels.
	Pointer mgl64.Vec2
}

var ActionStateComponent = NewComponent[ActionState]()

func (s *ActionState) Pressed(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	return s.held[a]
}

// JustPressed reports whether a went from released to held this tick.
func (s *ActionState) JustPressed(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	return s.fresh[a]
}

func (s *ActionState) Value(a Action) float64 {
	if a < 0 || a >= ActionCount {
		return 0
	}
	return s.value[a]
}

func (s *ActionState) AxisPair(a Action) mgl64.Vec2 {
	if a < 0 || a >= ActionCount {
		return mgl64.Vec2{}
	}
	return s.pair[a]
}

func (s *ActionState) SetPressed(a Action, held bool) {
	if a >= 0 && a < ActionCount {
		s.held[a] = held
	}
}

func (s *ActionState) SetJustPressed(a Action, fresh bool) {
	if a >= 0 && a < ActionCount {
		s.fresh[a] = fresh
	}
}

func (s *ActionState) SetValue(a Action, v float64) {
	if a >= 0 && a < ActionCount {
		s.value[a] = v
	}
}

func (s *ActionState) SetAxisPair(a Action, v mgl64.Vec2) {
	if a >= 0 && a < ActionCount {
		s.pair[a] = v
	}
}
