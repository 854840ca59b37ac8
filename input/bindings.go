package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/prefabs"
)

var (
	ErrUnknownAction      = errors.New("input: unknown action")
	ErrUnknownKey         = errors.New("input: unknown key")
	ErrUnknownMouseButton = errors.New("input: unknown mouse button")
	ErrUnknownAxis        = errors.New("input: unknown axis")
)

// Axis names a continuous device source.
type Axis string

const (
	AxisNone        Axis = ""
	AxisMouseMotion Axis = "mouse_motion"
	AxisWheelY      Axis = "wheel_y"
	AxisWheelX      Axis = "wheel_x"
)

// Binding maps one action to its device sources. Buttons make the action held,
// Axis feeds its value or axis pair.
type Binding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
	Axis         Axis
	Scale        float64
}

// Bindings is the full action map.
type Bindings map[component.Action]Binding

// DefaultBindings mirrors the shipped prefab: WASD/arrows to move, mouse motion to
// look while the right button is held, the wheel to zoom and left click to shoot.
func DefaultBindings() Bindings {
	return Bindings{
		component.ActionUp:        {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
		component.ActionDown:      {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
		component.ActionLeft:      {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
		component.ActionRight:     {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
		component.ActionLook:      {Axis: AxisMouseMotion, Scale: 1},
		component.ActionZoom:      {Axis: AxisWheelY, Scale: -1},
		component.ActionAllowLook: {MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight}},
		component.ActionShoot:     {MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft}},
	}
}

// ParseBindings turns action-name keyed specs into Bindings. Actions missing from
// specs keep their default binding.
func ParseBindings(specs map[string]prefabs.BindingSpec) (Bindings, error) {
	out := DefaultBindings()
	for name, spec := range specs {
		action, ok := component.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		b := Binding{Scale: 1}
		for _, k := range spec.Keys {
			key, err := parseKey(k)
			if err != nil {
				return nil, fmt.Errorf("input: binding %s: %w", name, err)
			}
			b.Keys = append(b.Keys, key)
		}
		for _, mb := range spec.MouseButtons {
			button, err := parseMouseButton(mb)
			if err != nil {
				return nil, fmt.Errorf("input: binding %s: %w", name, err)
			}
			b.MouseButtons = append(b.MouseButtons, button)
		}
		switch axis := Axis(spec.Axis); axis {
		case AxisNone, AxisMouseMotion, AxisWheelX, AxisWheelY:
			b.Axis = axis
		default:
			return nil, fmt.Errorf("input: binding %s: %w: %q", name, ErrUnknownAxis, spec.Axis)
		}
		if spec.Scale != nil {
			b.Scale = *spec.Scale
		}
		out[action] = b
	}
	return out, nil
}

// parseKey accepts ebiten key names such as "W", "Space" or "ArrowUp".
func parseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return key, nil
}

func parseMouseButton(name string) (ebiten.MouseButton, error) {
	switch strings.ToLower(name) {
	case "left":
		return ebiten.MouseButtonLeft, nil
	case "right":
		return ebiten.MouseButtonRight, nil
	case "middle":
		return ebiten.MouseButtonMiddle, nil
	case "back":
		return ebiten.MouseButton3, nil
	case "forward":
		return ebiten.MouseButton4, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMouseButton, name)
}
