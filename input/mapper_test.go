package input

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/prefabs"
)

type fakeDevice struct {
	keys        map[ebiten.Key]bool
	buttons     map[ebiten.MouseButton]bool
	freshKeys   map[ebiten.Key]bool
	freshButton map[ebiten.MouseButton]bool
	x, y        int
	wheelY      float64
}

func (d *fakeDevice) IsKeyPressed(k ebiten.Key) bool                     { return d.keys[k] }
func (d *fakeDevice) IsMouseButtonPressed(b ebiten.MouseButton) bool     { return d.buttons[b] }
func (d *fakeDevice) IsKeyJustPressed(k ebiten.Key) bool                 { return d.freshKeys[k] }
func (d *fakeDevice) IsMouseButtonJustPressed(b ebiten.MouseButton) bool { return d.freshButton[b] }
func (d *fakeDevice) CursorPosition() (int, int)                         { return d.x, d.y }
func (d *fakeDevice) Wheel() (float64, float64)                          { return 0, d.wheelY }

func TestMapperSnapshot(t *testing.T) {
	dev := &fakeDevice{
		keys:    map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyArrowRight: true},
		buttons: map[ebiten.MouseButton]bool{ebiten.MouseButtonRight: true},
		x:       100,
		y:       50,
		wheelY:  2,
	}
	m := NewMapper(dev, nil)

	first := m.Snapshot()
	if !first.Pressed(component.ActionUp) || !first.Pressed(component.ActionRight) {
		t.Fatalf("expected up and right to be held")
	}
	if first.Pressed(component.ActionDown) || first.Pressed(component.ActionShoot) {
		t.Fatalf("did not expect down or shoot to be held")
	}
	if !first.Pressed(component.ActionAllowLook) {
		t.Fatalf("expected allow_look from the right mouse button")
	}
	if got := first.AxisPair(component.ActionLook); got != (mgl64.Vec2{}) {
		t.Fatalf("expected no look motion on the first snapshot, got %v", got)
	}
	if got := first.Value(component.ActionZoom); got != -2 {
		t.Fatalf("expected wheel up to zoom in (-2), got %v", got)
	}
	if first.Pointer != (mgl64.Vec2{100, 50}) {
		t.Fatalf("expected pointer (100,50), got %v", first.Pointer)
	}

	dev.x, dev.y = 104, 47
	dev.wheelY = 0
	second := m.Snapshot()
	if got := second.AxisPair(component.ActionLook); got != (mgl64.Vec2{4, -3}) {
		t.Fatalf("expected look delta (4,-3), got %v", got)
	}
	if got := second.Value(component.ActionZoom); got != 0 {
		t.Fatalf("expected zoom 0, got %v", got)
	}
}

func TestMapperJustPressed(t *testing.T) {
	dev := &fakeDevice{
		buttons:     map[ebiten.MouseButton]bool{ebiten.MouseButtonLeft: true},
		freshButton: map[ebiten.MouseButton]bool{ebiten.MouseButtonLeft: true},
	}
	m := NewMapper(dev, nil)

	first := m.Snapshot()
	if !first.Pressed(component.ActionShoot) || !first.JustPressed(component.ActionShoot) {
		t.Fatalf("expected shoot to be held and fresh on the click tick")
	}
	if first.JustPressed(component.ActionUp) {
		t.Fatalf("did not expect up to be fresh")
	}

	dev.freshButton = nil
	second := m.Snapshot()
	if !second.Pressed(component.ActionShoot) || second.JustPressed(component.ActionShoot) {
		t.Fatalf("expected shoot to stay held without a new edge")
	}
}

func TestParseBindings(t *testing.T) {
	two := 2.0
	tests := []struct {
		name    string
		specs   map[string]prefabs.BindingSpec
		wantErr error
		check   func(t *testing.T, b Bindings)
	}{
		{
			name:  "override_shoot",
			specs: map[string]prefabs.BindingSpec{"shoot": {Keys: []string{"Space"}, MouseButtons: []string{"Middle"}}},
			check: func(t *testing.T, b Bindings) {
				shoot := b[component.ActionShoot]
				if len(shoot.Keys) != 1 || shoot.Keys[0] != ebiten.KeySpace {
					t.Fatalf("expected space to shoot, got %v", shoot.Keys)
				}
				if len(shoot.MouseButtons) != 1 || shoot.MouseButtons[0] != ebiten.MouseButtonMiddle {
					t.Fatalf("expected middle mouse to shoot, got %v", shoot.MouseButtons)
				}
				if len(b[component.ActionUp].Keys) == 0 {
					t.Fatalf("expected untouched actions to keep defaults")
				}
			},
		},
		{
			name:  "axis_scale",
			specs: map[string]prefabs.BindingSpec{"zoom": {Axis: "wheel_y", Scale: &two}},
			check: func(t *testing.T, b Bindings) {
				if z := b[component.ActionZoom]; z.Axis != AxisWheelY || z.Scale != 2 {
					t.Fatalf("expected wheel_y*2, got %+v", z)
				}
			},
		},
		{
			name:    "unknown_action",
			specs:   map[string]prefabs.BindingSpec{"jump": {}},
			wantErr: ErrUnknownAction,
		},
		{
			name:    "unknown_key",
			specs:   map[string]prefabs.BindingSpec{"up": {Keys: []string{"Hyper"}}},
			wantErr: ErrUnknownKey,
		},
		{
			name:    "unknown_button",
			specs:   map[string]prefabs.BindingSpec{"shoot": {MouseButtons: []string{"thumb"}}},
			wantErr: ErrUnknownMouseButton,
		},
		{
			name:    "unknown_axis",
			specs:   map[string]prefabs.BindingSpec{"look": {Axis: "gyro"}},
			wantErr: ErrUnknownAxis,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseBindings(tc.specs)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, b)
		})
	}
}
