package system

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/snowfield/common"
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/logger"
	"github.com/sirupsen/logrus"
)

var testCamera = component.Camera{
	FovY:           mgl64.DegToRad(45),
	ViewportWidth:  800,
	ViewportHeight: 600,
	MinDistance:    10,
	MaxDistance:    60,
	ZoomRate:       3,
	PanRate:        0.05,
}

type scene struct {
	w      *ecs.World
	player ecs.Entity
	camera ecs.Entity
}

func add[T any](t *testing.T, w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, handle, v); err != nil {
		t.Fatalf("add %s: %v", handle.Name(), err)
	}
}

func newScene(t *testing.T) scene {
	t.Helper()
	w := ecs.NewWorld()

	player := ecs.CreateEntity(w)
	pt := component.NewTransform(mgl64.Vec3{0, 0, -5})
	add(t, w, player, component.PlayerTagComponent, &component.PlayerTag{})
	add(t, w, player, component.PlayerComponent, &component.Player{Speed: 5})
	add(t, w, player, component.TransformComponent, &pt)
	add(t, w, player, component.VelocityComponent, &component.Velocity{})
	add(t, w, player, component.ActionStateComponent, &component.ActionState{})
	add(t, w, player, component.CursorWorldPositionComponent, &component.CursorWorldPosition{})

	camera := ecs.CreateEntity(w)
	ct := component.NewTransform(mgl64.Vec3{0, 30, 0})
	rot, ok := common.LookRotation(mgl64.Vec3{0, -30, 0}, mgl64.Vec3{0, 0, 1})
	if !ok {
		t.Fatalf("camera look rotation failed")
	}
	ct.Rotation = rot
	cam := testCamera
	add(t, w, camera, component.CameraTagComponent, &component.CameraTag{})
	add(t, w, camera, component.CameraComponent, &cam)
	add(t, w, camera, component.TransformComponent, &ct)
	add(t, w, camera, component.VelocityComponent, &component.Velocity{})

	return scene{w: w, player: player, camera: camera}
}

func (s scene) actions(t *testing.T) *component.ActionState {
	t.Helper()
	state, ok := ecs.Get(s.w, s.player, component.ActionStateComponent)
	if !ok {
		t.Fatalf("player has no action state")
	}
	return state
}

func (s scene) transform(t *testing.T, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(s.w, e, component.TransformComponent)
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func (s scene) velocity(t *testing.T, e ecs.Entity) *component.Velocity {
	t.Helper()
	v, ok := ecs.Get(s.w, e, component.VelocityComponent)
	if !ok {
		t.Fatalf("entity %v has no velocity", e)
	}
	return v
}

func (s scene) cursor(t *testing.T) *component.CursorWorldPosition {
	t.Helper()
	c, ok := ecs.Get(s.w, s.player, component.CursorWorldPositionComponent)
	if !ok {
		t.Fatalf("player has no cursor")
	}
	return c
}

func bufferLogger() (*bytes.Buffer, logrus.FieldLogger) {
	var buf bytes.Buffer
	return &buf, logger.New(logger.Config{Level: "warn", Output: &buf})
}

func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}
