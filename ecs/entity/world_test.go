package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/prefabs"
)

func loadSpec(t *testing.T) *prefabs.GameSpec {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	return spec
}

func TestSpawnWorld(t *testing.T) {
	w := ecs.NewWorld()
	spawned, err := SpawnWorld(w, loadSpec(t))
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}

	if p, err := w.Single(component.PlayerTagComponent); err != nil || p != spawned.Player {
		t.Fatalf("expected exactly one player, got %v err=%v", p, err)
	}
	if c, err := w.Single(component.CameraTagComponent); err != nil || c != spawned.Camera {
		t.Fatalf("expected exactly one camera, got %v err=%v", c, err)
	}
	if len(spawned.Enemies) != 1 {
		t.Fatalf("expected one enemy, got %d", len(spawned.Enemies))
	}

	checks := []struct {
		name string
		e    ecs.Entity
		pos  mgl64.Vec3
		vel  mgl64.Vec3
	}{
		{"player", spawned.Player, mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}},
		{"enemy", spawned.Enemies[0], mgl64.Vec3{5, 0, 5}, mgl64.Vec3{0, 0, 1}},
		{"camera", spawned.Camera, mgl64.Vec3{0, 30, 0}, mgl64.Vec3{}},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			tr, ok := ecs.Get(w, c.e, component.TransformComponent)
			if !ok || tr.Translation != c.pos {
				t.Fatalf("expected position %v, got %v", c.pos, tr)
			}
			v, ok := ecs.Get(w, c.e, component.VelocityComponent)
			if !ok || v.Linear != c.vel {
				t.Fatalf("expected velocity %v, got %v", c.vel, v)
			}
		})
	}

	if ecs.Has(w, spawned.Ground, component.VelocityComponent) {
		t.Fatalf("ground should be static")
	}
	model, ok := ecs.Get(w, spawned.Enemies[0], component.ModelComponent)
	if !ok || model.Name != "Snowman.glb#Scene0" {
		t.Fatalf("unexpected enemy model %+v", model)
	}
}

func TestNewCameraLooksAtOrigin(t *testing.T) {
	w := ecs.NewWorld()
	spec := loadSpec(t)
	camera, err := NewCamera(w, spec.Camera)
	if err != nil {
		t.Fatalf("new camera: %v", err)
	}

	tr, _ := ecs.Get(w, camera, component.TransformComponent)
	if f := tr.Forward(); !vecNear(f, mgl64.Vec3{0, -1, 0}) {
		t.Fatalf("expected camera to look straight down, forward=%v", f)
	}
	if u := tr.Up(); !vecNear(u, mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("expected +Z as screen up, up=%v", u)
	}

	cam, _ := ecs.Get(w, camera, component.CameraComponent)
	if cam.MinDistance != 10 || cam.MaxDistance != 60 || cam.ZoomRate != 3 || cam.PanRate != 0.05 {
		t.Fatalf("unexpected rig tuning %+v", cam)
	}
}

func TestNewCameraRejectsDegenerateLook(t *testing.T) {
	spec := loadSpec(t).Camera
	spec.Up = prefabs.Vec3Spec{Y: 1}

	if _, err := NewCamera(ecs.NewWorld(), spec); err == nil {
		t.Fatalf("expected an error when looking along the up vector")
	}
}

func TestApplyCameraTuningKeepsViewport(t *testing.T) {
	cam := component.Camera{ViewportWidth: 640, ViewportHeight: 480}
	spec := loadSpec(t).Camera
	spec.ZoomRate = 7

	ApplyCameraTuning(&cam, spec)
	if cam.ZoomRate != 7 || cam.ViewportWidth != 640 || cam.ViewportHeight != 480 {
		t.Fatalf("unexpected camera after tuning %+v", cam)
	}
}

func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}
