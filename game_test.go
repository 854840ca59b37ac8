package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/logger"
	"github.com/milk9111/snowfield/prefabs"
)

type heldKeys map[ebiten.Key]bool

func (h heldKeys) IsKeyPressed(k ebiten.Key) bool                   { return h[k] }
func (h heldKeys) IsMouseButtonPressed(ebiten.MouseButton) bool     { return false }
func (h heldKeys) IsKeyJustPressed(k ebiten.Key) bool               { return h[k] }
func (h heldKeys) IsMouseButtonJustPressed(ebiten.MouseButton) bool { return false }
func (h heldKeys) CursorPosition() (int, int)                       { return 640, 360 }
func (h heldKeys) Wheel() (float64, float64)                        { return 0, 0 }

func newTestGame(t *testing.T, keys heldKeys) *Game {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	g, err := newGame(spec, keys, logger.New(logger.Config{Level: "error"}), false)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func TestGameStepMovesPlayerAndCamera(t *testing.T) {
	g := newTestGame(t, heldKeys{ebiten.KeyW: true, ebiten.KeyD: true})
	if w, h := g.Layout(1280, 720); w != 1280 || h != 720 {
		t.Fatalf("unexpected layout %dx%d", w, h)
	}

	g.step(0.5)

	player, _ := ecs.Get(g.world, g.spawned.Player, component.TransformComponent)
	if player.Translation != (mgl64.Vec3{2.5, 0, -2.5}) {
		t.Fatalf("expected player at (2.5,0,-2.5), got %v", player.Translation)
	}
	camera, _ := ecs.Get(g.world, g.spawned.Camera, component.TransformComponent)
	if camera.Translation != (mgl64.Vec3{2.5, 30, 2.5}) {
		t.Fatalf("expected camera at (2.5,30,2.5), got %v", camera.Translation)
	}
	enemy, _ := ecs.Get(g.world, g.spawned.Enemies[0], component.TransformComponent)
	if enemy.Translation != (mgl64.Vec3{5, 0, 5.5}) {
		t.Fatalf("expected enemy to drift to (5,0,5.5), got %v", enemy.Translation)
	}
	cursor, _ := ecs.Get(g.world, g.spawned.Player, component.CursorWorldPositionComponent)
	if !cursor.Valid {
		t.Fatalf("expected the centred pointer to hit the ground")
	}
}

func TestApplySpecRetunesLiveWorld(t *testing.T) {
	g := newTestGame(t, heldKeys{})
	g.Layout(800, 600)

	next, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatal(err)
	}
	next.Camera.ZoomRate = 9
	next.Player.Speed = 2
	if err := g.applySpec(next); err != nil {
		t.Fatalf("apply: %v", err)
	}

	cam, _ := ecs.Get(g.world, g.spawned.Camera, component.CameraComponent)
	if cam.ZoomRate != 9 || cam.ViewportWidth != 800 {
		t.Fatalf("unexpected camera after reload %+v", cam)
	}
	player, _ := ecs.Get(g.world, g.spawned.Player, component.PlayerComponent)
	if player.Speed != 2 {
		t.Fatalf("expected speed 2, got %v", player.Speed)
	}
}

func TestUpdateTogglesDebugOverlay(t *testing.T) {
	g := newTestGame(t, heldKeys{DebugToggleKey: true})
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if !g.debug {
		t.Fatalf("expected %v to switch the overlay on", DebugToggleKey)
	}
}

func TestPollReloadsAppliesAndRejects(t *testing.T) {
	oldDir := prefabs.Dir
	dir := t.TempDir()
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = oldDir })

	base, err := prefabs.PrefabsFS.ReadFile(prefabs.GameFile)
	if err != nil {
		t.Fatal(err)
	}
	spec, err := prefabs.ParseGameSpec(base)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	g, err := newGame(spec, heldKeys{}, logger.New(logger.Config{Level: "info", Output: &buf}), false)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.WatchPrefabs(dir); err != nil {
		t.Fatalf("watch: %v", err)
	}
	w := g.watcher
	t.Cleanup(func() { _ = g.Close() })

	target := filepath.Join(dir, prefabs.GameFile)
	stamp := time.Now().Add(-time.Hour)
	write := func(content string) {
		t.Helper()
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		stamp = stamp.Add(time.Second)
		if err := os.Chtimes(target, stamp, stamp); err != nil {
			t.Fatal(err)
		}
	}
	zoomRate := func() float64 {
		cam, _ := ecs.Get(g.world, g.spawned.Camera, component.CameraComponent)
		return cam.ZoomRate
	}
	rejections := func() int { return strings.Count(buf.String(), "prefab reload rejected") }
	pollUntil := func(what string, cond func() bool) {
		t.Helper()
		deadline := time.Now().Add(3 * time.Second)
		for !cond() {
			if time.Now().After(deadline) {
				t.Fatalf("timed out waiting for %s; log:\n%s", what, buf.String())
			}
			g.pollReloads()
			time.Sleep(10 * time.Millisecond)
		}
	}

	write(strings.Replace(string(base), "zoom_rate: 3.0", "zoom_rate: 9.0", 1))
	pollUntil("live zoom rate", func() bool { return zoomRate() == 9 })

	time.Sleep(150 * time.Millisecond)
	write(strings.Replace(string(base), "min_distance: 10.0", "min_distance: 40.0", 1))
	pollUntil("rejected reload", func() bool { return rejections() == 1 })
	if zoomRate() != 9 {
		t.Fatalf("expected rejected reload to keep zoom rate 9, got %v", zoomRate())
	}

	// an event for an unchanged file or another prefab is ignored
	w.Events <- target
	w.Events <- filepath.Join(dir, "enemies.yaml")
	g.pollReloads()
	if rejections() != 1 {
		t.Fatalf("expected duplicate events to be skipped, log:\n%s", buf.String())
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	g.pollReloads()
}
