package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/ecs/entity"
	"github.com/milk9111/snowfield/ecs/system"
	"github.com/milk9111/snowfield/input"
	"github.com/milk9111/snowfield/prefabs"
	"github.com/sirupsen/logrus"
)

type Game struct {
	world    *ecs.World
	pipeline *ecs.Scheduler
	mapper   *input.Mapper
	device   input.Device
	spawned  entity.Spawned
	spec     *prefabs.GameSpec
	watcher  *prefabs.Watcher
	log      logrus.FieldLogger
	debug    bool

	specMod time.Time
}

func NewGame(spec *prefabs.GameSpec, log logrus.FieldLogger, debug bool) (*Game, error) {
	return newGame(spec, input.EbitenDevice{}, log, debug)
}

func newGame(spec *prefabs.GameSpec, device input.Device, log logrus.FieldLogger, debug bool) (*Game, error) {
	bindings, err := input.ParseBindings(spec.Input)
	if err != nil {
		return nil, fmt.Errorf("game: bindings: %w", err)
	}

	world := ecs.NewWorld()
	spawned, err := entity.SpawnWorld(world, spec)
	if err != nil {
		return nil, fmt.Errorf("game: spawn: %w", err)
	}

	mapper := input.NewMapper(device, bindings)
	return &Game{
		world:    world,
		pipeline: system.NewPipeline(mapper, log),
		mapper:   mapper,
		device:   device,
		spawned:  spawned,
		spec:     spec,
		log:      log,
		debug:    debug,
	}, nil
}

// WatchPrefabs reloads tuning whenever game.yaml changes under dir.
func (g *Game) WatchPrefabs(dir string) error {
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("game: watch %s: %w", dir, err)
	}
	g.watcher = w
	g.specMod, _ = prefabs.ModTime(prefabs.GameFile)
	g.log.WithField("dir", dir).Info("watching prefabs")
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	w := g.watcher
	g.watcher = nil
	return w.Close()
}

// DebugToggleKey flips the debug overlay.
const DebugToggleKey = ebiten.KeyF12

func (g *Game) Update() error {
	g.pollReloads()
	if g.device.IsKeyJustPressed(DebugToggleKey) {
		g.debug = !g.debug
	}
	g.step(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) step(dt float64) {
	g.pipeline.Update(g.world, dt)
}

func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(name) != prefabs.GameFile {
				continue
			}
			mod, ok := prefabs.ModTime(prefabs.GameFile)
			if !ok || mod.Equal(g.specMod) {
				continue
			}
			g.specMod = mod
			spec, err := prefabs.LoadGameSpec()
			if err != nil {
				g.log.WithError(err).Warn("prefab reload rejected, keeping current tuning")
				continue
			}
			if err := g.applySpec(spec); err != nil {
				g.log.WithError(err).Warn("prefab reload rejected, keeping current tuning")
				continue
			}
			g.log.WithField("file", name).Info("prefabs reloaded")
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			g.log.WithError(err).Warn("prefab watcher")
		default:
			return
		}
	}
}

// applySpec pushes live-tunable values onto the running world. Spawn positions
// and starting velocities only apply on the next start.
func (g *Game) applySpec(spec *prefabs.GameSpec) error {
	bindings, err := input.ParseBindings(spec.Input)
	if err != nil {
		return err
	}

	if cam, ok := ecs.Get(g.world, g.spawned.Camera, component.CameraComponent); ok {
		entity.ApplyCameraTuning(cam, spec.Camera)
	}
	if player, ok := ecs.Get(g.world, g.spawned.Player, component.PlayerComponent); ok {
		player.Speed = spec.Player.Speed
	}
	g.mapper.SetBindings(bindings)
	g.spec = spec
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if cam, ok := ecs.Get(g.world, g.spawned.Camera, component.CameraComponent); ok {
		cam.ViewportWidth = float64(outsideWidth)
		cam.ViewportHeight = float64(outsideHeight)
	}
	return outsideWidth, outsideHeight
}
