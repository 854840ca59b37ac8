package entity

import (
	"fmt"

	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/prefabs"
)

func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	player, err := newActor(w, spec.ActorSpec)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	if err := ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent, &component.Player{Speed: spec.Speed}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}
	if err := ecs.Add(w, player, component.ActionStateComponent, &component.ActionState{}); err != nil {
		return 0, fmt.Errorf("player: add action state: %w", err)
	}
	if err := ecs.Add(w, player, component.CursorWorldPositionComponent, &component.CursorWorldPosition{}); err != nil {
		return 0, fmt.Errorf("player: add cursor: %w", err)
	}

	return player, nil
}

// newActor spawns the transform, velocity and model shared by players and enemies.
func newActor(w *ecs.World, spec prefabs.ActorSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	transform := component.NewTransform(spec.Transform.Vec3())
	if err := ecs.Add(w, e, component.TransformComponent, &transform); err != nil {
		return 0, fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{
		Linear: spec.Velocity.Vec3(),
	}); err != nil {
		return 0, fmt.Errorf("add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.ModelComponent, &component.Model{
		Name:   spec.Model,
		Color:  spec.Color.RGBA,
		Radius: spec.Radius,
	}); err != nil {
		return 0, fmt.Errorf("add model: %w", err)
	}
	return e, nil
}
