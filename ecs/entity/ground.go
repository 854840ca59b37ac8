package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/prefabs"
)

func NewGround(w *ecs.World, spec prefabs.GroundSpec) (ecs.Entity, error) {
	ground := ecs.CreateEntity(w)
	if err := ecs.Add(w, ground, component.GroundTagComponent, &component.GroundTag{}); err != nil {
		return 0, fmt.Errorf("ground: add ground tag: %w", err)
	}
	transform := component.NewTransform(mgl64.Vec3{})
	if err := ecs.Add(w, ground, component.TransformComponent, &transform); err != nil {
		return 0, fmt.Errorf("ground: add transform: %w", err)
	}
	if err := ecs.Add(w, ground, component.GroundComponent, &component.Ground{
		Width: spec.Width,
		Depth: spec.Depth,
		Color: spec.Color.RGBA,
	}); err != nil {
		return 0, fmt.Errorf("ground: add ground component: %w", err)
	}
	return ground, nil
}
