package entity

import (
	"fmt"

	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/ecs/component"
	"github.com/milk9111/snowfield/prefabs"
)

// NewEnemy spawns a static enemy; nothing steers it after its starting velocity.
func NewEnemy(w *ecs.World, spec prefabs.ActorSpec) (ecs.Entity, error) {
	enemy, err := newActor(w, spec)
	if err != nil {
		return 0, fmt.Errorf("enemy %s: %w", spec.Name, err)
	}
	if err := ecs.Add(w, enemy, component.EnemyTagComponent, &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy %s: add enemy tag: %w", spec.Name, err)
	}
	return enemy, nil
}
