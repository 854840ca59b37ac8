package entity

import (
	"fmt"

	"github.com/milk9111/snowfield/ecs"
	"github.com/milk9111/snowfield/prefabs"
)

// Spawned lists the handles created by SpawnWorld.
type Spawned struct {
	Player  ecs.Entity
	Camera  ecs.Entity
	Ground  ecs.Entity
	Enemies []ecs.Entity
}

// SpawnWorld creates the ground, player, enemies and camera described by spec.
func SpawnWorld(w *ecs.World, spec *prefabs.GameSpec) (Spawned, error) {
	var out Spawned
	if spec == nil {
		return out, fmt.Errorf("spawn world: nil spec")
	}

	var err error
	if out.Ground, err = NewGround(w, spec.Ground); err != nil {
		return out, err
	}
	if out.Player, err = NewPlayer(w, spec.Player); err != nil {
		return out, err
	}
	for _, enemySpec := range spec.Enemies {
		enemy, err := NewEnemy(w, enemySpec)
		if err != nil {
			return out, err
		}
		out.Enemies = append(out.Enemies, enemy)
	}
	if out.Camera, err = NewCamera(w, spec.Camera); err != nil {
		return out, err
	}
	return out, nil
}
