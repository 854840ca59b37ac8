package ecs

import "github.com/milk9111/snowfield/ecs/component"

// World owns entities and their component storage.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	delta    float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
// It reports false when e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// SetDeltaSeconds records the length of the tick about to run.
func (w *World) SetDeltaSeconds(dt float64) {
	if w == nil {
		return
	}
	w.delta = dt
}

// DeltaSeconds returns the length of the current tick in seconds.
func (w *World) DeltaSeconds() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

func (w *World) storeFor(id component.ComponentID) store {
	if w == nil || w.stores == nil {
		return nil
	}
	return w.stores[id]
}
