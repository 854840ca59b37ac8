package ecs

import (
	"strings"

	"github.com/milk9111/snowfield/ecs/component"
)

// intersect returns entities present in every store, in the dense order of the smallest.
func intersect(w *World, stores ...store) []Entity {
	if len(stores) == 0 {
		return nil
	}
	for _, s := range stores {
		if s == nil {
			return nil
		}
	}
	// iterate smaller set
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.len())
outer:
	for _, id := range smallest.ids() {
		for _, s := range stores {
			if !s.has(id) {
				continue outer
			}
		}
		out = append(out, w.entities.current(id))
	}
	return out
}

// Query returns entities that carry every listed kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s := w.storeFor(k.ID())
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	return intersect(w, stores...)
}

// First returns any entity that carries every listed kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	matches := w.Query(kinds...)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0], true
}

// Single returns the only entity that carries every listed kind. Zero or several
// matches yield a *PreconditionError.
func (w *World) Single(kinds ...component.Kind) (Entity, error) {
	matches := w.Query(kinds...)
	if len(matches) != 1 {
		return 0, &PreconditionError{Query: queryName(kinds), Count: len(matches)}
	}
	return matches[0], nil
}

func queryName(kinds []component.Kind) string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.Name())
	}
	return strings.Join(names, "+")
}
