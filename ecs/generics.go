package ecs

import "github.com/milk9111/snowfield/ecs/component"

func setFor[T any](w *World, handle component.ComponentHandle[T], create bool) *sparseSet[T] {
	kind := handle.Kind()
	if s, ok := w.storeFor(kind.ID()).(*sparseSet[T]); ok {
		return s
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	s := &sparseSet[T]{}
	w.stores[kind.ID()] = s
	return s
}

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	setFor(w, handle, true).set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := setFor(w, handle, false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := setFor(w, handle, false)
	return s != nil && s.has(e.id())
}

// Get returns the stored component pointer; writes through it are visible to the world.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := setFor(w, handle, false)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

// ForEach calls fn for every entity that has handle.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil {
		return
	}
	s := setFor(w, handle, false)
	if s == nil {
		return
	}
	n := s.len()
	for i := 0; i < n && i < s.len(); i++ {
		fn(w.entities.current(s.dense[i]), s.values[i])
	}
}

// ForEach2 calls fn for every entity that has both a and b.
func ForEach2[A, B any](w *World, a component.ComponentHandle[A], b component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	if w == nil {
		return
	}
	sa := setFor(w, a, false)
	sb := setFor(w, b, false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range intersect(w, sa, sb) {
		va, _ := sa.get(e.id())
		vb, _ := sb.get(e.id())
		fn(e, va, vb)
	}
}

// ForEach3 calls fn for every entity that has a, b and c.
func ForEach3[A, B, C any](w *World, a component.ComponentHandle[A], b component.ComponentHandle[B], c component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	if w == nil {
		return
	}
	sa := setFor(w, a, false)
	sb := setFor(w, b, false)
	sc := setFor(w, c, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, e := range intersect(w, sa, sb, sc) {
		va, _ := sa.get(e.id())
		vb, _ := sb.get(e.id())
		vc, _ := sc.get(e.id())
		fn(e, va, vb, vc)
	}
}
