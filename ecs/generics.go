package ecs

import (
	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
)

// Add attaches (or replaces) a component value on an entity.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	w.store(handle.ID()).set(e, &value)
	return nil
}

// Remove detaches a component from an entity.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.store(handle.ID()).remove(e)
}

// Has reports whether an entity carries a component.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.store(handle.ID()).has(e)
}

// Get returns a pointer to the entity's component for in-place mutation.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	v := w.store(handle.ID()).get(e)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// First returns the first live entity carrying the component.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, e := range w.store(handle.ID()).entities() {
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every live entity carrying the component.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(handle.ID())
	for _, e := range append([]Entity(nil), s.entities()...) {
		if !w.IsAlive(e) {
			continue
		}
		if v, ok := s.get(e).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ha.ID())
	sb := w.store(hb.ID())
	for _, e := range append([]Entity(nil), sa.entities()...) {
		if !w.IsAlive(e) || !sb.has(e) {
			continue
		}
		a, okA := sa.get(e).(*A)
		b, okB := sb.get(e).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
