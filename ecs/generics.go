package ecs

import "github.com/milk9111/fieldrunner/ecs/component"

// Add stores value as e's component of the given kind, replacing any previous one.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

// Get returns e's component of the given kind.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e).(*T)
	return v, ok && v != nil
}

// Has reports whether e has a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return IsAlive(w, e) && w.store(kind.ID(), false).Has(e)
}

// Remove deletes e's component of the given kind.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

// Query returns the live entities that have the kind. The slice is a copy, so
// callers may create or destroy entities while walking it.
func Query[T any](w *World, kind component.ComponentKind[T]) []Entity {
	s := w.store(kind.ID(), false)
	if s.Len() == 0 {
		return nil
	}
	return append([]Entity(nil), s.Entities()...)
}

// First returns the first live entity that has the kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	for _, e := range w.store(kind.ID(), false).Entities() {
		if IsAlive(w, e) {
			return e, true
		}
	}
	return 0, false
}

// ForEach calls fn for every entity with the kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range Query(w, kind) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every entity that has both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range Query(w, ka) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 calls fn for every entity that has all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range Query(w, ka) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, kc)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}
