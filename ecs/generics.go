package ecs

import "github.com/milk9111/afflict/ecs/component"

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes an entity, its components, and any physics shapes.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.destroyEntity(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// Add attaches a component to an entity, replacing any existing value.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if w == nil || !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID()).Set(e, v)
	return nil
}

// Remove detaches a component from an entity.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() {
		return false
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return false
	}
	return s.Remove(int(e.id()))
}

// Has reports whether an entity carries a component.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return false
	}
	s := w.storeIfPresent(k.ID())
	return s != nil && s.Has(int(e.id()))
}

// Get returns an entity's component.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return nil, false
	}
	v, ok := s.Get(int(e.id())).(*T)
	if !ok {
		return nil, false
	}
	return v, true
}

// First returns the first live entity carrying the component.
func First[T any](w *World, k component.ComponentKind[T]) (Entity, bool) {
	if w == nil || !k.Valid() {
		return 0, false
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return 0, false
	}
	for _, e := range s.Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every live entity carrying the component. The entity list is
// snapshotted first so callbacks may add or destroy entities.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || !k.Valid() || fn == nil {
		return
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return
	}
	ents := append([]Entity(nil), s.Entities()...)
	for _, e := range ents {
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := s.Get(int(e.id())).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if fn == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 visits entities carrying all three components.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if fn == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}
