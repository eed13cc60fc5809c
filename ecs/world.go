package ecs

import "github.com/milk9111/afflict/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, system order, and the tick counter.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	events   EventQueue
	tick     uint64

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Tick returns the current world tick. The counter advances once per Update.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update advances the tick and runs all systems once. Events pushed during
// the update stay queued until the next Update so the caller can drain them.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.events.flush()
	w.tick++
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

func (w *World) store(id component.ComponentID) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) storeIfPresent(id component.ComponentID) *SparseSet {
	if w == nil || w.stores == nil {
		return nil
	}
	return w.stores[id]
}

func (w *World) destroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(int(e.id()))
	}
	if w.physicsWorld != nil {
		w.physicsWorld.RemoveEntity(e)
	}
	return true
}
