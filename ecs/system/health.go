package system

import (
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

// HealthSystem clamps health and handles death: the first time a target hits
// zero it gets the dead tag, its ledger is cleared, its physics presence is
// removed, and a single death event is emitted.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

func (s *HealthSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HealthComponent.Kind(), func(e ecs.Entity, h *component.Health) {
		if h == nil {
			return
		}
		if h.Current < 0 {
			h.Current = 0
		}
		if h.Max > 0 && h.Current > h.Max {
			h.Current = h.Max
		}
		if h.Current > 0 || ecs.Has(w, e, component.DeadTagComponent.Kind()) {
			return
		}

		_ = ecs.Add(w, e, component.DeadTagComponent.Kind(), &component.DeadTag{})
		ecs.Remove(w, e, component.DotListComponent.Kind())
		if pw := w.PhysicsWorld(); pw != nil {
			pw.RemoveEntity(e)
		}
		ecs.Remove(w, e, component.BodyComponent.Kind())
		w.Events().Push(ecs.Event{Type: ecs.EventDeath, Data: ecs.DeathEvent{Target: e}})
	})
}
