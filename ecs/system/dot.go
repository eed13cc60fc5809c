package system

import (
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

// DotSystem is the per-tick sweep over every target's periodic-damage
// ledger: due hits land first, then entries whose deadline passed are popped
// from the front of the sorted list. Running the hits first means an entry
// whose last hit falls exactly on its deadline still lands it.
type DotSystem struct{}

func NewDotSystem() *DotSystem {
	return &DotSystem{}
}

func (s *DotSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	now := w.Tick()
	ecs.ForEach(w, component.DotListComponent.Kind(), func(e ecs.Entity, list *component.DotList) {
		if list == nil || ecs.Has(w, e, component.DeadTagComponent.Kind()) {
			return
		}

		invulnerable := ecs.Has(w, e, component.InvulnerableComponent.Kind())
		for i := range list.Dots {
			d := &list.Dots[i]
			interval := d.Interval
			if interval == 0 {
				interval = 1
			}
			for d.NextTickAt <= now && d.NextTickAt <= d.ExpiresAt {
				if !invulnerable {
					applyDamage(w, e, d.Kind, d.PerTick, ecs.FromRef(d.Source))
				}
				d.NextTickAt += interval
			}
		}

		for _, d := range list.PopExpired(now) {
			w.Events().Push(ecs.Event{Type: ecs.EventEffectExpired, Data: ecs.EffectEvent{
				Target: e,
				Kind:   d.Kind,
				Stacks: list.Stacks(d.Kind),
			}})
		}

		if list.Len() == 0 {
			ecs.Remove(w, e, component.DotListComponent.Kind())
		}
	})
}
