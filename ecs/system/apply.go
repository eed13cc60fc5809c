package system

import (
	"github.com/milk9111/afflict/defs"
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

// ApplyEffect books a periodic-damage entry against target. Call it from
// collision or trigger callbacks (or from the zone system) with the effect's
// definition. Below the stack cap a new entry is inserted; at the cap the
// earliest-expiring entry of the kind is refreshed instead. Returns false
// when the target is missing, dead, or the definition has no duration.
func ApplyEffect(w *ecs.World, target ecs.Entity, spec defs.EffectSpec, source ecs.Entity) bool {
	if w == nil || !ecs.IsAlive(w, target) {
		return false
	}
	if ecs.Has(w, target, component.DeadTagComponent.Kind()) {
		return false
	}
	if spec.DurationTicks <= 0 || spec.DamagePerTick < 0 {
		return false
	}

	interval := uint64(1)
	if spec.IntervalTicks > 0 {
		interval = uint64(spec.IntervalTicks)
	}

	now := w.Tick()
	d := component.Dot{
		Kind:       spec.Kind,
		PerTick:    spec.DamagePerTick,
		Base:       spec.DamagePerTick,
		Interval:   interval,
		AppliedAt:  now,
		NextTickAt: now + interval,
		ExpiresAt:  now + uint64(spec.DurationTicks),
		Source:     source.Ref(),
		Script:     spec.Script,
	}
	if spec.InitialTick {
		d.NextTickAt = now
	}

	list, ok := ecs.Get(w, target, component.DotListComponent.Kind())
	if !ok {
		list = &component.DotList{}
		if err := ecs.Add(w, target, component.DotListComponent.Kind(), list); err != nil {
			return false
		}
	}

	maxStacks := spec.MaxStacks
	if maxStacks < 1 {
		maxStacks = 1
	}

	stacks := list.Stacks(spec.Kind)
	if stacks >= maxStacks {
		list.Refresh(d)
	} else {
		list.Insert(d)
		stacks++
	}

	w.Events().Push(ecs.Event{Type: ecs.EventEffectApplied, Data: ecs.EffectEvent{
		Target: target,
		Kind:   spec.Kind,
		Stacks: stacks,
	}})
	return true
}

// Cure removes every entry of a kind from target's ledger and returns how
// many were removed.
func Cure(w *ecs.World, target ecs.Entity, kind string) int {
	list, ok := ecs.Get(w, target, component.DotListComponent.Kind())
	if !ok {
		return 0
	}
	removed := list.RemoveKind(kind)
	if list.Len() == 0 {
		ecs.Remove(w, target, component.DotListComponent.Kind())
	}
	return removed
}

// ClearEffects drops target's entire ledger.
func ClearEffects(w *ecs.World, target ecs.Entity) bool {
	return ecs.Remove(w, target, component.DotListComponent.Kind())
}

// ActiveEffects returns a snapshot of target's live entries, soonest expiry
// first.
func ActiveEffects(w *ecs.World, target ecs.Entity) []component.Dot {
	list, ok := ecs.Get(w, target, component.DotListComponent.Kind())
	if !ok || list.Len() == 0 {
		return nil
	}
	return append([]component.Dot(nil), list.Dots...)
}
