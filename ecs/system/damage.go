package system

import (
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

// applyDamage lands tick damage on a target's health and emits the damage
// event. Targets without health ignore damage.
func applyDamage(w *ecs.World, target ecs.Entity, kind string, amount float64, source ecs.Entity) {
	if w == nil || amount <= 0 {
		return
	}
	h, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return
	}
	landed := h.Damage(amount)
	if landed <= 0 {
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventDamage, Data: ecs.DamageEvent{
		Target: target,
		Source: source,
		Kind:   kind,
		Amount: landed,
	}})
}
