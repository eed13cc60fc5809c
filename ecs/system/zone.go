package system

import (
	"log"

	"github.com/milk9111/afflict/defs"
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

// ZoneSystem turns sensor overlaps into periodic damage. The physics world's
// Begin/Separate callbacks maintain the raw contact sets; this system syncs
// them into each zone's bookkeeping, emits enter/exit events, and deals the
// due hits. Effect zones book a ledger entry (refreshed while inside) so the
// damage outlives the visit; direct zones hit health every interval.
type ZoneSystem struct {
	defs *defs.Registry
}

func NewZoneSystem(registry *defs.Registry) *ZoneSystem {
	return &ZoneSystem{defs: registry}
}

func (s *ZoneSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	now := w.Tick()
	ecs.ForEach2(w, component.DamageZoneComponent.Kind(), component.ZoneContactsComponent.Kind(), func(zone ecs.Entity, z *component.DamageZone, zc *component.ZoneContacts) {
		if z == nil || zc == nil {
			return
		}
		if zc.Victims == nil {
			zc.Victims = make(map[uint64]uint64)
		}

		interval := z.Interval
		if interval == 0 {
			interval = 1
		}

		inside := pw.Contacts(zone)

		for ref := range zc.Victims {
			if _, ok := inside[ecs.FromRef(ref)]; ok {
				continue
			}
			delete(zc.Victims, ref)
			w.Events().Push(ecs.Event{Type: ecs.EventZoneExit, Data: ecs.ZoneEvent{Zone: zone, Target: ecs.FromRef(ref)}})
		}

		for victim := range inside {
			ref := victim.Ref()
			if _, ok := zc.Victims[ref]; ok {
				continue
			}
			first := now + interval
			if z.InitialTick {
				first = now
			}
			zc.Victims[ref] = first
			w.Events().Push(ecs.Event{Type: ecs.EventZoneEnter, Data: ecs.ZoneEvent{Zone: zone, Target: victim}})
		}

		for ref, next := range zc.Victims {
			if next > now {
				continue
			}
			victim := ecs.FromRef(ref)
			if !ecs.IsAlive(w, victim) || ecs.Has(w, victim, component.DeadTagComponent.Kind()) {
				delete(zc.Victims, ref)
				continue
			}
			if z.Effect != "" {
				s.applyZoneEffect(w, zone, victim, z)
			} else if !ecs.Has(w, victim, component.InvulnerableComponent.Kind()) {
				applyDamage(w, victim, z.Name, z.PerTick, zone)
			}
			zc.Victims[ref] = now + interval
		}
	})
}

func (s *ZoneSystem) applyZoneEffect(w *ecs.World, zone, victim ecs.Entity, z *component.DamageZone) {
	if s == nil || s.defs == nil {
		return
	}
	spec, err := s.defs.Effect(z.Effect)
	if err != nil {
		log.Printf("zone %s: %v", z.Name, err)
		return
	}
	ApplyEffect(w, victim, spec, zone)
}
