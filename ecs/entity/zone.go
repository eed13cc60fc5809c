package entity

import (
	"github.com/milk9111/afflict/common"
	"github.com/milk9111/afflict/defs"
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

// NewDamageZone builds a damage zone from its definition, centered at
// (x, y), with a static sensor shape registered in the physics world. Zones
// with a TTL expire on their own.
func NewDamageZone(w *ecs.World, spec defs.ZoneSpec, x, y float64) ecs.Entity {
	if w == nil {
		return 0
	}

	e := ecs.CreateEntity(w)
	t := &component.Transform{X: x, Y: y}
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), t)
	_ = ecs.Add(w, e, component.DamageZoneComponent.Kind(), &component.DamageZone{
		Name:        spec.Name,
		Width:       spec.Width,
		Height:      spec.Height,
		PerTick:     spec.PerTick(common.TicksPerSecond),
		Interval:    spec.Interval(),
		Effect:      spec.Effect,
		InitialTick: spec.InitialTick,
	})
	_ = ecs.Add(w, e, component.ZoneContactsComponent.Kind(), &component.ZoneContacts{Victims: make(map[uint64]uint64)})

	if spec.TTLTicks > 0 {
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: spec.TTLTicks})
	}

	if pw := w.PhysicsWorld(); pw != nil {
		pw.AddZoneSensor(e, t, spec.Width, spec.Height)
	}
	return e
}
