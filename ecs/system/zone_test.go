package system

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/afflict/defs"
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
	"github.com/milk9111/afflict/ecs/entity"
)

func newZoneWorld(registry *defs.Registry) *ecs.World {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	w.AddSystem(NewPhysicsSystem())
	w.AddSystem(NewZoneSystem(registry))
	w.AddSystem(NewDotSystem())
	w.AddSystem(NewHealthSystem())
	w.AddSystem(NewTTLSystem())
	return w
}

func TestDirectZoneDealsIntervalDamage(t *testing.T) {
	w := newZoneWorld(nil)

	spec := defs.ZoneSpec{Name: "acid", Width: 100, Height: 100, DamagePerSecond: 60, IntervalTicks: 30, InitialTick: true}
	entity.NewDamageZone(w, spec, 0, 0)
	victim := entity.NewVictim(w, 0, 0, 20, 20, 100)

	// 60 dps at a 30-tick interval is 30 per hit; the initial hit lands on
	// entry and the second one 30 ticks later
	events := runTicks(w, 31)

	if got := health(t, w, victim); got != 40 {
		t.Fatalf("expected health 40, got %v", got)
	}
	if got := countEvents(events, ecs.EventZoneEnter); got != 1 {
		t.Fatalf("expected a single enter event, got %d", got)
	}
	if got := countEvents(events, ecs.EventDamage); got != 2 {
		t.Fatalf("expected 2 hits, got %d", got)
	}
}

func TestDirectZoneStopsOnExit(t *testing.T) {
	w := newZoneWorld(nil)

	spec := defs.ZoneSpec{Name: "acid", Width: 100, Height: 100, DamagePerSecond: 60, IntervalTicks: 30, InitialTick: true}
	entity.NewDamageZone(w, spec, 0, 0)
	victim := entity.NewVictim(w, 0, 0, 20, 20, 100)

	runTicks(w, 2)
	if got := health(t, w, victim); got != 70 {
		t.Fatalf("expected the entry hit to land, got health %v", got)
	}

	w.PhysicsWorld().Body(victim).SetPosition(cp.Vector{X: 500, Y: 0})
	events := runTicks(w, 60)

	if got := countEvents(events, ecs.EventZoneExit); got != 1 {
		t.Fatalf("expected a single exit event, got %d", got)
	}
	if got := health(t, w, victim); got != 70 {
		t.Fatalf("expected no damage after leaving, got health %v", got)
	}
}

func TestEffectZoneDamageOutlivesVisit(t *testing.T) {
	registry, err := defs.NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	w := newZoneWorld(registry)

	spec := defs.ZoneSpec{Name: "lava", Width: 100, Height: 100, Effect: "burning", IntervalTicks: 30, InitialTick: true}
	entity.NewDamageZone(w, spec, 0, 0)
	victim := entity.NewVictim(w, 0, 0, 20, 20, 100)

	// one tick inside books the burning entry, then the victim leaves
	events := runTicks(w, 1)
	if got := countEvents(events, ecs.EventEffectApplied); got != 1 {
		t.Fatalf("expected the zone to book its effect, got %d applied events", got)
	}
	w.PhysicsWorld().Body(victim).SetPosition(cp.Vector{X: 500, Y: 0})

	events = runTicks(w, 200)
	if got := countEvents(events, ecs.EventZoneExit); got != 1 {
		t.Fatalf("expected a single exit event, got %d", got)
	}
	if got := countEvents(events, ecs.EventEffectExpired); got != 1 {
		t.Fatalf("expected the entry to expire on its own, got %d expiry events", got)
	}

	// burning: 4 damage every 12 ticks for 180 ticks, initial hit included,
	// applied at tick 1: hits at 1, 13, ..., 181 for 64 total
	if got := health(t, w, victim); got != 36 {
		t.Fatalf("expected health 36, got %v", got)
	}
	if ecs.Has(w, victim, component.DotListComponent.Kind()) {
		t.Fatal("ledger should be empty after expiry")
	}
}

func TestZoneTTLExpires(t *testing.T) {
	w := newZoneWorld(nil)

	spec := defs.ZoneSpec{Name: "spark", Width: 100, Height: 100, DamagePerSecond: 60, IntervalTicks: 1, InitialTick: true, TTLTicks: 5}
	zone := entity.NewDamageZone(w, spec, 0, 0)
	victim := entity.NewVictim(w, 0, 0, 20, 20, 100)

	runTicks(w, 10)

	if ecs.IsAlive(w, zone) {
		t.Fatal("zone should expire through its TTL")
	}
	// one point per tick for the five ticks the zone existed
	if got := health(t, w, victim); got != 95 {
		t.Fatalf("expected health 95, got %v", got)
	}
}

func TestZoneDropsDeadVictims(t *testing.T) {
	w := newZoneWorld(nil)

	spec := defs.ZoneSpec{Name: "acid", Width: 100, Height: 100, DamagePerSecond: 60, IntervalTicks: 30, InitialTick: true}
	entity.NewDamageZone(w, spec, 0, 0)
	victim := entity.NewVictim(w, 0, 0, 20, 20, 25)

	events := runTicks(w, 40)

	if got := countEvents(events, ecs.EventDeath); got != 1 {
		t.Fatalf("expected a single death, got %d", got)
	}
	if got := countEvents(events, ecs.EventDamage); got != 1 {
		t.Fatalf("dead victim should take no further hits, got %d", got)
	}
	if got := health(t, w, victim); got != 0 {
		t.Fatalf("expected health 0, got %v", got)
	}
}
