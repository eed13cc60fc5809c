// Command simulate runs the ledger systems headless for a fixed number of
// ticks and prints what happened. Useful for tuning definitions without
// opening the demo window.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/afflict/defs"
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
	"github.com/milk9111/afflict/ecs/entity"
	"github.com/milk9111/afflict/ecs/system"
)

const (
	fieldWidth  = 640
	fieldHeight = 360
	margin      = 40
	speed       = 45.0
)

func main() {
	ticks := flag.Int("ticks", 3600, "number of world ticks to run")
	victims := flag.Int("victims", 5, "number of wandering victims")
	seed := flag.Int64("seed", 1, "seed for wander paths")
	flag.Parse()

	registry, err := defs.NewRegistry()
	if err != nil {
		log.Fatal(err)
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewZoneSystem(registry))
	w.AddSystem(system.NewScriptDamageSystem())
	w.AddSystem(system.NewDotSystem())
	w.AddSystem(system.NewHealthSystem())
	w.AddSystem(system.NewInvulnerableSystem())
	w.AddSystem(system.NewTTLSystem())

	placements := []struct {
		zone string
		x, y float64
	}{
		{"lava_pool", 160, 150},
		{"acid_pool", 440, 110},
		{"gas_cloud", 320, 260},
	}
	for _, p := range placements {
		spec, err := registry.Zone(p.zone)
		if err != nil {
			log.Fatal(err)
		}
		entity.NewDamageZone(w, spec, p.x, p.y)
	}

	rng := rand.New(rand.NewSource(*seed))
	tracked := make([]ecs.Entity, 0, *victims)
	for i := 0; i < *victims; i++ {
		x := margin + rng.Float64()*(fieldWidth-2*margin)
		y := margin + rng.Float64()*(fieldHeight-2*margin)
		v := entity.NewVictim(w, x, y, 24, 24, 100)
		if body := w.PhysicsWorld().Body(v); body != nil {
			angle := rng.Float64() * 2 * 3.14159265
			body.SetVelocityVector(cp.Vector{X: speed, Y: 0}.Rotate(cp.ForAngle(angle)))
		}
		tracked = append(tracked, v)
	}

	var damage float64
	counts := make(map[string]int)
	for i := 0; i < *ticks; i++ {
		steer(w, tracked)
		w.Update()
		for _, evt := range w.Events().Drain() {
			counts[evt.Type]++
			if d, ok := evt.Data.(ecs.DamageEvent); ok {
				damage += d.Amount
			}
		}
	}

	alive := 0
	for _, v := range tracked {
		if ecs.IsAlive(w, v) && !ecs.Has(w, v, component.DeadTagComponent.Kind()) {
			alive++
		}
	}

	fmt.Printf("ran %d ticks, %d/%d victims alive, %.1f total damage\n", *ticks, alive, len(tracked), damage)
	for _, kind := range []string{ecs.EventZoneEnter, ecs.EventZoneExit, ecs.EventEffectApplied, ecs.EventEffectExpired, ecs.EventDamage, ecs.EventDeath} {
		fmt.Printf("  %-16s %d\n", kind, counts[kind])
	}
}

func steer(w *ecs.World, victims []ecs.Entity) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	for _, v := range victims {
		body := pw.Body(v)
		if body == nil {
			continue
		}
		pos := body.Position()
		vel := body.Velocity()
		if (pos.X < margin && vel.X < 0) || (pos.X > fieldWidth-margin && vel.X > 0) {
			vel.X = -vel.X
		}
		if (pos.Y < margin && vel.Y < 0) || (pos.Y > fieldHeight-margin && vel.Y > 0) {
			vel.Y = -vel.Y
		}
		body.SetVelocityVector(vel)
	}
}
