package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/afflict/defs"
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
	"github.com/milk9111/afflict/ecs/entity"
	"github.com/milk9111/afflict/ecs/system"
)

const (
	screenWidth  = 640
	screenHeight = 360
	wanderMargin = 40
	wanderSpeed  = 45.0
)

// Game is the demo scene: a handful of victims wander across a field of
// damage zones while the ledger systems tick.
type Game struct {
	world    *ecs.World
	registry *defs.Registry
	scripts  *system.ScriptDamageSystem
	watcher  *defs.Watcher
	victims  []ecs.Entity
	debug    bool
}

func NewGame(debug bool, seed int64) (*Game, error) {
	registry, err := defs.NewRegistry()
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	scripts := system.NewScriptDamageSystem()
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewZoneSystem(registry))
	w.AddSystem(scripts)
	w.AddSystem(system.NewDotSystem())
	w.AddSystem(system.NewHealthSystem())
	w.AddSystem(system.NewInvulnerableSystem())
	w.AddSystem(system.NewTTLSystem())

	g := &Game{
		world:    w,
		registry: registry,
		scripts:  scripts,
		debug:    debug,
	}

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
			return nil, err
		}
		entity.NewDamageZone(w, spec, p.x, p.y)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < 5; i++ {
		x := wanderMargin + rng.Float64()*(screenWidth-2*wanderMargin)
		y := wanderMargin + rng.Float64()*(screenHeight-2*wanderMargin)
		v := entity.NewVictim(w, x, y, 24, 24, 100)
		if body := w.PhysicsWorld().Body(v); body != nil {
			angle := rng.Float64() * 2 * 3.14159265
			body.SetVelocityVector(cp.Vector{X: wanderSpeed, Y: 0}.Rotate(cp.ForAngle(angle)))
		}
		g.victims = append(g.victims, v)
	}

	if watcher, err := defs.NewWatcher("defs"); err == nil {
		g.watcher = watcher
	} else {
		log.Printf("defs watcher disabled: %v", err)
	}

	return g, nil
}

func (g *Game) Update() error {
	g.pollWatcher()
	g.steerVictims()
	g.world.Update()

	for _, evt := range g.world.Events().Drain() {
		if g.debug {
			log.Printf("event %s: %+v", evt.Type, evt.Data)
		}
	}
	return nil
}

// pollWatcher reloads definitions when the watcher reports a change.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.registry.Reload(); err != nil {
				log.Printf("reload after %s: %v", name, err)
				continue
			}
			g.scripts.Reset()
			log.Printf("definitions reloaded (%s)", name)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("defs watcher: %v", err)
			}
			return
		default:
			return
		}
	}
}

// steerVictims bounces wandering victims off the screen edges.
func (g *Game) steerVictims() {
	pw := g.world.PhysicsWorld()
	if pw == nil {
		return
	}
	for _, v := range g.victims {
		body := pw.Body(v)
		if body == nil {
			continue
		}
		pos := body.Position()
		vel := body.Velocity()
		if (pos.X < wanderMargin && vel.X < 0) || (pos.X > screenWidth-wanderMargin && vel.X > 0) {
			vel.X = -vel.X
		}
		if (pos.Y < wanderMargin && vel.Y < 0) || (pos.Y > screenHeight-wanderMargin && vel.Y > 0) {
			vel.Y = -vel.Y
		}
		body.SetVelocityVector(vel)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})
	system.DrawZoneDebug(g.world, screen)
	system.DrawVictimDebug(g.world, screen)

	alive := 0
	for _, v := range g.victims {
		if ecs.IsAlive(g.world, v) && !ecs.Has(g.world, v, component.DeadTagComponent.Kind()) {
			alive++
		}
	}
	hud := fmt.Sprintf("tick %d  alive %d/%d", g.world.Tick(), alive, len(g.victims))
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.White)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
