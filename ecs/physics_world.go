package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/afflict/ecs/component"
)

const (
	collisionTypeVictim cp.CollisionType = iota + 1
	collisionTypeZone
)

// PhysicsWorld owns the Chipmunk space, the zone sensor shapes, and the
// contact bookkeeping fed by the Begin/Separate trigger callbacks.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	victimShapes map[*cp.Shape]Entity
	zoneShapes   map[*cp.Shape]Entity
	entityBodies map[Entity]*cp.Body
	entityShapes map[Entity][]*cp.Shape

	// zone entity -> set of victims currently overlapping its sensor
	contacts map[Entity]map[Entity]struct{}
}

// NewPhysicsWorld creates a physics world with trigger handlers installed.
// The space carries no gravity; victims are driven by velocity alone.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10

	pw := &PhysicsWorld{
		space:        space,
		victimShapes: make(map[*cp.Shape]Entity),
		zoneShapes:   make(map[*cp.Shape]Entity),
		entityBodies: make(map[Entity]*cp.Body),
		entityShapes: make(map[Entity][]*cp.Shape),
		contacts:     make(map[Entity]map[Entity]struct{}),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddVictimBody creates a dynamic body for a damageable entity centered on
// its transform. Rotation is fixed.
func (pw *PhysicsWorld) AddVictimBody(e Entity, t *component.Transform, width, height float64) *cp.Body {
	if pw == nil || pw.space == nil || !e.Valid() || t == nil || width <= 0 || height <= 0 {
		return nil
	}

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	pw.space.AddBody(body)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetCollisionType(collisionTypeVictim)
	shape.SetFriction(0)
	pw.space.AddShape(shape)

	pw.victimShapes[shape] = e
	pw.entityBodies[e] = body
	pw.entityShapes[e] = append(pw.entityShapes[e], shape)
	return body
}

// AddZoneSensor creates a static sensor box for a damage zone centered on its
// transform. Overlaps are reported through the trigger callbacks only; the
// shape never resolves collisions.
func (pw *PhysicsWorld) AddZoneSensor(e Entity, t *component.Transform, width, height float64) *cp.Shape {
	if pw == nil || pw.space == nil || !e.Valid() || t == nil || width <= 0 || height <= 0 {
		return nil
	}

	bb := cp.BB{
		L: t.X - width/2,
		B: t.Y - height/2,
		R: t.X + width/2,
		T: t.Y + height/2,
	}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeZone)
	pw.space.AddShape(shape)

	pw.zoneShapes[shape] = e
	pw.entityShapes[e] = append(pw.entityShapes[e], shape)
	return shape
}

// Body returns the dynamic body registered for an entity, if any.
func (pw *PhysicsWorld) Body(e Entity) *cp.Body {
	if pw == nil {
		return nil
	}
	return pw.entityBodies[e]
}

// Contacts returns the victims currently inside a zone's sensor.
func (pw *PhysicsWorld) Contacts(zone Entity) map[Entity]struct{} {
	if pw == nil {
		return nil
	}
	return pw.contacts[zone]
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// RemoveEntity drops an entity's shapes, body, and contact records.
func (pw *PhysicsWorld) RemoveEntity(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	for _, shape := range pw.entityShapes[e] {
		delete(pw.victimShapes, shape)
		delete(pw.zoneShapes, shape)
		pw.space.RemoveShape(shape)
	}
	delete(pw.entityShapes, e)

	if body := pw.entityBodies[e]; body != nil {
		pw.space.RemoveBody(body)
		delete(pw.entityBodies, e)
	}

	delete(pw.contacts, e)
	for _, victims := range pw.contacts {
		delete(victims, e)
	}
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	handler := pw.space.NewCollisionHandler(collisionTypeVictim, collisionTypeZone)
	handler.UserData = pw
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		victim, zone, ok := world.resolvePair(arb)
		if !ok {
			return true
		}
		set := world.contacts[zone]
		if set == nil {
			set = make(map[Entity]struct{})
			world.contacts[zone] = set
		}
		set[victim] = struct{}{}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return
		}
		victim, zone, ok := world.resolvePair(arb)
		if !ok {
			return
		}
		delete(world.contacts[zone], victim)
	}

	pw.handlersReady = true
}

func (pw *PhysicsWorld) resolvePair(arb *cp.Arbiter) (victim, zone Entity, ok bool) {
	shapeA, shapeB := arb.Shapes()
	if v, found := pw.victimShapes[shapeA]; found {
		victim = v
	} else if v, found := pw.victimShapes[shapeB]; found {
		victim = v
	} else {
		return 0, 0, false
	}
	if z, found := pw.zoneShapes[shapeA]; found {
		zone = z
	} else if z, found := pw.zoneShapes[shapeB]; found {
		zone = z
	} else {
		return 0, 0, false
	}
	return victim, zone, true
}
