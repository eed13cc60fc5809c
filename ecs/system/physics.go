package system

import (
	"github.com/milk9111/afflict/common"
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

// PhysicsSystem steps the Chipmunk space at the fixed tick rate and syncs
// transforms back from dynamic bodies. It runs before the zone system so
// contact sets reflect this tick's positions.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	pw.Step(1.0 / float64(common.TicksPerSecond))

	ecs.ForEach2(w, component.BodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Body, t *component.Transform) {
		if b == nil || b.Body == nil || t == nil {
			return
		}
		pos := b.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}
