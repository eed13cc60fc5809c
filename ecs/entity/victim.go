package entity

import (
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

// NewVictim builds a damageable entity with a dynamic physics body centered
// at (x, y).
func NewVictim(w *ecs.World, x, y, width, height, maxHealth float64) ecs.Entity {
	if w == nil {
		return 0
	}

	e := ecs.CreateEntity(w)
	t := &component.Transform{X: x, Y: y}
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), t)
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: maxHealth, Max: maxHealth})
	_ = ecs.Add(w, e, component.VictimTagComponent.Kind(), &component.VictimTag{})

	if pw := w.PhysicsWorld(); pw != nil {
		if body := pw.AddVictimBody(e, t, width, height); body != nil {
			_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Body: body})
		}
	}
	return e
}
