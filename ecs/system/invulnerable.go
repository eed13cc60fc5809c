package system

import (
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

// InvulnerableSystem decrements timed invulnerability and removes it when
// the countdown finishes. Components with Frames <= 0 are indefinite and
// left alone.
type InvulnerableSystem struct{}

func NewInvulnerableSystem() *InvulnerableSystem {
	return &InvulnerableSystem{}
}

func (s *InvulnerableSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		if inv == nil || inv.Frames <= 0 {
			return
		}
		inv.Frames--
		if inv.Frames == 0 {
			ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})
}
