package ecs

// Event is a generic world event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventDamage        = "damage"
	EventDeath         = "death"
	EventEffectApplied = "effect_applied"
	EventEffectExpired = "effect_expired"
	EventZoneEnter     = "zone_enter"
	EventZoneExit      = "zone_exit"
)

// DamageEvent is emitted whenever tick damage lands on a target.
type DamageEvent struct {
	Target Entity
	Source Entity
	Kind   string
	Amount float64
}

// DeathEvent is emitted once when a target's health reaches zero.
type DeathEvent struct {
	Target Entity
}

// EffectEvent is emitted when a periodic-damage entry is applied, refreshed,
// or expires.
type EffectEvent struct {
	Target Entity
	Kind   string
	Stacks int
}

// ZoneEvent is emitted when a target enters or leaves a damage zone.
type ZoneEvent struct {
	Zone   Entity
	Target Entity
}

// EventQueue is a simple FIFO queue. It is flushed at the start of each world
// update, so consumers drain it between updates.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
