package component

// DamageZone marks an entity as an area that deals periodic damage to
// victims overlapping its sensor shape. When Effect is set the zone applies
// that effect definition instead of dealing direct damage, so the damage
// keeps ticking after the victim leaves.
type DamageZone struct {
	Name   string
	Width  float64
	Height float64
	// PerTick is the direct damage dealt every Interval ticks while inside.
	PerTick float64
	// Interval is the number of world ticks between hits (>= 1).
	Interval uint64
	// Effect names an effect definition to apply instead of direct damage.
	Effect string
	// InitialTick deals the first hit on entry instead of one interval later.
	InitialTick bool
}

var DamageZoneComponent = NewComponent[DamageZone]()

// ZoneContacts is a zone's bookkeeping of victims currently inside, keyed by
// raw entity handle. The value is the world tick of the victim's next due
// hit. Entries are added on sensor entry and dropped on exit, so re-entering
// before a sweep never double-books a victim.
type ZoneContacts struct {
	Victims map[uint64]uint64
}

var ZoneContactsComponent = NewComponent[ZoneContacts]()
