package component

// Invulnerable suppresses tick damage while present. Active entries keep
// aging underneath it. A positive Frames value makes the invulnerability
// timed; the invulnerable system removes the component when it reaches zero.
type Invulnerable struct {
	// Frames remaining (in update ticks); <= 0 means indefinite
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
