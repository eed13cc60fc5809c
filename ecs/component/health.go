package component

// Health tracks a target's hit points. Current is clamped to [0, Max] by the
// health system; damage helpers never drive it below zero.
type Health struct {
	Current float64
	Max     float64
}

// Damage subtracts amount and returns how much actually landed.
func (h *Health) Damage(amount float64) float64 {
	if h == nil || amount <= 0 || h.Current <= 0 {
		return 0
	}
	if amount > h.Current {
		amount = h.Current
	}
	h.Current -= amount
	return amount
}

var HealthComponent = NewComponent[Health]()
