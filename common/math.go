package common

// TicksPerSecond is the fixed update rate every tick-denominated duration
// in the definitions assumes.
const TicksPerSecond = 60

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
