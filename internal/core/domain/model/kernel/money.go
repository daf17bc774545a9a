package kernel

// Clamp limits value to the [lo, hi] range.
// It backs the "never overdraw" rule on balance and revenue withdrawals.
func Clamp(value, lo, hi float64) float64 {
	return min(max(value, lo), hi)
}
