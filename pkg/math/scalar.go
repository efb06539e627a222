package math

// Lerp interpolates linearly from a to b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Quintic is the smoothing curve 6t^5 - 15t^4 + 10t^3.
// Its first and second derivatives vanish at t=0 and t=1.
func Quintic(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Clamp limits v to [lo, hi]. NaN is returned as lo.
func Clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap maps i into [0, n) for any integer i, including negatives.
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}
