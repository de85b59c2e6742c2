package mathutil

import "github.com/chewxy/math32"

// Map linearly remaps v from [minA, maxA] to [minB, maxB].
// maxA == minA produces Inf or NaN.
func Map(v, minA, maxA, minB, maxB float32) float32 {
	pct := (v - minA) / (maxA - minA)
	return ((maxB - minB) * pct) + minB
}

// Wrap wraps v into [min, max). An empty range (max <= min) returns min.
func Wrap(v, min, max int32) int32 {
	rng := max - min
	if rng <= 0 {
		return min
	}
	v = (v - min) % rng
	if v < 0 {
		return max + v
	}
	return min + v
}

// Xorshift returns the next value of a 32-bit xorshift stream seeded by x.
// Not suitable for anything but visual noise.
func Xorshift(x uint32) uint32 {
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	return x
}

// Sine approximates sin(v) with two parabolas over one period.
// Error is a few percent; use math32.Sin where accuracy matters.
func Sine(v float32) float32 {
	t := v * TauInv
	t -= math32.Floor(t)
	if t < 0.5 {
		return (-16.0 * t * t) + (8.0 * t)
	}
	return (16.0 * t * t) - (16.0 * t) - (8.0 * t) + 8.0
}

// Cosine approximates cos(v) as Sine(v + π/2).
func Cosine(v float32) float32 {
	return Sine(v + HalfPi)
}

func Abs(f float32) float32 { return math32.Abs(f) }

func Clamp(v, min, max float32) float32 {
	return math32.Max(min, math32.Min(v, max))
}

// CubicInterpolation evaluates the Catmull-Rom segment between p2 and p3.
func CubicInterpolation(p1, p2, p3, p4, t float32) float32 {
	a := (-0.5*p1 + 1.5*p2 - 1.5*p3 + 0.5*p4) * t * t * t
	b := (p1 - 2.5*p2 + 2*p3 - 0.5*p4) * t * t
	c := (-0.5*p1 + 0.5*p3) * t
	return a + b + c + p2
}
