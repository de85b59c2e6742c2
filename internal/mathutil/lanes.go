package mathutil

// lanes is a 4-wide float32 register value. Go has no portable SIMD
// intrinsics, so each operation is spelled out lane by lane in the exact
// order a 128-bit SSE implementation evaluates it. Products are converted
// explicitly so the compiler never fuses them into a multiply-add, which
// would change rounding on arm64 and other FMA targets.
type lanes [4]float32

func splat(a float32) lanes { return lanes{a, a, a, a} }

func (a lanes) add(b lanes) lanes {
	return lanes{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a lanes) sub(b lanes) lanes {
	return lanes{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a lanes) mul(b lanes) lanes {
	return lanes{
		float32(a[0] * b[0]),
		float32(a[1] * b[1]),
		float32(a[2] * b[2]),
		float32(a[3] * b[3]),
	}
}

func (a lanes) div(b lanes) lanes {
	return lanes{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// hadd pairs adjacent lanes: (a0+a1, a2+a3, b0+b1, b2+b3).
func (a lanes) hadd(b lanes) lanes {
	return lanes{a[0] + a[1], a[2] + a[3], b[0] + b[1], b[2] + b[3]}
}

// hsum reduces the four lanes with two horizontal adds,
// giving (a0+a1)+(a2+a3).
func (a lanes) hsum() float32 {
	a = a.hadd(a)
	a = a.hadd(a)
	return a[0]
}

// shuffle selects lanes by index, lowest lane first.
func (a lanes) shuffle(i0, i1, i2, i3 int) lanes {
	return lanes{a[i0], a[i1], a[i2], a[i3]}
}
